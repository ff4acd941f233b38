// SPDX-License-Identifier: MPL-2.0

// Package config loads the specbot configuration: a small settings
// file under the user config dir, overridable per key through
// SPECBOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "specbot"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
)

// Config holds every user-tunable setting.
type Config struct {
	// Style selects the glamour style used for markdown help output
	// ("dark", "light", "notty", "auto").
	Style string `mapstructure:"style"`
	// Suggestions toggles "did you mean" ranking in error output.
	Suggestions bool `mapstructure:"suggestions"`
	// Verbose enables debug logging on the console surfaces.
	Verbose bool `mapstructure:"verbose"`
	// Prompt is the REPL prompt.
	Prompt string `mapstructure:"prompt"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Style:       "auto",
		Suggestions: true,
		Verbose:     false,
		Prompt:      "> ",
	}
}

// Dir returns the specbot configuration directory following platform
// conventions: %APPDATA% on Windows, ~/Library/Application Support on
// macOS, $XDG_CONFIG_HOME (default ~/.config) elsewhere.
func Dir() (string, error) {
	var base string

	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, AppName), nil
}

// Load reads the configuration. A missing config file is not an
// error; defaults and environment overrides still apply. An explicit
// path is used exclusively and must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("style", defaults.Style)
	v.SetDefault("suggestions", defaults.Suggestions)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("prompt", defaults.Prompt)

	v.SetEnvPrefix("SPECBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config at %s: %w", path, err)
		}
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config in %s: %w", dir, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}
