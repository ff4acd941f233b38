// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specbot/specbot/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// noSuggest disables "did you mean" ranking in error output
	noSuggest bool

	// cfg is the loaded configuration, never nil after initRootConfig.
	cfg = config.Default()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "specbot",
		Short: "A documentation-driven command engine",
		Long: TitleStyle.Render("specbot") + SubtitleStyle.Render(" - A documentation-driven command engine") + `

specbot reads command specs written in CUE, where every command is
declared by its own help text: a usage line, a description and an
argument list. The doc block is the grammar; invocations are parsed
against it and help is rendered from it.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Write a spec file declaring your commands
  2. Check it with: specbot check <spec>
  3. Talk to it with: specbot repl <spec>

` + SubtitleStyle.Render("Examples:") + `
  specbot check bot.cue             Validate a spec file
  specbot run bot.cue deploy prod   Parse one invocation
  specbot topic bot.cue deploy      Show a command's help topic
  specbot repl bot.cue              Interactive session on stdin
  specbot serve bot.cue             Serve sessions over SSH`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/specbot/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noSuggest, "no-suggestions", false, "disable \"did you mean\" suggestions in error replies")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		return
	}
	cfg = loaded

	if !verbose {
		verbose = cfg.Verbose
	}
}

// suggestionsEnabled reports whether error replies may carry "did you
// mean" rankings, combining config and the --no-suggestions flag.
func suggestionsEnabled() bool {
	return cfg.Suggestions && !noSuggest
}
