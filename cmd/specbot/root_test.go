// SPDX-License-Identifier: MPL-2.0

package main

import (
	"testing"

	"github.com/specbot/specbot/internal/config"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2026-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev when no build info", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestSuggestionsEnabled(t *testing.T) {
	origNoSuggest, origCfg := noSuggest, cfg
	t.Cleanup(func() { noSuggest, cfg = origNoSuggest, origCfg })

	cfg = config.Default()
	noSuggest = false
	if !suggestionsEnabled() {
		t.Error("suggestionsEnabled() = false, want true")
	}

	noSuggest = true
	if suggestionsEnabled() {
		t.Error("suggestionsEnabled() = true, want false with --no-suggestions")
	}

	noSuggest = false
	cfg.Suggestions = false
	if suggestionsEnabled() {
		t.Error("suggestionsEnabled() = true, want false when disabled in config")
	}
}
