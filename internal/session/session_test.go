// SPDX-License-Identifier: MPL-2.0

package session

import (
	"context"
	"strings"
	"testing"

	"github.com/specbot/specbot/pkg/engine"
	"github.com/specbot/specbot/pkg/specfile"
)

const sessionSpec = `
summary: "A demo bot."
commands: [
	{
		docs: """
			deploy <env> [tag]

			Deploy a build.

			# Arguments
			env: Target environment.
			tag: Image tag.
			"""
	},
	{
		docs: """
			status

			Show status.
			"""
	},
	{
		docs: """
			(help|h) [topic...]

			Show help.

			# Arguments
			topic: Topic path.
			"""
		path: true
	},
]
`

func testSet(t *testing.T) *engine.Set {
	t.Helper()
	set, err := specfile.ParseBytes([]byte(sessionSpec), "session.cue")
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	return set
}

func TestRespond(t *testing.T) {
	t.Parallel()

	s := New(testSet(t))

	tests := []struct {
		name string
		line string
		want string
	}{
		{"full invocation", "deploy prod v2", "deploy env=prod tag=v2"},
		{"optional omitted", "deploy prod", "deploy env=prod"},
		{"no arguments", "status", "status"},
		{"abbreviation", "stat", "status"},
		{"quoted token", `deploy "staging two"`, "deploy env=staging two"},
		{"empty line", "", ""},
		{
			"missing argument",
			"deploy",
			"Missing required argument 'env' to command 'deploy'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := s.Respond(tt.line); got != tt.want {
				t.Errorf("Respond(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestRespondUnknownCommand(t *testing.T) {
	t.Parallel()

	s := New(testSet(t), WithSuggestions(true))
	got := s.Respond("deplyo prod")
	want := `Not sure what you mean by "deplyo".  Did you mean: 'deploy'`
	if got != want {
		t.Errorf("Respond() = %q, want %q", got, want)
	}
}

func TestRespondHelp(t *testing.T) {
	t.Parallel()

	s := New(testSet(t))

	t.Run("root topic", func(t *testing.T) {
		t.Parallel()
		got := s.Respond("help")
		if !strings.Contains(got, "A demo bot.") {
			t.Errorf("Respond(help) = %q, want set summary", got)
		}
		if !strings.Contains(got, "COMMANDS") {
			t.Errorf("Respond(help) = %q, want COMMANDS section", got)
		}
	})

	t.Run("command topic", func(t *testing.T) {
		t.Parallel()
		got := s.Respond("help deploy")
		if !strings.Contains(got, "USAGE: deploy <env> [tag]") {
			t.Errorf("Respond(help deploy) = %q, want usage line", got)
		}
	})

	t.Run("alias", func(t *testing.T) {
		t.Parallel()
		if got, want := s.Respond("h status"), s.Respond("help status"); got != want {
			t.Errorf("Respond(h status) = %q, want %q", got, want)
		}
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	s := New(testSet(t), WithPrompt("bot> "))

	in := strings.NewReader("status\n\nexit\nstatus\n")
	var out strings.Builder
	if err := s.Run(context.Background(), in, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "bot> ") {
		t.Errorf("Run() output %q, want prompt", got)
	}
	if strings.Count(got, "status\n") != 1 {
		t.Errorf("Run() output %q, want a single reply before exit", got)
	}
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	s := New(testSet(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	if err := s.Run(ctx, strings.NewReader("status\n"), &out); err == nil {
		t.Error("Run() error = nil, want context error")
	}
}
