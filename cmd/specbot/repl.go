// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/specbot/specbot/internal/session"
	"github.com/specbot/specbot/pkg/specfile"

	"github.com/spf13/cobra"
)

// replCmd runs an interactive session on stdin/stdout.
var replCmd = &cobra.Command{
	Use:   "repl <spec>",
	Short: "Interactive session against a spec",
	Long: `Interactive session against a spec.

Reads one input line at a time, parses it against the spec's command
set and prints the reply: the parsed invocation, a help topic for
help commands, or the error message for input that doesn't parse.
Quoting follows shell-like rules ('...' and "..." with backslash
escapes). Type "exit" or "quit" to leave.

Examples:
  specbot repl bot.cue`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := specfile.Parse(args[0])
		if err != nil {
			return err
		}

		stdout := cmd.OutOrStdout()
		fmt.Fprintln(stdout, TitleStyle.Render("specbot")+SubtitleStyle.Render(" - "+set.Summary()))
		fmt.Fprintln(stdout, SubtitleStyle.Render(`Type "help" for topics, "exit" to leave.`))

		s := session.New(set,
			session.WithPrompt(cfg.Prompt),
			session.WithSuggestions(suggestionsEnabled()),
		)
		err = s.Run(cmd.Context(), cmd.InOrStdin(), stdout)
		if errors.Is(err, context.Canceled) {
			// Interrupted; leave quietly.
			return nil
		}
		return err
	},
}
