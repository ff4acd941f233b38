// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/specbot/specbot/internal/session"
	"github.com/specbot/specbot/pkg/engine"
	"github.com/specbot/specbot/pkg/render"
	"github.com/specbot/specbot/pkg/specfile"

	"github.com/spf13/cobra"
)

// runCmd parses a single invocation against a spec and prints either
// the parsed command or the folded error message.
var runCmd = &cobra.Command{
	Use:   "run <spec> [token...]",
	Short: "Parse one invocation against a spec",
	Long: `Parse one invocation against a spec.

The tokens after the spec path are matched against the spec's command
set exactly as an interactive session would match an input line: the
first token selects a command (case-insensitively, by unambiguous
prefix), the rest fill its arguments. On success the parsed invocation
is printed; on failure the user-facing error message is printed and
the command exits non-zero.

Examples:
  specbot run bot.cue deploy prod v2
  specbot run bot.cue help deploy`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stdout := cmd.OutOrStdout()

		set, err := specfile.Parse(args[0])
		if err != nil {
			return err
		}

		inv, err := set.Parse(engine.Tokens(args[1:]...))
		if err != nil {
			folded := render.FoldError[string](render.Text{Suggestions: suggestionsEnabled()}, err)
			if folded == "" {
				folded = "No input given.  Try: specbot run <spec> <command> [args...]"
			}
			fmt.Fprintln(stdout, folded)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return &ExitError{Code: 1}
		}

		fmt.Fprintln(stdout, session.Answer(set, inv))
		return nil
	},
}
