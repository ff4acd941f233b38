// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specbot/specbot/pkg/specfile"

	"github.com/spf13/cobra"
)

// checkCmd validates a spec file without running anything against it.
var checkCmd = &cobra.Command{
	Use:   "check <spec>",
	Short: "Validate a command spec file",
	Long: `Validate a command spec file.

Parses the CUE spec, validates it against the spec schema, parses every
command's doc block and builds the full command set, reporting the
first problem found. A valid spec prints a summary of its commands.

Examples:
  specbot check bot.cue`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}

		fmt.Fprintln(stdout, TitleStyle.Render("Spec Validation"))
		fmt.Fprintf(stdout, "%s Path: %s\n", infoIcon, CmdStyle.Render(path))
		fmt.Fprintln(stdout)

		set, err := specfile.Parse(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "%s Spec validation failed\n", errorIcon)
			fmt.Fprintln(stderr)
			fmt.Fprintf(stderr, "  %s\n", err)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return &ExitError{Code: 1}
		}

		fmt.Fprintf(stdout, "%s CUE schema validation passed\n", successIcon)
		fmt.Fprintf(stdout, "%s Doc blocks parse cleanly\n", successIcon)
		fmt.Fprintln(stdout)

		rules := set.Rules()
		fmt.Fprintf(stdout, "%s Spec is valid (%d command(s))\n", successIcon, len(rules))
		for _, r := range rules {
			ids := r.Docs.Usage.IDs
			fmt.Fprintf(stdout, "  %s  %s\n", CmdStyle.Render(strings.Join(ids, "|")), r.Docs.Usage.Desc)
		}
		return nil
	},
}
