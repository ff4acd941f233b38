// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/specbot/specbot/pkg/engine"
	"github.com/specbot/specbot/pkg/render"
	"github.com/specbot/specbot/pkg/specfile"

	"github.com/spf13/cobra"
)

var (
	// topicMarkdown renders the topic as styled markdown instead of plain text.
	topicMarkdown bool
	// topicStyle overrides the glamour style for --markdown output.
	topicStyle string

	// topicCmd shows a help topic from a spec.
	topicCmd = &cobra.Command{
		Use:   "topic <spec> [path...]",
		Short: "Show a help topic from a spec",
		Long: `Show a help topic from a spec.

Without a path, shows the root topic: the spec's summary and its
command list. With a path, resolves it through the command tree the
way a help command would and shows the addressed command's topic.
Custom topics declared by the spec are addressed by name.

Examples:
  specbot topic bot.cue
  specbot topic bot.cue deploy
  specbot topic bot.cue mod add
  specbot topic bot.cue --markdown deploy`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()

			set, err := specfile.Parse(args[0])
			if err != nil {
				return err
			}

			topic, err := resolveTopic(set, args[1:])
			if err != nil {
				folded := render.FoldError[string](render.Text{Suggestions: suggestionsEnabled()}, err)
				fmt.Fprintln(stdout, folded)
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return &ExitError{Code: 1}
			}

			if !topicMarkdown {
				fmt.Fprintln(stdout, render.FoldHelp[string](render.TextHelp{}, topic))
				return nil
			}

			style := topicStyle
			if style == "" {
				style = cfg.Style
			}
			md := render.FoldHelp[string](render.Markdown{}, topic)
			out, err := render.ANSI(md, style)
			if err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
			fmt.Fprint(stdout, out)
			return nil
		},
	}
)

func init() {
	topicCmd.Flags().BoolVar(&topicMarkdown, "markdown", false, "render the topic as styled markdown")
	topicCmd.Flags().StringVar(&topicStyle, "style", "", "glamour style for --markdown (dark, light, notty, auto)")
}

// resolveTopic turns the path tokens into a help topic. A single
// token naming a custom topic wins over command path resolution.
func resolveTopic(set *engine.Set, tokens []string) (*engine.HelpTopic, error) {
	if len(tokens) == 1 {
		if topic, ok := set.Custom(tokens[0]); ok {
			return topic, nil
		}
	}

	path, err := set.ParsePathOpt(engine.Tokens(tokens...))
	if err != nil {
		return nil, err
	}
	return set.Help(path), nil
}
