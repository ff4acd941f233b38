// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders help topics as markdown, suitable for terminal
// display through ANSI.
type Markdown struct{}

// ArgumentUsage implements HelpFolder.
func (m Markdown) ArgumentUsage(name string, required, rest bool) string {
	return TextHelp{}.ArgumentUsage(name, required, rest)
}

// CommandUsage implements HelpFolder.
func (m Markdown) CommandUsage(ids []string, args []string, desc string, long bool) string {
	var grammar strings.Builder
	writeIDs(&grammar, ids)
	for _, arg := range args {
		grammar.WriteByte(' ')
		grammar.WriteString(arg)
	}

	if long {
		return fmt.Sprintf("## Usage\n\n`%s`\n\n%s", grammar.String(), desc)
	}
	return fmt.Sprintf("- `%s`: %s", grammar.String(), desc)
}

// ArgumentDesc implements HelpFolder.
func (m Markdown) ArgumentDesc(name string, required bool, desc string) string {
	opt := ""
	if !required {
		opt = " (optional)"
	}
	return fmt.Sprintf("- `%s`%s: %s", name, opt, desc)
}

// CommandDesc implements HelpFolder.
func (m Markdown) CommandDesc(summary string, args []string, examples string) string {
	var sections []string
	if summary != "" {
		sections = append(sections, fmt.Sprintf("## Summary\n\n%s", summary))
	}
	if len(args) > 0 {
		sections = append(sections, fmt.Sprintf("## Arguments\n\n%s", strings.Join(args, "\n")))
	}
	if examples != "" {
		sections = append(sections, fmt.Sprintf("## Examples\n\n```\n%s\n```", examples))
	}
	return strings.Join(sections, "\n\n")
}

// CommandTopic implements HelpFolder.
func (m Markdown) CommandTopic(usage, desc string) string {
	if usage == "" || desc == "" {
		return usage + desc
	}
	return usage + "\n\n" + desc
}

// CommandSetTopic implements HelpFolder.
func (m Markdown) CommandSetTopic(summary string, commands []string) string {
	var sections []string
	if summary != "" {
		sections = append(sections, summary)
	}
	if len(commands) > 0 {
		sections = append(sections, fmt.Sprintf("## Commands\n\n%s", strings.Join(commands, "\n")))
	}
	return strings.Join(sections, "\n\n")
}

// CustomTopic implements HelpFolder.
func (m Markdown) CustomTopic(text string) string { return text }

// ANSI renders markdown for terminal display with the given glamour
// style ("dark", "light", "notty", ...).
func ANSI(md, style string) (string, error) {
	return glamour.Render(md, style)
}
