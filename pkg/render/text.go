// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"regexp"
	"strings"
)

type (
	// Text renders parse errors as plain English sentences.
	Text struct {
		// Suggestions enables fuzzy "did you mean" ranking when an
		// identifier matches nothing.
		Suggestions bool
	}

	// TextHelp renders help topics as multi-line plain text, akin to
	// POSIX command help.
	TextHelp struct{}
)

var idSpaceRe = regexp.MustCompile(`\s`)

// writeOptions writes a quoted, comma-separated option list.
func writeOptions(b *strings.Builder, opts []string) {
	for i, opt := range opts {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "'%s'", opt)
	}
}

// NoIDMatch implements Folder.
func (t Text) NoIDMatch(given string, available []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Not sure what you mean by %q.", given)

	var suggested []string
	if t.Suggestions {
		suggested = DidYouMean(given, available)
	}

	switch {
	case len(suggested) > 0:
		b.WriteString("  Did you mean: ")
		writeOptions(&b, suggested)
	case len(available) > 0:
		b.WriteString("  Available options are: ")
		writeOptions(&b, available)
	}
	return b.String()
}

// AmbiguousID implements Folder.
func (t Text) AmbiguousID(candidates []string, given string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Not sure what you mean by %q.  Could be: ", given)
	writeOptions(&b, candidates)
	return b.String()
}

// IncompletePath implements Folder.
func (t Text) IncompletePath(available []string) string {
	var b strings.Builder
	b.WriteString("Incomplete command path, expected one of: ")
	writeOptions(&b, available)
	return b.String()
}

// TrailingPath implements Folder.
func (t Text) TrailingPath(extra string) string {
	return fmt.Sprintf("Unexpected extra path argument %q", extra)
}

// NoInput implements Folder.
func (t Text) NoInput() string { return "" }

// MissingRequired implements Folder.
func (t Text) MissingRequired(cmd, arg string) string {
	return fmt.Sprintf("Missing required argument '%s' to command '%s'", arg, cmd)
}

// BadConvert implements Folder.
func (t Text) BadConvert(cmd, arg, inner string) string {
	return fmt.Sprintf("Couldn't parse argument '%s' of command '%s': %s", arg, cmd, inner)
}

// Trailing implements Folder.
func (t Text) Trailing(cmd, extra string) string {
	return fmt.Sprintf("Unexpected extra argument %q to '%s'", extra, cmd)
}

// Subcommand implements Folder.
func (t Text) Subcommand(cmd, inner string) string {
	return fmt.Sprintf("Subcommand '%s' failed: %s", cmd, inner)
}

// Other implements Folder.
func (t Text) Other(err error) string { return err.Error() }

// writeIDs writes a command's identifiers, parenthesized and joined
// with pipes when there are several or the single id needs delimiting.
func writeIDs(b *strings.Builder, ids []string) {
	paren := len(ids) != 1 || ids[0] == "" || idSpaceRe.MatchString(ids[0])

	if paren {
		b.WriteByte('(')
	}
	for i, id := range ids {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(id)
	}
	if paren {
		b.WriteByte(')')
	}
}

// ArgumentUsage implements HelpFolder.
func (h TextHelp) ArgumentUsage(name string, required, rest bool) string {
	var b strings.Builder
	if required {
		b.WriteByte('<')
	} else {
		b.WriteByte('[')
	}
	b.WriteString(name)
	if rest {
		b.WriteString("...")
	}
	if required {
		b.WriteByte('>')
	} else {
		b.WriteByte(']')
	}
	return b.String()
}

// CommandUsage implements HelpFolder.
func (h TextHelp) CommandUsage(ids []string, args []string, desc string, long bool) string {
	var b strings.Builder
	if long {
		b.WriteString("USAGE: ")
	}
	writeIDs(&b, ids)

	for _, arg := range args {
		b.WriteByte(' ')
		b.WriteString(arg)
	}

	if b.Len() > 0 {
		if long {
			b.WriteByte('\n')
		} else {
			b.WriteString(": ")
		}
	}
	b.WriteString(desc)
	return b.String()
}

// ArgumentDesc implements HelpFolder.
func (h TextHelp) ArgumentDesc(name string, required bool, desc string) string {
	var b strings.Builder
	b.WriteString(name)
	if !required {
		b.WriteString(" (optional)")
	}
	b.WriteString(": ")
	b.WriteString(desc)
	return b.String()
}

// CommandDesc implements HelpFolder.
func (h TextHelp) CommandDesc(summary string, args []string, examples string) string {
	var b strings.Builder
	if summary != "" {
		fmt.Fprintf(&b, "SUMMARY\n%s", summary)
	}

	if len(args) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("ARGUMENTS")
		for _, arg := range args {
			fmt.Fprintf(&b, "\n  %s", arg)
		}
	}

	if examples != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "EXAMPLES\n\n%s", examples)
	}
	return b.String()
}

// CommandTopic implements HelpFolder.
func (h TextHelp) CommandTopic(usage, desc string) string {
	var b strings.Builder
	b.WriteString(usage)
	if usage != "" && desc != "" {
		b.WriteString("\n\n")
	}
	b.WriteString(desc)
	return b.String()
}

// CommandSetTopic implements HelpFolder.
func (h TextHelp) CommandSetTopic(summary string, commands []string) string {
	var b strings.Builder
	b.WriteString(summary)

	if len(commands) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("COMMANDS")
		for _, cmd := range commands {
			fmt.Fprintf(&b, "\n  %s", cmd)
		}
	}
	return b.String()
}

// CustomTopic implements HelpFolder.
func (h TextHelp) CustomTopic(text string) string { return text }
