// SPDX-License-Identifier: MPL-2.0

package docspec

import (
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// ArgumentDoc is the long-form documentation of one declared argument,
	// in usage declaration order.
	ArgumentDoc struct {
		// Name is the argument name, matching the usage line.
		Name string
		// Required reports whether the usage line declares the argument
		// as required.
		Required bool
		// Desc is the documented description, collapsed to a single line.
		Desc string
	}

	// CommandDocs is the fully parsed and cross-validated documentation of
	// a single command. Immutable after construction.
	CommandDocs struct {
		// Usage is the parsed usage line, including the short description.
		Usage CommandUsage
		// Summary is the optional long description; empty means absent.
		Summary string
		// Args documents every declared argument, in usage order.
		Args []ArgumentDoc
		// Examples is the optional examples section with newlines intact;
		// empty means absent.
		Examples string
	}

	// CommandSetDocs is the documentation of a group of commands. Unlike a
	// single command, a set may legitimately have no documentation at all.
	CommandSetDocs struct {
		// Summary is the optional set summary; empty means absent.
		Summary string
	}
)

var (
	headerRe   = regexp.MustCompile(`^\s*#\s*(\S+)\s*\n`)
	lineRe     = regexp.MustCompile(`\s*\n\s*`)
	argEntryRe = regexp.MustCompile(`(?m)^\s*([^\n\s](?:[^:\n]*[^:\n\s])?)\s*:\s*`)
)

// ParseCommandDocs parses a complete documentation block for one command:
// the usage line, the short-description paragraph, and any headed sections
// that follow. The arguments section is cross-validated against the names
// the usage line declares.
func ParseCommandDocs(block string) (*CommandDocs, error) {
	lines := strings.Split(block, "\n")
	if strings.TrimSpace(block) == "" {
		return nil, ErrMissingDocs
	}

	usageLine := lines[0]
	rest := lines[1:]

	var (
		usage CommandUsage
		err   error
	)
	inline := inlineUsageRe.FindStringSubmatch(usageLine)
	if inline != nil && strings.TrimSpace(inline[2]) != "" {
		usage, err = ParseUsage(inline[1], strings.TrimSpace(inline[2]))
	} else {
		tokens := usageLine
		if inline != nil {
			tokens = inline[1]
		}
		// A headed section is never the short description.
		var desc string
		if !nextParagraphIsSection(rest) {
			desc, rest = takeParagraph(rest, false)
		}
		usage, err = ParseUsage(tokens, desc)
	}
	if err != nil {
		return nil, err
	}

	var (
		summary    string
		args       []ArgumentDoc
		haveArgs   bool
		examples   string
		haveSum    bool
		haveExmpls bool
	)

	for {
		var par string
		par, rest = takeParagraph(rest, true)
		if par == "" {
			break
		}

		header := headerRe.FindStringSubmatchIndex(par)
		if header == nil {
			return nil, &MissingHeaderError{Paragraph: par}
		}
		body := par[header[1]:]

		switch strings.ToLower(par[header[2]:header[3]]) {
		case "description", "overview", "summary":
			if haveSum {
				return nil, &DuplicateSectionError{Section: "summary"}
			}
			haveSum = true
			summary = relaxLines(body)
		case "arguments", "parameters":
			if haveArgs {
				return nil, &DuplicateSectionError{Section: "arguments"}
			}
			haveArgs = true
			args, err = parseArgumentLines(usage, body)
			if err != nil {
				return nil, err
			}
		case "examples":
			if haveExmpls {
				return nil, &DuplicateSectionError{Section: "examples"}
			}
			haveExmpls = true
			examples = strings.TrimSpace(body)
		default:
			// Unknown headers are ignored.
		}
	}

	if strings.TrimSpace(usage.Desc) == "" {
		return nil, &MissingDescError{}
	}

	if !haveArgs {
		// A command declaring no arguments is fine without an arguments
		// section; one that declares arguments is not.
		args, err = parseArgumentLines(usage, "")
		if err != nil {
			return nil, err
		}
	}

	return &CommandDocs{
		Usage:    usage,
		Summary:  summary,
		Args:     args,
		Examples: examples,
	}, nil
}

// ParseCommandSetDocs parses the documentation block of a command set: a
// plain summary with each paragraph collapsed to one line. An empty block
// yields an empty summary, which is valid for sets.
func ParseCommandSetDocs(block string) CommandSetDocs {
	lines := strings.Split(block, "\n")

	var summary strings.Builder
	for {
		var par string
		par, lines = takeParagraph(lines, false)
		if par == "" {
			break
		}
		if summary.Len() > 0 {
			summary.WriteByte('\n')
		}
		summary.WriteString(par)
	}

	return CommandSetDocs{Summary: strings.TrimSpace(summary.String())}
}

// nextParagraphIsSection reports whether the first non-blank line ahead
// opens a "# header" section.
func nextParagraphIsSection(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, "#")
	}
	return false
}

// takeParagraph consumes lines up to the next blank line (exclusive) and
// returns the paragraph together with the remaining lines. Leading blank
// lines are skipped. With preserveLines the paragraph keeps its newlines;
// otherwise the lines are joined with single spaces.
func takeParagraph(lines []string, preserveLines bool) (string, []string) {
	var b strings.Builder
	first := true

	i := 0
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "" {
			if !first {
				i++
				break
			}
			continue
		}
		first = false

		if preserveLines {
			b.WriteString(lines[i])
			b.WriteByte('\n')
		} else {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(trimmed)
		}
	}

	return b.String(), lines[i:]
}

// relaxLines collapses a multi-line string into a single line, squeezing
// the whitespace around each newline into one space.
func relaxLines(s string) string {
	return lineRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// parseArgumentLines parses the body of an arguments section into one
// entry per declared argument. Every declared name must be documented
// exactly once and no extra names may appear; the result is ordered to
// match the usage declaration.
func parseArgumentLines(usage CommandUsage, body string) ([]ArgumentDoc, error) {
	found := make(map[string]string)

	matches := argEntryRe.FindAllStringSubmatchIndex(body, -1)
	for i, m := range matches {
		end := len(body)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		name := body[m[2]:m[3]]
		if _, ok := found[name]; ok {
			return nil, &DuplicateArgDocError{Name: name}
		}
		found[name] = relaxLines(body[m[1]:end])
	}

	if strings.TrimSpace(body) != "" && len(found) == 0 {
		return nil, &BadArgFormatError{}
	}

	expected := usage.Arguments()

	for _, arg := range expected {
		if _, ok := found[arg.Name]; !ok {
			have := maps.Keys(found)
			slices.Sort(have)
			return nil, &MissingArgDocError{Name: arg.Name, Have: have}
		}
	}

	if len(found) != len(expected) {
		return nil, &ArgCountMismatchError{Expected: len(expected), Got: len(found)}
	}

	docs := make([]ArgumentDoc, len(expected))
	for i, arg := range expected {
		docs[i] = ArgumentDoc{Name: arg.Name, Required: arg.Required, Desc: found[arg.Name]}
	}
	return docs, nil
}
