// SPDX-License-Identifier: MPL-2.0

package docspec

import (
	"regexp"
)

// RestKind classifies the trailing rest argument of a usage line.
type RestKind int

const (
	// RestNone means the usage line declares no rest argument.
	RestNone RestKind = iota
	// RestOptional is a trailing "[name...]" argument; zero tokens are fine.
	RestOptional
	// RestRequired is a trailing "<name...>" argument; at least one token
	// must be supplied.
	RestRequired
)

type (
	// RestArg describes the rest argument declared by a usage line, if any.
	RestArg struct {
		// Kind is RestNone, RestOptional or RestRequired.
		Kind RestKind
		// Name is the declared argument name; empty when Kind is RestNone.
		Name string
	}

	// CommandUsage is the structured form of a single usage line. Values
	// are built once by the usage parser and never mutated.
	CommandUsage struct {
		// IDs are the identifiers this command answers to. Never empty;
		// the first entry is the canonical name used in diagnostics.
		IDs []string
		// Required are the names of the required single-token arguments,
		// in declaration order.
		Required []string
		// Optional are the names of the optional single-token arguments,
		// in declaration order.
		Optional []string
		// Rest is the trailing rest argument declaration.
		Rest RestArg
		// Desc is the short description following the usage tokens.
		Desc string
	}

	// ArgumentUsage is one argument of a usage line in declaration order,
	// as consumed by help rendering and field-mode validation.
	ArgumentUsage struct {
		Name     string
		Required bool
		Rest     bool
	}
)

var (
	commandIDsRe = regexp.MustCompile(`^\s*(?:([^(\s]\S*)|\(\s*([^)]*)\))`)
	pipeRe       = regexp.MustCompile(`\s*\|\s*`)

	// A required or optional argument name may only end in a period when
	// the whole name is at most two characters, so a usage line followed
	// by prose does not absorb sentence-ending punctuation.
	requiredArgRe = regexp.MustCompile(`^\s*<([^>]{0,2}|[^>]*[^>.]{3})>`)
	optionalArgRe = regexp.MustCompile(`^\s*\[([^\]]{0,2}|[^\]]*[^\].]{3})\]`)

	restArgRe  = regexp.MustCompile(`^\s*(?:<([^>]+)\.\.\.>|\[([^\]]+)\.\.\.\])`)
	trailingRe = regexp.MustCompile(`\S`)

	// A usage line may carry its grammar in backticks with the short
	// description inline after an optional colon.
	inlineUsageRe = regexp.MustCompile("^\\s*`([^`]*)`\\s*:?\\s*(.*)$")
)

// ParseUsage parses the usage-token span of a usage line and attaches the
// given short description. Callers that hold a full documentation block
// should use ParseCommandDocs instead, which also extracts the description.
func ParseUsage(line, desc string) (CommandUsage, error) {
	input := line

	idsMatch := commandIDsRe.FindStringSubmatchIndex(input)
	if idsMatch == nil {
		return CommandUsage{}, &InvalidIDSpecError{Line: line}
	}

	var ids []string
	if idsMatch[4] >= 0 { // parenthesized alias group
		ids = pipeRe.Split(input[idsMatch[4]:idsMatch[5]], -1)
	} else {
		ids = []string{input[idsMatch[2]:idsMatch[3]]}
	}
	input = input[idsMatch[1]:]

	var required []string
	for {
		m := requiredArgRe.FindStringSubmatchIndex(input)
		if m == nil {
			break
		}
		required = append(required, input[m[2]:m[3]])
		input = input[m[1]:]
	}

	var optional []string
	for {
		m := optionalArgRe.FindStringSubmatchIndex(input)
		if m == nil {
			break
		}
		optional = append(optional, input[m[2]:m[3]])
		input = input[m[1]:]
	}

	rest := RestArg{Kind: RestNone}
	if m := restArgRe.FindStringSubmatchIndex(input); m != nil {
		if m[2] >= 0 {
			rest = RestArg{Kind: RestRequired, Name: input[m[2]:m[3]]}
		} else {
			rest = RestArg{Kind: RestOptional, Name: input[m[4]:m[5]]}
		}
		input = input[m[1]:]
	}

	if trailingRe.MatchString(input) {
		return CommandUsage{}, &TrailingUsageError{Rest: input}
	}

	return CommandUsage{
		IDs:      ids,
		Required: required,
		Optional: optional,
		Rest:     rest,
		Desc:     desc,
	}, nil
}

// ID returns the canonical identifier of the command: the first declared ID.
func (u CommandUsage) ID() string { return u.IDs[0] }

// NumArgs returns the total number of declared arguments, counting the
// rest argument as one.
func (u CommandUsage) NumArgs() int {
	n := len(u.Required) + len(u.Optional)
	if u.Rest.Kind != RestNone {
		n++
	}
	return n
}

// Arguments returns every declared argument in declaration order:
// required, then optional, then the rest argument if present.
func (u CommandUsage) Arguments() []ArgumentUsage {
	args := make([]ArgumentUsage, 0, u.NumArgs())
	for _, name := range u.Required {
		args = append(args, ArgumentUsage{Name: name, Required: true})
	}
	for _, name := range u.Optional {
		args = append(args, ArgumentUsage{Name: name})
	}
	switch u.Rest.Kind {
	case RestNone:
	case RestOptional:
		args = append(args, ArgumentUsage{Name: u.Rest.Name, Rest: true})
	case RestRequired:
		args = append(args, ArgumentUsage{Name: u.Rest.Name, Required: true, Rest: true})
	}
	return args
}
