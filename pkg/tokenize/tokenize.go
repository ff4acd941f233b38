// SPDX-License-Identifier: MPL-2.0

// Package tokenize splits raw input lines into the token sequences the
// command engine consumes. Split implements a minimal quoting scheme;
// Fields applies full POSIX shell word splitting for callers that want
// variable-free shell semantics.
package tokenize

import (
	"regexp"

	"mvdan.cc/sh/v3/shell"
)

var (
	// A token is a bare word, a single-quoted literal, or a
	// double-quoted span allowing backslash escapes.
	argRe       = regexp.MustCompile(`\s*(?:([^'"\s]\S*)|'([^']*)'|"((?:[^"\\]|\\.)*)")`)
	dquoteEscRe = regexp.MustCompile(`\\(.)`)
)

// Split tokenizes a string on whitespace with minimal support for
// single- and double-quoting. Single quotes preserve their content
// verbatim; inside double quotes a backslash escapes the following
// character. Unterminated quotes simply stop matching.
func Split(s string) []string {
	var out []string

	for _, m := range argRe.FindAllStringSubmatchIndex(s, -1) {
		switch {
		case m[6] >= 0:
			out = append(out, dquoteEscRe.ReplaceAllString(s[m[6]:m[7]], "$1"))
		case m[4] >= 0:
			out = append(out, s[m[4]:m[5]])
		default:
			out = append(out, s[m[2]:m[3]])
		}
	}
	return out
}

// Fields splits a string the way a POSIX shell would, without any
// variable expansion or command substitution.
func Fields(s string) ([]string, error) {
	return shell.Fields(s, func(string) string { return "" })
}
