// SPDX-License-Identifier: MPL-2.0

package engine

import "strings"

// Path addresses a command within a set, descending into nested sets
// one canonical identifier at a time. Sub is only ever non-nil for
// commands that delegate to a subcommand set; a nil Sub on such a
// command means "this subcommand, unspecified". Paths are acyclic by
// construction since a set never nests into itself.
type Path struct {
	// ID is the canonical identifier of the addressed command.
	ID string
	// Sub addresses a command within the nested set, if any.
	Sub *Path
}

// Head returns the root identifier of the path.
func (p *Path) Head() string { return p.ID }

// String renders the path as its space-separated identifiers.
func (p *Path) String() string {
	var b strings.Builder
	for step := p; step != nil; step = step.Sub {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(step.ID)
	}
	return b.String()
}

// ParsePath resolves the token stream into a command path. The first
// token must resolve to a command of this set; for subcommand-carrying
// commands the remainder recursively addresses the nested set, and for
// plain commands any remaining token is an error.
func (s *Set) ParsePath(ts TokenStream) (*Path, error) {
	head, ok := ts.Next()
	if !ok {
		return nil, &IncompletePathError{Available: s.names}
	}

	rule, err := s.lookupID(head)
	if err != nil {
		return nil, &BadPathIDError{Err: err}
	}

	p := &Path{ID: rule.ID()}

	if sub := rule.subSet(); sub != nil {
		p.Sub, err = sub.ParsePathOpt(ts)
		if err != nil {
			return nil, err
		}
	} else if extra, ok := ts.Next(); ok {
		return nil, &TrailingPathError{Extra: extra}
	}
	return p, nil
}

// ParsePathOpt is ParsePath for a possibly empty stream: no tokens at
// all yields a nil path rather than an error.
func (s *Set) ParsePathOpt(ts TokenStream) (*Path, error) {
	head, ok := ts.Next()
	if !ok {
		return nil, nil
	}
	return s.ParsePath(&pushback{head: head, rest: ts})
}
