// SPDX-License-Identifier: MPL-2.0

// Package session runs an interactive command session over any
// reader/writer pair: each input line is tokenized, parsed against a
// command set and answered in plain text. Both the local REPL and the
// SSH server build on it.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specbot/specbot/pkg/engine"
	"github.com/specbot/specbot/pkg/render"
	"github.com/specbot/specbot/pkg/tokenize"
)

// Session answers command lines against a single command set.
type Session struct {
	set    *engine.Set
	errs   render.Text
	prompt string
}

// Option configures a Session.
type Option func(*Session)

// WithPrompt sets the prompt written before each read.
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// WithSuggestions toggles "did you mean" ranking in error replies.
func WithSuggestions(on bool) Option {
	return func(s *Session) { s.errs.Suggestions = on }
}

// New returns a session over the given command set.
func New(set *engine.Set, opts ...Option) *Session {
	s := &Session{
		set:    set,
		errs:   render.Text{Suggestions: true},
		prompt: "> ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Respond parses one input line and returns the reply text. Parse
// errors fold to their user-facing message; an empty line folds to
// the empty string. A command carrying a path argument is answered
// with the help topic the path addresses.
func (s *Session) Respond(line string) string {
	inv, err := s.set.Parse(engine.Tokens(tokenize.Split(line)...))
	if err != nil {
		return render.FoldError[string](s.errs, err)
	}
	return Answer(s.set, inv)
}

// Answer renders a successful invocation. A command carrying a path
// argument answers with the help topic the path addresses, or the
// root topic when no path was given; everything else is described.
func Answer(set *engine.Set, inv *engine.Invocation) string {
	if pathRule(inv.Rule) {
		return render.FoldHelp[string](render.TextHelp{}, set.Help(inv.Path))
	}
	return Describe(inv)
}

// pathRule reports whether the rule's rest argument is a path field.
func pathRule(r *engine.Rule) bool {
	for i := range r.Fields {
		if r.Fields[i].Path {
			return true
		}
	}
	return false
}

// Describe renders a parsed invocation as a single line: the
// canonical command identifier followed by each supplied argument in
// declaration order.
func Describe(inv *engine.Invocation) string {
	var b strings.Builder
	b.WriteString(inv.Cmd)

	for i := range inv.Rule.Fields {
		f := &inv.Rule.Fields[i]

		if !rest(f.Mode) {
			if v, ok := inv.Arg(f.Name); ok {
				fmt.Fprintf(&b, " %s=%v", f.Name, v)
			}
			continue
		}

		switch {
		case inv.Sub != nil:
			fmt.Fprintf(&b, " %s={%s}", f.Name, Describe(inv.Sub))
		case inv.Path != nil:
			fmt.Fprintf(&b, " %s=%s", f.Name, inv.Path)
		case len(inv.Rest) > 0:
			fmt.Fprintf(&b, " %s=%v", f.Name, inv.Rest)
		}
	}
	return b.String()
}

func rest(m engine.FieldMode) bool {
	return m == engine.FieldRestRequired || m == engine.FieldRestOptional
}

// Run reads lines from r until EOF, "exit" or "quit", answering each
// on w. The context is checked between lines.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if s.prompt != "" {
			fmt.Fprint(w, s.prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}

		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if out := s.Respond(line); out != "" {
			fmt.Fprintln(w, out)
		}
	}
}
