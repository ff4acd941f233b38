// SPDX-License-Identifier: MPL-2.0

package engine

import "github.com/specbot/specbot/pkg/docspec"

// Invocation is a fully constructed command value. Exactly one of Rest,
// Sub and Path is populated when the command declares a rest argument;
// none of them otherwise. Parse never returns a partial Invocation.
type Invocation struct {
	// Cmd is the canonical identifier of the matched command.
	Cmd string
	// Rule is the rule the invocation was parsed against.
	Rule *Rule
	// Args holds the converted value of every consumed single-token
	// argument by name. Optional arguments that were not supplied have
	// no entry.
	Args map[string]any
	// Rest holds the converted remaining tokens of a plain rest
	// argument, in input order.
	Rest []any
	// Sub is the nested invocation of a subcommand rest argument.
	Sub *Invocation
	// Path is the parsed value of a path rest argument.
	Path *Path
}

// Arg returns the converted value of a single-token argument and
// whether it was supplied.
func (v *Invocation) Arg(name string) (any, bool) {
	val, ok := v.Args[name]
	return val, ok
}

// pushback re-attaches an already consumed head token to a stream, so
// a rest field can peek without losing the token it peeked at.
type pushback struct {
	head string
	used bool
	rest TokenStream
}

func (p *pushback) Next() (string, bool) {
	if !p.used {
		p.used = true
		return p.head, true
	}
	return p.rest.Next()
}

func (f *Field) value(token string) (any, error) {
	if f.Convert == nil {
		return token, nil
	}
	return f.Convert(token)
}

// Parse consumes the token stream and constructs an Invocation: the
// head token resolves the command, then each field consumes tokens
// according to its mode in a single forward pass. On failure exactly
// one structured error is returned and no value.
func (s *Set) Parse(ts TokenStream) (*Invocation, error) {
	head, ok := ts.Next()
	if !ok {
		return nil, ErrNoInput
	}

	rule, err := s.lookupID(head)
	if err != nil {
		return nil, &BadIDError{Err: err}
	}

	inv := &Invocation{Cmd: rule.ID(), Rule: rule, Args: make(map[string]any)}

	for i := range rule.Fields {
		f := &rule.Fields[i]

		switch f.Mode {
		case FieldRequired:
			tok, ok := ts.Next()
			if !ok {
				return nil, &MissingRequiredError{Cmd: inv.Cmd, Arg: f.Name}
			}
			val, err := f.value(tok)
			if err != nil {
				return nil, &BadConvertError{Cmd: inv.Cmd, Arg: f.Name, Cause: err}
			}
			inv.Args[f.Name] = val

		case FieldOptional:
			tok, ok := ts.Next()
			if !ok {
				continue
			}
			val, err := f.value(tok)
			if err != nil {
				return nil, &BadConvertError{Cmd: inv.Cmd, Arg: f.Name, Cause: err}
			}
			inv.Args[f.Name] = val

		case FieldRestRequired, FieldRestOptional:
			if err := s.parseRest(inv, f, ts); err != nil {
				return nil, err
			}
		}
	}

	if rule.Docs.Usage.Rest.Kind == docspec.RestNone {
		if extra, ok := ts.Next(); ok {
			return nil, &TrailingError{Cmd: inv.Cmd, Extra: extra}
		}
	}
	return inv, nil
}

// parseRest consumes everything remaining on the stream into the rest
// field: a nested invocation, a command path, or a converted token
// sequence. A required rest field peeks first so an empty remainder is
// reported as the owning command's missing argument; an optional one
// hands the stream over as-is, so an optional subcommand field
// surfaces the nested parser's own empty-input error.
func (s *Set) parseRest(inv *Invocation, f *Field, ts TokenStream) error {
	if f.Mode == FieldRestRequired {
		head, ok := ts.Next()
		if !ok {
			return &MissingRequiredError{Cmd: inv.Cmd, Arg: f.Name}
		}
		ts = &pushback{head: head, rest: ts}
	}

	switch {
	case f.Path:
		target := f.Sub
		if target == nil {
			target = s
		}
		p, err := target.ParsePathOpt(ts)
		if err != nil {
			return &BadConvertError{Cmd: inv.Cmd, Arg: f.Name, Cause: err}
		}
		inv.Path = p

	case f.Sub != nil:
		sub, err := f.Sub.Parse(ts)
		if err != nil {
			return &SubcommandError{Cmd: inv.Cmd, Err: err}
		}
		inv.Sub = sub

	default:
		for {
			head, ok := ts.Next()
			if !ok {
				return nil
			}
			val, err := f.value(head)
			if err != nil {
				return &BadConvertError{Cmd: inv.Cmd, Arg: f.Name, Cause: err}
			}
			inv.Rest = append(inv.Rest, val)
		}
	}
	return nil
}
