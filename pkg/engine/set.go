// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"fmt"
	"strings"

	"github.com/specbot/specbot/pkg/docspec"
	"github.com/specbot/specbot/pkg/trie"
)

// FieldMode declares how a field of a command consumes the token stream.
type FieldMode int

const (
	// FieldRequired consumes exactly one token; its absence is an error.
	FieldRequired FieldMode = iota
	// FieldOptional consumes one token when present.
	FieldOptional
	// FieldRestRequired consumes every remaining token; at least one
	// must be present.
	FieldRestRequired
	// FieldRestOptional consumes every remaining token, possibly none.
	FieldRestOptional
)

func (m FieldMode) rest() bool {
	return m == FieldRestRequired || m == FieldRestOptional
}

type (
	// Convert turns an argument token into its typed value. A failure
	// is forwarded to the caller unchanged inside a BadConvertError.
	Convert func(token string) (any, error)

	// Field is one value slot of a command, in declaration order. The
	// field list of a rule must mirror its usage declaration exactly;
	// NewSet validates this once, so Parse never re-checks it.
	Field struct {
		// Name is the argument name, matching the usage line.
		Name string
		// Mode declares how the field consumes tokens.
		Mode FieldMode
		// Convert is applied to every consumed token; nil keeps the
		// raw string.
		Convert Convert
		// Sub delegates the remaining stream to a nested command set.
		// Only valid on a rest field.
		Sub *Set
		// Path consumes the remaining stream as a command path rather
		// than per-token values. Only valid on a rest field. The path
		// resolves against Sub when set, otherwise against the owning
		// set itself.
		Path bool
	}

	// Rule binds the parsed documentation of one command to its fields.
	Rule struct {
		// Docs is the validated documentation of the command.
		Docs *docspec.CommandDocs
		// Fields declare how each documented argument is consumed and
		// converted, in usage order.
		Fields []Field
	}

	// Resolver decides whether an ambiguous identifier lookup can be
	// settled anyway. It receives every candidate entry still reachable
	// from the input and reports the winning rule, if any.
	Resolver func(candidates []trie.Entry[*Rule]) (*Rule, bool)

	// Set is a compiled command set: the identifier automaton, the
	// per-command rules and the static help topics. A Set is built once
	// by NewSet and immutable afterwards, so concurrent parse and help
	// calls need no locking.
	Set struct {
		summary string
		rules   []*Rule
		byID    map[string]*Rule
		lex     *trie.Trie[*Rule]
		names   []string
		resolve Resolver

		root   *HelpTopic
		topics map[string]*HelpTopic
		custom map[string]*HelpTopic
	}

	// Option configures a Set beyond its rules.
	Option func(*Set)
)

// WithResolver replaces the default ambiguity resolver, which only
// settles lookups whose candidates all map to the same rule.
func WithResolver(r Resolver) Option {
	return func(s *Set) { s.resolve = r }
}

// WithCustomTopic registers a free-form help topic addressable by name
// through Custom.
func WithCustomTopic(name, text string) Option {
	return func(s *Set) {
		s.custom[name] = &HelpTopic{Kind: TopicCustom, Text: text}
	}
}

// ID returns the canonical identifier of the rule's command.
func (r *Rule) ID() string { return r.Docs.Usage.ID() }

// subSet returns the nested set a rest subcommand field delegates to,
// or nil when the command has none.
func (r *Rule) subSet() *Set {
	if len(r.Fields) == 0 {
		return nil
	}
	last := r.Fields[len(r.Fields)-1]
	if last.Mode.rest() && !last.Path {
		return last.Sub
	}
	return nil
}

// NewSet compiles rules into a command set. Every rule's field list is
// validated against its usage declaration, the identifier automaton is
// built over all ids and aliases, and the help topics are prepared.
// Validation failures are fatal here so parse calls never see them.
func NewSet(summary string, rules []*Rule, opts ...Option) (*Set, error) {
	s := &Set{
		summary: summary,
		rules:   rules,
		byID:    make(map[string]*Rule, len(rules)),
		resolve: resolveEqual,
		topics:  make(map[string]*HelpTopic, len(rules)),
		custom:  make(map[string]*HelpTopic),
	}

	var entries []trie.Entry[*Rule]
	var usages []docspec.CommandUsage

	for _, r := range rules {
		if err := validateRule(r); err != nil {
			return nil, err
		}

		s.byID[r.ID()] = r
		usages = append(usages, r.Docs.Usage)
		s.topics[r.ID()] = &HelpTopic{Kind: TopicCommand, Command: r.Docs}

		for _, id := range r.Docs.Usage.IDs {
			s.names = append(s.names, id)
			entries = append(entries, trie.Entry[*Rule]{
				Key:     strings.ToLower(id),
				Payload: r,
			})
		}
	}

	lex, err := trie.New(entries)
	if err != nil {
		return nil, err
	}
	s.lex = lex

	s.root = &HelpTopic{Kind: TopicCommandSet, Summary: summary, Commands: usages}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func validateRule(r *Rule) error {
	if r.Docs == nil {
		return &RuleError{Cmd: "?", Reason: "rule has no documentation"}
	}

	cmd := r.ID()
	args := r.Docs.Usage.Arguments()
	if len(r.Fields) != len(args) {
		return &RuleError{
			Cmd:    cmd,
			Reason: fmt.Sprintf("usage declares %d arguments but the rule has %d fields", len(args), len(r.Fields)),
		}
	}

	for i, f := range r.Fields {
		arg := args[i]
		if f.Name != arg.Name {
			return &RuleError{
				Cmd:    cmd,
				Reason: fmt.Sprintf("field %d is named %q, usage declares %q", i, f.Name, arg.Name),
			}
		}

		want := FieldOptional
		switch {
		case arg.Rest && arg.Required:
			want = FieldRestRequired
		case arg.Rest:
			want = FieldRestOptional
		case arg.Required:
			want = FieldRequired
		}
		if f.Mode != want {
			return &RuleError{
				Cmd:    cmd,
				Reason: fmt.Sprintf("field %q does not match its usage declaration", f.Name),
			}
		}

		if (f.Sub != nil || f.Path) && !f.Mode.rest() {
			return &RuleError{
				Cmd:    cmd,
				Reason: fmt.Sprintf("field %q delegates the stream but is not a rest argument", f.Name),
			}
		}
	}
	return nil
}

// resolveEqual settles an ambiguous lookup only when every candidate is
// an alias of the same rule.
func resolveEqual(candidates []trie.Entry[*Rule]) (*Rule, bool) {
	first := candidates[0].Payload
	for _, cand := range candidates[1:] {
		if cand.Payload != first {
			return nil, false
		}
	}
	return first, true
}

// lookupID resolves one identifier token, case-insensitively and with
// abbreviation support, into the owning rule.
func (s *Set) lookupID(token string) (*Rule, error) {
	candidates := s.lex.Lookup(strings.ToLower(token))

	switch len(candidates) {
	case 0:
		return nil, &NoMatchError{Given: token, Available: s.names}
	case 1:
		return candidates[0].Payload, nil
	}

	if r, ok := s.resolve(candidates); ok {
		return r, nil
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Key
	}
	return nil, &AmbiguousError{Candidates: names, Given: token}
}

// Summary returns the set's documentation summary; empty means absent.
func (s *Set) Summary() string { return s.summary }

// Rules returns the compiled rules in declaration order.
func (s *Set) Rules() []*Rule { return s.rules }

// Names returns every accepted identifier and alias, in declaration
// order, as written in the usage lines.
func (s *Set) Names() []string { return s.names }
