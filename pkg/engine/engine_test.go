// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"strconv"
	"testing"

	"github.com/specbot/specbot/pkg/docspec"
	"github.com/specbot/specbot/pkg/trie"
)

func mustDocs(t *testing.T, block string) *docspec.CommandDocs {
	t.Helper()

	docs, err := docspec.ParseCommandDocs(block)
	if err != nil {
		t.Fatalf("ParseCommandDocs(%q): %v", block, err)
	}
	return docs
}

func mustSet(t *testing.T, summary string, rules []*Rule, opts ...Option) *Set {
	t.Helper()

	s, err := NewSet(summary, rules, opts...)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return s
}

func convertInt(tok string) (any, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// modSet nests under the "mod" command of the demo set.
func modSet(t *testing.T) *Set {
	t.Helper()

	return mustSet(t, "Manage modules.", []*Rule{
		{
			Docs: mustDocs(t, "add <name>\n\nAdd a module.\n\n# Arguments\nname: The module name.\n"),
			Fields: []Field{
				{Name: "name", Mode: FieldRequired},
			},
		},
		{
			Docs: mustDocs(t, "remove <name>\n\nRemove a module.\n\n# Arguments\nname: The module name.\n"),
			Fields: []Field{
				{Name: "name", Mode: FieldRequired},
			},
		},
	})
}

// demoSet exercises every field mode: single-token arguments, plain
// rest collection, subcommand delegation and a self-addressed path.
func demoSet(t *testing.T) *Set {
	t.Helper()

	sub := modSet(t)

	return mustSet(t, "A demo bot.", []*Rule{
		{
			Docs: mustDocs(t, "deploy <env> [tag]\n\nDeploy a build.\n\n# Arguments\nenv: Target environment.\ntag: Build tag.\n"),
			Fields: []Field{
				{Name: "env", Mode: FieldRequired},
				{Name: "tag", Mode: FieldOptional},
			},
		},
		{
			Docs: mustDocs(t, "status\n\nShow the current status.\n"),
		},
		{
			Docs: mustDocs(t, "delete <id...>\n\nDelete the given entries.\n\n# Arguments\nid: Entry numbers.\n"),
			Fields: []Field{
				{Name: "id", Mode: FieldRestRequired, Convert: convertInt},
			},
		},
		{
			Docs: mustDocs(t, "mod <rest...>\n\nManage modules.\n\n# Arguments\nrest: A module subcommand.\n"),
			Fields: []Field{
				{Name: "rest", Mode: FieldRestRequired, Sub: sub},
			},
		},
		{
			Docs: mustDocs(t, "(help|h) [topic...]\n\nShow help.\n\n# Arguments\ntopic: A command path.\n"),
			Fields: []Field{
				{Name: "topic", Mode: FieldRestOptional, Path: true},
			},
		},
	})
}

func TestNewSet_RuleValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule *Rule
	}{
		{
			"field count mismatch",
			&Rule{
				Docs: mustDocs(t, "push <branch>\n\nPush.\n\n# Arguments\nbranch: b.\n"),
			},
		},
		{
			"field name mismatch",
			&Rule{
				Docs: mustDocs(t, "push <branch>\n\nPush.\n\n# Arguments\nbranch: b.\n"),
				Fields: []Field{
					{Name: "remote", Mode: FieldRequired},
				},
			},
		},
		{
			"field mode mismatch",
			&Rule{
				Docs: mustDocs(t, "push <branch>\n\nPush.\n\n# Arguments\nbranch: b.\n"),
				Fields: []Field{
					{Name: "branch", Mode: FieldOptional},
				},
			},
		},
		{
			"non-rest field delegating",
			&Rule{
				Docs: mustDocs(t, "push <branch>\n\nPush.\n\n# Arguments\nbranch: b.\n"),
				Fields: []Field{
					{Name: "branch", Mode: FieldRequired, Path: true},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSet("", []*Rule{tt.rule})
			if err == nil {
				t.Fatal("NewSet: expected error, got nil")
			}
			if !errors.Is(err, ErrBadRules) {
				t.Errorf("NewSet error = %v, want wrapped %v", err, ErrBadRules)
			}
		})
	}
}

func TestNewSet_DuplicateIdentifier(t *testing.T) {
	t.Parallel()

	rules := []*Rule{
		{Docs: mustDocs(t, "status\n\nShow status.\n")},
		{Docs: mustDocs(t, "(stat|status)\n\nAlso status.\n")},
	}

	_, err := NewSet("", rules)
	if !errors.Is(err, trie.ErrDuplicateKey) {
		t.Fatalf("NewSet error = %v, want wrapped %v", err, trie.ErrDuplicateKey)
	}
}

func TestSetNames(t *testing.T) {
	t.Parallel()

	s := demoSet(t)

	want := []string{"deploy", "status", "delete", "mod", "help", "h"}
	got := s.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
