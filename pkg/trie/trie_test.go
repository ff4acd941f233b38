// SPDX-License-Identifier: MPL-2.0

package trie

import (
	"errors"
	"testing"
)

func build(t *testing.T, keys ...string) *Trie[string] {
	t.Helper()

	entries := make([]Entry[string], len(keys))
	for i, k := range keys {
		entries[i] = Entry[string]{Key: k, Payload: k}
	}

	tr, err := New(entries)
	if err != nil {
		t.Fatalf("New(%v) error = %v", keys, err)
	}
	return tr
}

func lookupKeys(tr *Trie[string], input string) []string {
	matches := tr.Lookup(input)
	keys := make([]string, len(matches))
	for i, m := range matches {
		keys[i] = m.Key
	}
	return keys
}

func TestLookup_Abbreviation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		keys  []string
		input string
		want  []string
	}{
		{"unique prefix resolves", []string{"deploy", "status"}, "de", []string{"deploy"}},
		{"single letter resolves", []string{"deploy", "status"}, "s", []string{"status"}},
		{"full key resolves", []string{"deploy", "status"}, "deploy", []string{"deploy"}},
		{"shared prefix is ambiguous", []string{"deploy", "delete"}, "de", []string{"deploy", "delete"}},
		{"longer prefix disambiguates", []string{"deploy", "delete"}, "dep", []string{"deploy"}},
		{"no child for character", []string{"deploy", "delete"}, "dex", nil},
		{"unknown word", []string{"deploy"}, "status", nil},
		{"empty input matches everything", []string{"deploy", "status"}, "", []string{"deploy", "status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := build(t, tt.keys...)
			got := lookupKeys(tr, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Lookup(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Lookup(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLookup_ExactKeyShadowsExtensions(t *testing.T) {
	t.Parallel()

	tr := build(t, "do", "dog", "dot")

	if got := lookupKeys(tr, "do"); len(got) != 1 || got[0] != "do" {
		t.Errorf("Lookup(%q) = %v, want [do]", "do", got)
	}
	if got := lookupKeys(tr, "dog"); len(got) != 1 || got[0] != "dog" {
		t.Errorf("Lookup(%q) = %v, want [dog]", "dog", got)
	}

	// The shadow applies only where the input exhausts on the exact key;
	// a shorter prefix still sees every key beneath it.
	want := []string{"do", "dog", "dot"}
	got := lookupKeys(tr, "d")
	if len(got) != len(want) {
		t.Fatalf("Lookup(%q) = %v, want %v", "d", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lookup(%q)[%d] = %q, want %q", "d", i, got[i], want[i])
		}
	}
}

func TestNew_DuplicateKey(t *testing.T) {
	t.Parallel()

	_, err := New([]Entry[string]{
		{Key: "deploy", Payload: "a"},
		{Key: "deploy", Payload: "b"},
	})
	if err == nil {
		t.Fatal("New() with duplicate keys: expected error, got nil")
	}
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("New() error = %v, want wrapped ErrDuplicateKey", err)
	}

	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("New() error is not a *DuplicateKeyError: %v", err)
	}
	if dup.Key != "deploy" {
		t.Errorf("DuplicateKeyError.Key = %q, want %q", dup.Key, "deploy")
	}
}

func TestKeys_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	tr := build(t, "push", "pull", "status")
	want := []string{"push", "pull", "status"}
	got := tr.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
}
