// SPDX-License-Identifier: MPL-2.0

package trie

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

// ErrDuplicateKey is the sentinel error wrapped by DuplicateKeyError.
var ErrDuplicateKey = errors.New("duplicate key")

type (
	// Entry is a single key/payload pair stored in a Trie.
	Entry[T any] struct {
		// Key is the full string the entry was inserted under.
		Key string
		// Payload is the value associated with the key.
		Payload T
	}

	// DuplicateKeyError is returned by New when two entries share the exact
	// same key. Keys that are strict prefixes of one another are allowed;
	// the resulting ambiguity is surfaced at lookup time instead.
	DuplicateKeyError struct {
		Key string
	}

	// Trie is a character-keyed prefix automaton over a fixed set of
	// entries. It is built once by New and read-only afterwards, so a
	// single Trie may be shared freely between goroutines.
	Trie[T any] struct {
		entries []Entry[T]
		root    *node
	}

	node struct {
		// entries holds the indices of every entry reachable at or below
		// this node, in insertion order.
		entries []int
		// terminal is the index of the entry whose key ends exactly here,
		// if any. An input exhausting at this node matches it alone,
		// shadowing the longer keys underneath.
		terminal *int
		children map[rune]*node
	}

	// buildNode mirrors node during construction, before subtree entry
	// sets are aggregated.
	buildNode struct {
		terminal *int
		children map[rune]*buildNode
	}
)

// Error implements the error interface.
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("multiple entries for identifier %q", e.Key)
}

// Unwrap returns ErrDuplicateKey so callers can use errors.Is for
// programmatic detection.
func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// New builds a Trie from the given entries. Entry order is preserved in
// lookup results. Two entries with the identical key produce a
// DuplicateKeyError naming the offending key.
func New[T any](entries []Entry[T]) (*Trie[T], error) {
	root := &buildNode{}

	for i, e := range entries {
		if err := root.insert(i, e.Key, e.Key); err != nil {
			return nil, err
		}
	}

	t := &Trie[T]{entries: entries, root: root.freeze()}
	return t, nil
}

func (b *buildNode) insert(index int, rest, key string) error {
	if rest == "" {
		if b.terminal != nil {
			return &DuplicateKeyError{Key: key}
		}
		b.terminal = &index
		return nil
	}

	c, size := utf8.DecodeRuneInString(rest)
	if b.children == nil {
		b.children = make(map[rune]*buildNode)
	}
	child, ok := b.children[c]
	if !ok {
		child = &buildNode{}
		b.children[c] = child
	}
	return child.insert(index, rest[size:], key)
}

// freeze converts the mutable build tree into the read-only lookup tree,
// computing each node's reachable entry set bottom-up.
func (b *buildNode) freeze() *node {
	n := &node{terminal: b.terminal}

	if len(b.children) > 0 {
		n.children = make(map[rune]*node, len(b.children))
		for c, child := range b.children {
			n.children[c] = child.freeze()
		}
	}

	if b.terminal != nil {
		n.entries = append(n.entries, *b.terminal)
	}
	for _, child := range n.children {
		n.entries = append(n.entries, child.entries...)
	}
	// Child maps iterate in random order; present candidates in insertion order.
	slices.Sort(n.entries)
	return n
}

// Lookup walks the trie one character at a time and returns the entries
// still reachable once the input is exhausted. An empty result means no
// entry matches; a single result is an unambiguous match (possibly via
// abbreviation); multiple results mean the input is a shared prefix of
// several entries. An input spelling out a full key matches that entry
// alone, even when longer keys extend it.
func (t *Trie[T]) Lookup(input string) []Entry[T] {
	n := t.root
	for _, c := range input {
		child, ok := n.children[c]
		if !ok {
			return nil
		}
		n = child
	}

	if n.terminal != nil {
		return []Entry[T]{t.entries[*n.terminal]}
	}

	out := make([]Entry[T], len(n.entries))
	for i, idx := range n.entries {
		out[i] = t.entries[idx]
	}
	return out
}

// Len returns the number of entries stored in the trie.
func (t *Trie[T]) Len() int { return len(t.entries) }

// Keys returns the full key of every entry, in insertion order.
func (t *Trie[T]) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Key
	}
	return keys
}
