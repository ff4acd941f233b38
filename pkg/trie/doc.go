// SPDX-License-Identifier: MPL-2.0

// Package trie implements a read-only prefix automaton used to resolve
// possibly-abbreviated command identifiers.
//
// A Trie is built once from a fixed entry list and never mutated again.
// Lookup returns every entry still reachable from the input, which lets
// callers distinguish a unique (possibly abbreviated) match from an
// ambiguous prefix or a miss. Exact keys shadow longer keys sharing the
// same prefix, so inserting both "do" and "dog" resolves the input "do"
// to the former.
package trie
