// SPDX-License-Identifier: MPL-2.0

// Package engine turns validated command documentation into a runtime
// parser. A Set compiles once from per-command rules and is immutable
// afterwards: identifier lookup runs over a prefix automaton with
// abbreviation and ambiguity handling, argument parsing is a single
// forward pass over a fused token stream, and help topics are static
// records addressed by command path. Parse calls are independent and
// safe to run concurrently against a shared Set.
package engine
