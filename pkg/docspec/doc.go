// SPDX-License-Identifier: MPL-2.0

// Package docspec parses documentation-style command specifications into
// structured, validated models.
//
// A command is specified by a documentation block: the first line is a
// usage line, the following paragraph is a short description, and any
// further paragraphs are headed sections ("# Arguments", "# Examples",
// and so on). ParseCommandDocs turns such a block into a CommandDocs
// value, cross-validating the argument section against the usage line.
//
// The usage line grammar, consumed left to right:
//
//	push <branch> [remote] [args...] Push a branch.
//	(deploy|d) <env> Deploy to an environment.
//
// An identifier clause (bare word or pipe-separated alias group in
// parentheses) is followed by required arguments in angle brackets,
// optional arguments in square brackets, and at most one trailing rest
// argument marked with "...". Everything after the grammar span is the
// short description.
//
// All parsing here happens once, at spec-load time. The resulting
// models are immutable and safe for concurrent readers.
package docspec
