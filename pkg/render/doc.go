// SPDX-License-Identifier: MPL-2.0

// Package render turns structured parse errors and help topics into
// human-readable output. The Folder and HelpFolder interfaces decompose
// values into their leaf cases; Text and TextHelp produce plain English,
// Markdown produces markdown that ANSI renders for terminals, and
// DidYouMean ranks fuzzy suggestions for unmatched identifiers.
package render
