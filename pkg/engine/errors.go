// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoInput is returned by Parse when the token stream is empty
	// before an identifier could be read.
	ErrNoInput = errors.New("no values in command parse input")

	// ErrBadRules is the sentinel error wrapped by all rule validation
	// errors raised while a Set is being built.
	ErrBadRules = errors.New("invalid command rules")
)

type (
	// NoMatchError is returned when an identifier token matches none of
	// the declared names, not even as an abbreviation.
	NoMatchError struct {
		// Given is the token as supplied by the caller.
		Given string
		// Available lists every name the set accepts.
		Available []string
	}

	// AmbiguousError is returned when an identifier token is a shared
	// prefix of several distinct commands. Usually a result of
	// specifying too few characters.
	AmbiguousError struct {
		// Candidates are the full names the token could extend to.
		Candidates []string
		// Given is the token as supplied by the caller.
		Given string
	}

	// BadIDError wraps an identifier error raised while parsing the
	// head token of a command.
	BadIDError struct {
		Err error
	}

	// MissingRequiredError is returned when the stream runs out before
	// a required argument was supplied.
	MissingRequiredError struct {
		Cmd string
		Arg string
	}

	// BadConvertError is returned when an argument token could not be
	// converted to its declared type. The cause is forwarded unchanged.
	BadConvertError struct {
		Cmd   string
		Arg   string
		Cause error
	}

	// TrailingError is returned when tokens remain after every declared
	// argument of a command without a rest argument has been consumed.
	TrailingError struct {
		Cmd   string
		Extra string
	}

	// SubcommandError wraps a nested parse failure, preserving the
	// outer command's identifier as context.
	SubcommandError struct {
		Cmd string
		Err error
	}

	// IncompletePathError is returned when a path ends at a point where
	// an identifier was still required.
	IncompletePathError struct {
		// Available lists every name the set accepts.
		Available []string
	}

	// BadPathIDError wraps an identifier error raised while resolving a
	// path component.
	BadPathIDError struct {
		Err error
	}

	// TrailingPathError is returned when path tokens remain after a
	// command with no nested set has been reached.
	TrailingPathError struct {
		Extra string
	}

	// RuleError is returned by NewSet when a rule's fields do not match
	// its usage declaration.
	RuleError struct {
		Cmd    string
		Reason string
	}
)

// Error implements the error interface.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no ID match for %q", e.Given)
}

// Error implements the error interface.
func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous ID %q, could be any of %s", e.Given, strings.Join(e.Candidates, ", "))
}

// Error implements the error interface.
func (e *BadIDError) Error() string { return "failed to parse command ID" }

// Unwrap returns the identifier error.
func (e *BadIDError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("missing required argument %q of %q", e.Arg, e.Cmd)
}

// Error implements the error interface.
func (e *BadConvertError) Error() string {
	return fmt.Sprintf("failed to convert argument %q of %q from a string", e.Arg, e.Cmd)
}

// Unwrap returns the conversion failure.
func (e *BadConvertError) Unwrap() error { return e.Cause }

// Error implements the error interface.
func (e *TrailingError) Error() string {
	return fmt.Sprintf("trailing argument %q of %q", e.Extra, e.Cmd)
}

// Error implements the error interface.
func (e *SubcommandError) Error() string {
	return fmt.Sprintf("failed to parse subcommand %q", e.Cmd)
}

// Unwrap returns the nested parse error.
func (e *SubcommandError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *IncompletePathError) Error() string { return "incomplete command path" }

// Error implements the error interface.
func (e *BadPathIDError) Error() string { return "failed to parse command path ID" }

// Unwrap returns the identifier error.
func (e *BadPathIDError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *TrailingPathError) Error() string {
	return fmt.Sprintf("trailing path argument %q", e.Extra)
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return fmt.Sprintf("invalid rules for command %q: %s", e.Cmd, e.Reason)
}

// Unwrap returns ErrBadRules.
func (e *RuleError) Unwrap() error { return ErrBadRules }
