// SPDX-License-Identifier: MPL-2.0

package docspec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidUsage is the sentinel error wrapped by all usage-line
	// syntax errors.
	ErrInvalidUsage = errors.New("invalid usage line")

	// ErrInvalidDocs is the sentinel error wrapped by all documentation
	// block errors.
	ErrInvalidDocs = errors.New("invalid command docs")

	// ErrMissingDocs is returned when a command has no documentation block
	// at all. Command sets may omit docs; commands may not.
	ErrMissingDocs = errors.New("missing documentation block for command")
)

type (
	// InvalidIDSpecError is returned when a usage line does not start with
	// a valid identifier clause.
	InvalidIDSpecError struct {
		Line string
	}

	// TrailingUsageError is returned when non-whitespace content remains
	// after the usage grammar has been fully consumed.
	TrailingUsageError struct {
		Rest string
	}

	// DuplicateSectionError is returned when a documentation block repeats
	// a section header ("summary", "arguments" or "examples").
	DuplicateSectionError struct {
		Section string
	}

	// MissingHeaderError is returned when a documentation paragraph after
	// the description does not start with a "# header" line.
	MissingHeaderError struct {
		Paragraph string
	}

	// DuplicateArgDocError is returned when an arguments section documents
	// the same name twice.
	DuplicateArgDocError struct {
		Name string
	}

	// BadArgFormatError is returned when a non-empty arguments section
	// cannot be parsed into any "name: description" entry.
	BadArgFormatError struct{}

	// MissingArgDocError is returned when a declared argument has no entry
	// in the arguments section. Have lists the names that were documented.
	MissingArgDocError struct {
		Name string
		Have []string
	}

	// ArgCountMismatchError is returned when the arguments section
	// documents a different number of names than the usage line declares,
	// which after the missing-name check means extra names were documented.
	ArgCountMismatchError struct {
		Expected int
		Got      int
	}

	// MissingDescError is returned when the short description paragraph of
	// a command is empty.
	MissingDescError struct{}
)

// Error implements the error interface.
func (e *InvalidIDSpecError) Error() string {
	return fmt.Sprintf("invalid command ID specifier, expected e.g. 'foo' or '(foo|bar)' in %q", e.Line)
}

// Unwrap returns ErrInvalidUsage.
func (e *InvalidIDSpecError) Unwrap() error { return ErrInvalidUsage }

// Error implements the error interface.
func (e *TrailingUsageError) Error() string {
	return fmt.Sprintf("trailing string %q in usage line", strings.TrimSpace(e.Rest))
}

// Unwrap returns ErrInvalidUsage.
func (e *TrailingUsageError) Unwrap() error { return ErrInvalidUsage }

// Error implements the error interface.
func (e *DuplicateSectionError) Error() string {
	return fmt.Sprintf("multiple %s sections found", e.Section)
}

// Unwrap returns ErrInvalidDocs.
func (e *DuplicateSectionError) Unwrap() error { return ErrInvalidDocs }

// Error implements the error interface.
func (e *MissingHeaderError) Error() string { return "paragraph missing header" }

// Unwrap returns ErrInvalidDocs.
func (e *MissingHeaderError) Unwrap() error { return ErrInvalidDocs }

// Error implements the error interface.
func (e *DuplicateArgDocError) Error() string {
	return fmt.Sprintf("duplicate argument description %q", e.Name)
}

// Unwrap returns ErrInvalidDocs.
func (e *DuplicateArgDocError) Unwrap() error { return ErrInvalidDocs }

// Error implements the error interface.
func (e *BadArgFormatError) Error() string { return "unexpected argument description format" }

// Unwrap returns ErrInvalidDocs.
func (e *BadArgFormatError) Unwrap() error { return ErrInvalidDocs }

// Error implements the error interface.
func (e *MissingArgDocError) Error() string {
	return fmt.Sprintf("missing documentation for argument %q (have documentation for %q)", e.Name, e.Have)
}

// Unwrap returns ErrInvalidDocs.
func (e *MissingArgDocError) Unwrap() error { return ErrInvalidDocs }

// Error implements the error interface.
func (e *ArgCountMismatchError) Error() string {
	return fmt.Sprintf("mismatched number of argument descriptions (expected %d, got %d)", e.Expected, e.Got)
}

// Unwrap returns ErrInvalidDocs.
func (e *ArgCountMismatchError) Unwrap() error { return ErrInvalidDocs }

// Error implements the error interface.
func (e *MissingDescError) Error() string { return "missing command description" }

// Unwrap returns ErrInvalidDocs.
func (e *MissingDescError) Unwrap() error { return ErrInvalidDocs }
