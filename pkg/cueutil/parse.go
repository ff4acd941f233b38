// SPDX-License-Identifier: MPL-2.0

// Package cueutil holds the shared CUE parsing flow: compile the
// embedded schema, compile the user data, unify the two, then validate
// and decode into a Go struct. Validation failures come back with the
// file name and the CUE path of the offending value.
package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// defaultMaxFileSize caps user input so a runaway file cannot exhaust
// memory during compilation.
const defaultMaxFileSize = 1 << 20

type (
	// Result is a successful parse: the decoded struct plus the
	// unified CUE value for callers that need further lookups.
	Result[T any] struct {
		Value   *T
		Unified cue.Value
	}

	options struct {
		filename    string
		concrete    bool
		maxFileSize int64
	}

	// Option configures ParseAndDecode.
	Option func(*options)
)

// WithFilename sets the file name used in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithConcrete requires every value to be concrete after unification.
func WithConcrete() Option {
	return func(o *options) { o.concrete = true }
}

// WithMaxFileSize overrides the input size cap.
func WithMaxFileSize(n int64) Option {
	return func(o *options) { o.maxFileSize = n }
}

// ParseAndDecode unifies user data against the schema definition at
// schemaPath and decodes the result into T. Schema compilation errors
// are internal faults; everything the user can cause is formatted with
// file and CUE path context.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*Result[T], error) {
	o := options{maxFileSize: defaultMaxFileSize}
	for _, opt := range opts {
		opt(&o)
	}

	filename := o.filename
	if filename == "" {
		filename = "<input>"
	}

	if int64(len(data)) > o.maxFileSize {
		return nil, fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), o.maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	unified := schemaRoot.Unify(userValue)

	if o.concrete {
		if err := unified.Validate(cue.Concrete(true)); err != nil {
			return nil, FormatError(err, filename)
		}
	} else if err := unified.Validate(); err != nil {
		return nil, FormatError(err, filename)
	}

	var decoded T
	if err := unified.Decode(&decoded); err != nil {
		return nil, FormatError(err, filename)
	}

	return &Result[T]{Value: &decoded, Unified: unified}, nil
}
