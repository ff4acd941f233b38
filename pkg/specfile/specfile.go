// SPDX-License-Identifier: MPL-2.0

// Package specfile loads a command set from a declarative CUE spec
// file. The file carries each command's documentation block verbatim,
// plus optional typed argument conversions, nested subcommand sets and
// free-form help topics. Loading validates everything once; the result
// is a ready engine.Set.
package specfile

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/specbot/specbot/pkg/cueutil"
	"github.com/specbot/specbot/pkg/docspec"
	"github.com/specbot/specbot/pkg/engine"
)

//go:embed specfile_schema.cue
var specSchema []byte

type (
	// File is the decoded form of a spec file.
	File struct {
		// Summary documents the set; paragraphs are collapsed the same
		// way command set docs are.
		Summary string `json:"summary,omitempty"`
		// Topics holds free-form help topics by name.
		Topics map[string]string `json:"topics,omitempty"`
		// Commands are the set's commands in declaration order.
		Commands []CommandSpec `json:"commands"`
	}

	// CommandSpec is one declared command.
	CommandSpec struct {
		// Docs is the full documentation block.
		Docs string `json:"docs"`
		// Args maps declared argument names to a conversion type:
		// string, int, float or bool.
		Args map[string]string `json:"args,omitempty"`
		// Subcommands nests a set under the command's rest argument.
		Subcommands *File `json:"subcommands,omitempty"`
		// Path marks the rest argument as a command path.
		Path bool `json:"path,omitempty"`
	}
)

// Parse reads and compiles a spec file from disk.
func Parse(path string) (*engine.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes compiles spec file content: the CUE layer validates the
// file shape, then every documentation block is parsed and the engine
// set is built. All failures are spec-load fatal; none survive into
// parse calls.
func ParseBytes(data []byte, path string) (*engine.Set, error) {
	result, err := cueutil.ParseAndDecode[File](
		specSchema,
		data,
		"#Spec",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	set, err := Build(result.Value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Build compiles an already decoded File into an engine set.
func Build(f *File) (*engine.Set, error) {
	rules := make([]*engine.Rule, len(f.Commands))
	for i := range f.Commands {
		rule, err := buildRule(&f.Commands[i])
		if err != nil {
			return nil, fmt.Errorf("commands[%d]: %w", i, err)
		}
		rules[i] = rule
	}

	var opts []engine.Option
	for name, text := range f.Topics {
		opts = append(opts, engine.WithCustomTopic(name, text))
	}

	summary := docspec.ParseCommandSetDocs(f.Summary).Summary
	return engine.NewSet(summary, rules, opts...)
}

func buildRule(cs *CommandSpec) (*engine.Rule, error) {
	docs, err := docspec.ParseCommandDocs(cs.Docs)
	if err != nil {
		return nil, err
	}

	args := docs.Usage.Arguments()

	declared := make(map[string]bool, len(args))
	for _, a := range args {
		declared[a.Name] = true
	}
	for name := range cs.Args {
		if !declared[name] {
			return nil, fmt.Errorf("args: %q is not declared by the usage line", name)
		}
	}

	hasRest := docs.Usage.Rest.Kind != docspec.RestNone
	if cs.Subcommands != nil && !hasRest {
		return nil, fmt.Errorf("subcommands: command %q declares no rest argument to delegate", docs.Usage.ID())
	}
	if cs.Path && !hasRest {
		return nil, fmt.Errorf("path: command %q declares no rest argument to consume", docs.Usage.ID())
	}

	fields := make([]engine.Field, len(args))
	for i, a := range args {
		field := engine.Field{Name: a.Name}

		switch {
		case a.Rest && a.Required:
			field.Mode = engine.FieldRestRequired
		case a.Rest:
			field.Mode = engine.FieldRestOptional
		case a.Required:
			field.Mode = engine.FieldRequired
		default:
			field.Mode = engine.FieldOptional
		}

		field.Convert, err = convertFor(cs.Args[a.Name])
		if err != nil {
			return nil, fmt.Errorf("args: %q: %w", a.Name, err)
		}

		if a.Rest {
			if cs.Subcommands != nil {
				field.Sub, err = Build(cs.Subcommands)
				if err != nil {
					return nil, fmt.Errorf("subcommands: %w", err)
				}
			}
			field.Path = cs.Path
		}
		fields[i] = field
	}

	return &engine.Rule{Docs: docs, Fields: fields}, nil
}

// convertFor maps a declared argument type to its conversion. The CUE
// schema already constrains the type names; the default case guards
// hand-built Files.
func convertFor(typ string) (engine.Convert, error) {
	switch typ {
	case "", "string":
		return nil, nil
	case "int":
		return func(tok string) (any, error) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, err
			}
			return n, nil
		}, nil
	case "float":
		return func(tok string) (any, error) {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, err
			}
			return f, nil
		}, nil
	case "bool":
		return func(tok string) (any, error) {
			b, err := strconv.ParseBool(tok)
			if err != nil {
				return nil, err
			}
			return b, nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown argument type %q", typ)
	}
}
