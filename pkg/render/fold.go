// SPDX-License-Identifier: MPL-2.0

package render

import (
	"errors"

	"github.com/specbot/specbot/pkg/docspec"
	"github.com/specbot/specbot/pkg/engine"
)

type (
	// Folder decomposes structured parse errors into one output value
	// per leaf case. Nested causes arrive already folded.
	Folder[T any] interface {
		// NoIDMatch handles an identifier that matched nothing.
		NoIDMatch(given string, available []string) T
		// AmbiguousID handles an identifier matching several commands.
		AmbiguousID(candidates []string, given string) T
		// IncompletePath handles a path ending short of an identifier.
		IncompletePath(available []string) T
		// TrailingPath handles extra path tokens.
		TrailingPath(extra string) T
		// NoInput handles an empty parse input.
		NoInput() T
		// MissingRequired handles an absent required argument.
		MissingRequired(cmd, arg string) T
		// BadConvert handles an argument conversion failure.
		BadConvert(cmd, arg string, inner T) T
		// Trailing handles extra argument tokens.
		Trailing(cmd, extra string) T
		// Subcommand handles a nested parse failure.
		Subcommand(cmd string, inner T) T
		// Other handles anything outside the parse taxonomy.
		Other(err error) T
	}

	// HelpFolder decomposes a help topic into one output value per
	// structural element. Inner elements arrive already folded.
	HelpFolder[T any] interface {
		// CommandTopic combines the folded usage and description of a
		// single-command topic.
		CommandTopic(usage, desc T) T
		// CommandSetTopic combines a set summary with the folded usage
		// line of every direct command.
		CommandSetTopic(summary string, commands []T) T
		// CustomTopic handles a free-form topic.
		CustomTopic(text string) T
		// ArgumentUsage handles one argument of a usage line.
		ArgumentUsage(name string, required, rest bool) T
		// CommandUsage combines a command's ids, folded arguments and
		// short description. long hints that a full multi-line form is
		// wanted; a compact one otherwise.
		CommandUsage(ids []string, args []T, desc string, long bool) T
		// ArgumentDesc handles one entry of an arguments section.
		ArgumentDesc(name string, required bool, desc string) T
		// CommandDesc combines the long description blocks of a command.
		CommandDesc(summary string, args []T, examples string) T
	}
)

// FoldError walks a structured parse error and folds every leaf through
// f, recursing into nested causes. Errors outside the taxonomy reach
// f.Other unchanged.
func FoldError[T any](f Folder[T], err error) T {
	switch e := err.(type) {
	case *engine.NoMatchError:
		return f.NoIDMatch(e.Given, e.Available)
	case *engine.AmbiguousError:
		return f.AmbiguousID(e.Candidates, e.Given)
	case *engine.BadIDError:
		return FoldError(f, e.Err)
	case *engine.IncompletePathError:
		return f.IncompletePath(e.Available)
	case *engine.BadPathIDError:
		return FoldError(f, e.Err)
	case *engine.TrailingPathError:
		return f.TrailingPath(e.Extra)
	case *engine.MissingRequiredError:
		return f.MissingRequired(e.Cmd, e.Arg)
	case *engine.BadConvertError:
		return f.BadConvert(e.Cmd, e.Arg, FoldError(f, e.Cause))
	case *engine.TrailingError:
		return f.Trailing(e.Cmd, e.Extra)
	case *engine.SubcommandError:
		return f.Subcommand(e.Cmd, FoldError(f, e.Err))
	}

	if errors.Is(err, engine.ErrNoInput) {
		return f.NoInput()
	}
	return f.Other(err)
}

// FoldHelp walks a help topic and folds its elements through f.
func FoldHelp[T any](f HelpFolder[T], topic *engine.HelpTopic) T {
	switch topic.Kind {
	case engine.TopicCommand:
		return f.CommandTopic(
			foldUsage(f, topic.Command.Usage, true),
			foldDesc(f, topic.Command),
		)
	case engine.TopicCommandSet:
		commands := make([]T, len(topic.Commands))
		for i := range topic.Commands {
			commands[i] = foldUsage(f, topic.Commands[i], false)
		}
		return f.CommandSetTopic(topic.Summary, commands)
	default:
		return f.CustomTopic(topic.Text)
	}
}

func foldUsage[T any](f HelpFolder[T], usage docspec.CommandUsage, long bool) T {
	decl := usage.Arguments()
	args := make([]T, len(decl))
	for i, a := range decl {
		args[i] = f.ArgumentUsage(a.Name, a.Required, a.Rest)
	}
	return f.CommandUsage(usage.IDs, args, usage.Desc, long)
}

func foldDesc[T any](f HelpFolder[T], docs *docspec.CommandDocs) T {
	args := make([]T, len(docs.Args))
	for i, a := range docs.Args {
		args[i] = f.ArgumentDesc(a.Name, a.Required, a.Desc)
	}
	return f.CommandDesc(docs.Summary, args, docs.Examples)
}
