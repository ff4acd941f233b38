// SPDX-License-Identifier: MPL-2.0

package engine

import "github.com/specbot/specbot/pkg/docspec"

// TopicKind discriminates the variants of a HelpTopic.
type TopicKind int

const (
	// TopicCommand documents a single command.
	TopicCommand TopicKind = iota
	// TopicCommandSet documents a whole set: an optional summary and
	// the usage line of every direct command.
	TopicCommandSet
	// TopicCustom is a free-form text topic.
	TopicCustom
)

// HelpTopic is one static help record of a set, built once at compile
// time and shared by reference. The populated fields depend on Kind.
type HelpTopic struct {
	Kind TopicKind

	// Command is the documentation of a TopicCommand.
	Command *docspec.CommandDocs

	// Summary and Commands describe a TopicCommandSet.
	Summary  string
	Commands []docspec.CommandUsage

	// Text is the body of a TopicCustom.
	Text string
}

// Help returns the topic addressed by the path. A nil path yields the
// set's root topic; a path into a subcommand set recurses into that
// set's own topics.
func (s *Set) Help(path *Path) *HelpTopic {
	if path == nil {
		return s.root
	}

	rule, ok := s.byID[path.ID]
	if !ok {
		return s.root
	}

	if path.Sub != nil {
		if sub := rule.subSet(); sub != nil {
			return sub.Help(path.Sub)
		}
	}
	return s.topics[path.ID]
}

// Custom returns the free-form topic registered under name, if any.
func (s *Set) Custom(name string) (*HelpTopic, bool) {
	t, ok := s.custom[name]
	return t, ok
}
