// SPDX-License-Identifier: MPL-2.0

package engine

import "testing"

func TestHelp_Root(t *testing.T) {
	t.Parallel()

	s := demoSet(t)

	topic := s.Help(nil)
	if topic.Kind != TopicCommandSet {
		t.Fatalf("Kind = %v, want TopicCommandSet", topic.Kind)
	}
	if topic.Summary != "A demo bot." {
		t.Errorf("Summary = %q, want %q", topic.Summary, "A demo bot.")
	}
	if len(topic.Commands) != 5 {
		t.Errorf("Commands = %d entries, want 5", len(topic.Commands))
	}

	// The root topic is a stable record, not rebuilt per call.
	if s.Help(nil) != topic {
		t.Error("Help(nil) returned a different topic on the second call")
	}
}

func TestHelp_Command(t *testing.T) {
	t.Parallel()

	s := demoSet(t)

	for _, id := range []string{"deploy", "status", "delete", "mod", "help"} {
		topic := s.Help(&Path{ID: id})
		if topic.Kind != TopicCommand {
			t.Fatalf("Help(%s).Kind = %v, want TopicCommand", id, topic.Kind)
		}
		if got := topic.Command.Usage.ID(); got != id {
			t.Errorf("Help(%s) usage ID = %q", id, got)
		}
	}
}

func TestHelp_Nested(t *testing.T) {
	t.Parallel()

	s := demoSet(t)

	topic := s.Help(&Path{ID: "mod", Sub: &Path{ID: "add"}})
	if topic.Kind != TopicCommand {
		t.Fatalf("Kind = %v, want TopicCommand", topic.Kind)
	}
	if got := topic.Command.Usage.ID(); got != "add" {
		t.Errorf("usage ID = %q, want add", got)
	}
}

func TestHelp_CustomTopic(t *testing.T) {
	t.Parallel()

	s := mustSet(t, "", []*Rule{
		{Docs: mustDocs(t, "status\n\nShow status.\n")},
	}, WithCustomTopic("about", "A bot about nothing."))

	topic, ok := s.Custom("about")
	if !ok {
		t.Fatal("Custom(about) not found")
	}
	if topic.Kind != TopicCustom || topic.Text != "A bot about nothing." {
		t.Errorf("topic = %+v, want custom text", topic)
	}

	if _, ok := s.Custom("missing"); ok {
		t.Error("Custom(missing) found, want absent")
	}
}
