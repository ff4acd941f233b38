// SPDX-License-Identifier: MPL-2.0

package render

import (
	"testing"

	"github.com/specbot/specbot/pkg/docspec"
	"github.com/specbot/specbot/pkg/engine"
)

const pushBlock = "push <branch> [remote] [tags...]\n\n" +
	"Push a branch.\n\n" +
	"# Description\nPush the branch upstream.\n\n" +
	"# Arguments\nbranch: The branch to push.\nremote: Where to push it.\ntags: Tags to push along.\n\n" +
	"# Examples\npush main\npush main origin\n"

func commandTopic(t *testing.T) *engine.HelpTopic {
	t.Helper()

	docs, err := docspec.ParseCommandDocs(pushBlock)
	if err != nil {
		t.Fatalf("ParseCommandDocs: %v", err)
	}
	return &engine.HelpTopic{Kind: engine.TopicCommand, Command: docs}
}

func TestFoldHelp_CommandTopic(t *testing.T) {
	t.Parallel()

	got := FoldHelp(TextHelp{}, commandTopic(t))
	want := "USAGE: push <branch> [remote] [tags...]\nPush a branch.\n\n" +
		"SUMMARY\nPush the branch upstream.\n\n" +
		"ARGUMENTS\n  branch: The branch to push.\n  remote (optional): Where to push it.\n  tags (optional): Tags to push along.\n\n" +
		"EXAMPLES\n\npush main\npush main origin"
	if got != want {
		t.Errorf("FoldHelp() = %q, want %q", got, want)
	}
}

func TestFoldHelp_CommandSetTopic(t *testing.T) {
	t.Parallel()

	statusDocs, err := docspec.ParseCommandDocs("(status|st)\n\nShow status.\n")
	if err != nil {
		t.Fatalf("ParseCommandDocs: %v", err)
	}
	pushDocs, err := docspec.ParseCommandDocs("push <branch>\n\nPush a branch.\n\n# Arguments\nbranch: The branch.\n")
	if err != nil {
		t.Fatalf("ParseCommandDocs: %v", err)
	}

	topic := &engine.HelpTopic{
		Kind:    engine.TopicCommandSet,
		Summary: "A small bot.",
		Commands: []docspec.CommandUsage{
			statusDocs.Usage,
			pushDocs.Usage,
		},
	}

	got := FoldHelp(TextHelp{}, topic)
	want := "A small bot.\n\nCOMMANDS\n  (status|st): Show status.\n  push <branch>: Push a branch."
	if got != want {
		t.Errorf("FoldHelp() = %q, want %q", got, want)
	}
}

func TestFoldHelp_CustomTopic(t *testing.T) {
	t.Parallel()

	topic := &engine.HelpTopic{Kind: engine.TopicCustom, Text: "Just some text."}
	if got := FoldHelp(TextHelp{}, topic); got != "Just some text." {
		t.Errorf("FoldHelp() = %q", got)
	}
}

func TestFoldHelp_Markdown(t *testing.T) {
	t.Parallel()

	got := FoldHelp(Markdown{}, commandTopic(t))
	want := "## Usage\n\n`push <branch> [remote] [tags...]`\n\nPush a branch.\n\n" +
		"## Summary\n\nPush the branch upstream.\n\n" +
		"## Arguments\n\n- `branch`: The branch to push.\n- `remote` (optional): Where to push it.\n- `tags` (optional): Tags to push along.\n\n" +
		"## Examples\n\n```\npush main\npush main origin\n```"
	if got != want {
		t.Errorf("FoldHelp() = %q, want %q", got, want)
	}
}
