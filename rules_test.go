package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedEventsResolveNonEmpty(t *testing.T) {
	events := []string{
		"Notification", "Stop", "SubagentStop", "UserPromptSubmit",
		"PreToolUse", "PostToolUse",
	}
	for _, name := range events {
		rule := resolve(Event{Name: name}, nil)
		assert.NotEmpty(t, rule.Message, "event %s", name)
		assert.NotEmpty(t, rule.Key, "event %s", name)
	}
}

func TestNotificationFixedMessage(t *testing.T) {
	rule := resolve(Event{Name: "Notification"}, nil)
	assert.Equal(t, "notification", rule.Key)
	assert.Equal(t, "クロードが準備完了しました", rule.Message)
}

func TestToolResolution(t *testing.T) {
	cases := map[string]string{
		"Edit":      "edit",
		"MultiEdit": "multi_edit",
		"Write":     "write",
		"TodoWrite": "todo",
		"Read":      "read",
		"Grep":      "grep",
		"Glob":      "glob",
		"Task":      "task",
		"WebFetch":  "web_fetch",
		"WebSearch": "web_search",
	}
	for tool, key := range cases {
		rule := resolve(Event{Name: "PreToolUse", Tool: tool}, nil)
		assert.Equal(t, key, rule.Key, "tool %s", tool)
	}
}

func TestToolResolutionAppliesToPostToolUse(t *testing.T) {
	rule := resolve(Event{Name: "PostToolUse", Tool: "Edit"}, nil)
	assert.Equal(t, "edit", rule.Key)
}

func TestBashCommandResolution(t *testing.T) {
	cases := []struct {
		command string
		key     string
	}{
		{"git commit -m 'fix'", "git_commit"},
		{"git push origin main", "git_push"},
		{"git pull --rebase", "git_pull"},
		{"gh pr create --fill", "gh_pr"},
		{"pytest tests/", "test"},
		{"go test ./...", "test"},
		{"npm test", "test"},
		{"python run_tests.py", "test"},
		{"python -m unittest discover tests", "test"},
		{"make all", "build"},
		{"make", "build"},
		{"cmake -B build", "bash"},
		{"echo remake", "bash"},
		{"docker build -t app .", "docker"},
		{"npm install", "npm"},
		{"python script.py", "python"},
		{"ls -la", "bash"},
	}
	for _, tc := range cases {
		rule := resolve(Event{Name: "PreToolUse", Tool: "Bash", Command: tc.command}, nil)
		assert.Equal(t, tc.key, rule.Key, "command %q", tc.command)
		assert.NotEmpty(t, rule.Message, "command %q", tc.command)
	}
}

// A command matching both the commit and test rules announces the commit:
// table order is the tie-break.
func TestBashCommandTieBreak(t *testing.T) {
	e := Event{Name: "PreToolUse", Tool: "Bash", Command: "git commit -am wip && go test ./..."}
	rule := resolve(e, nil)
	assert.Equal(t, "git_commit", rule.Key)
}

func TestUnknownToolFallsBack(t *testing.T) {
	rule := resolve(Event{Name: "PreToolUse", Tool: "Mystery"}, nil)
	assert.Equal(t, "generic", rule.Key)
	assert.NotEmpty(t, rule.Message)
}

func TestUnknownEventFallsBack(t *testing.T) {
	rule := resolve(Event{Name: "SessionStart"}, nil)
	assert.Equal(t, "generic", rule.Key)
	assert.NotEmpty(t, rule.Message)
}

func TestResolutionIsDeterministic(t *testing.T) {
	e := Event{Name: "PreToolUse", Tool: "Bash", Command: "npm test"}
	first := resolve(e, nil)
	for i := 0; i < 20; i++ {
		rule := resolve(e, nil)
		assert.Equal(t, first.Key, rule.Key)
		assert.Equal(t, first.Message, rule.Message)
		assert.Equal(t, first.Sound, rule.Sound)
	}
}
