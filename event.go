package main

import (
	"encoding/json"
	"fmt"
)

// Event is the descriptor for one hook occurrence. One event arrives per
// invocation; it is parsed once and never mutated.
type Event struct {
	Name    string // hook event name, e.g. "Notification", "PreToolUse"
	Tool    string // tool name for tool-use events
	Command string // shell command text when Tool is "Bash"
}

// claudePayload mirrors the JSON Claude Code writes to the hook's stdin.
type claudePayload struct {
	HookEventName string `json:"hook_event_name"`
	ToolName      string `json:"tool_name"`
	ToolInput     struct {
		Command string `json:"command"`
	} `json:"tool_input"`
}

// parseEvent decodes one stdin payload into an Event.
func parseEvent(raw []byte) (Event, error) {
	var p claudePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Event{}, fmt.Errorf("%w: %v", errBadInput, err)
	}
	if p.HookEventName == "" {
		return Event{}, fmt.Errorf("%w: missing hook_event_name", errBadInput)
	}
	return Event{
		Name:    p.HookEventName,
		Tool:    p.ToolName,
		Command: p.ToolInput.Command,
	}, nil
}

// isToolEvent reports whether the event carries a tool invocation.
func (e Event) isToolEvent() bool {
	return e.Name == "PreToolUse" || e.Name == "PostToolUse"
}
