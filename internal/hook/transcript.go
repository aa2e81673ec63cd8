package hook

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
)

// maxTranscriptLine bounds a single transcript line. Tool results can
// carry whole file contents.
const maxTranscriptLine = 4 * 1024 * 1024

// TranscriptEntry is one JSONL line of a Claude Code session transcript,
// reduced to the fields the workflow-state checks read.
type TranscriptEntry struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// IsToolUse reports whether the entry records a tool invocation.
func (e TranscriptEntry) IsToolUse() bool {
	return e.Type == "tool_use"
}

// SubagentType extracts tool_input.subagent_type for Task entries.
func (e TranscriptEntry) SubagentType() string {
	var input struct {
		SubagentType string `json:"subagent_type"`
	}
	if err := json.Unmarshal(e.Input, &input); err != nil {
		return ""
	}
	return input.SubagentType
}

// ReadRecentEntries parses the JSONL transcript and returns up to lookback
// most recent entries. Unreadable lines are skipped: transcripts are
// appended to by the host while we read, so a torn last line is normal.
// A missing transcript yields an empty slice, not an error.
func ReadRecentEntries(path string, lookback int) []TranscriptEntry {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to open transcript", "path", path, "error", err)
		}
		return nil
	}
	defer f.Close()

	var entries []TranscriptEntry

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxTranscriptLine)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry TranscriptEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("transcript read interrupted", "path", path, "error", err)
	}

	if lookback > 0 && len(entries) > lookback {
		entries = entries[len(entries)-lookback:]
	}
	return entries
}

// ReadRecentToolUses is ReadRecentEntries filtered to tool invocations.
func ReadRecentToolUses(path string, lookback int) []TranscriptEntry {
	all := ReadRecentEntries(path, 0)
	var uses []TranscriptEntry
	for _, e := range all {
		if e.IsToolUse() {
			uses = append(uses, e)
		}
	}
	if lookback > 0 && len(uses) > lookback {
		uses = uses[len(uses)-lookback:]
	}
	return uses
}

// LatestTodos returns the todo list of the most recent TodoWrite
// invocation in the transcript, or nil when none exists.
func LatestTodos(path string) []Todo {
	var last []Todo
	for _, e := range ReadRecentEntries(path, 0) {
		if !e.IsToolUse() || e.Name != ToolTodoWrite {
			continue
		}
		var input struct {
			Todos []Todo `json:"todos"`
		}
		if err := json.Unmarshal(e.Input, &input); err != nil {
			continue
		}
		if len(input.Todos) > 0 {
			last = input.Todos
		}
	}
	return last
}

// Todo is one TodoWrite list item.
type Todo struct {
	Content string `json:"content"`
	Status  string `json:"status"`
}

// AllCompleted reports whether every todo in a non-empty list is done.
func AllCompleted(todos []Todo) bool {
	if len(todos) == 0 {
		return false
	}
	for _, todo := range todos {
		if todo.Status != "completed" {
			return false
		}
	}
	return true
}

// workflowPosition scans tool uses and returns the indices of the last
// TodoWrite and the last code-reviewer Task. The pipeline is "active" when
// a TodoWrite happened after any previous review cycle, which prevents a
// stale review from suppressing a fresh one.
func workflowPosition(uses []TranscriptEntry) (lastTodoWrite, lastReviewer int) {
	lastTodoWrite, lastReviewer = -1, -1
	for i, e := range uses {
		switch {
		case e.Name == ToolTodoWrite:
			lastTodoWrite = i
		case e.Name == ToolTask && e.SubagentType() == CodeReviewerAgent:
			lastReviewer = i
		}
	}
	return lastTodoWrite, lastReviewer
}

// WorkflowActive reports whether a TodoWrite-initiated cycle is in flight.
func WorkflowActive(uses []TranscriptEntry) bool {
	lastTodoWrite, _ := workflowPosition(uses)
	return lastTodoWrite >= 0
}

// WorkflowAwaitingReview reports whether the cycle is active and the
// code reviewer has not run since the last TodoWrite.
func WorkflowAwaitingReview(uses []TranscriptEntry) bool {
	lastTodoWrite, lastReviewer := workflowPosition(uses)
	return lastTodoWrite >= 0 && lastTodoWrite > lastReviewer
}
