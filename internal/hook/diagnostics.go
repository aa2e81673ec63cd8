package hook

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
)

// errorOutputPatterns match diagnostic failures in command output. They
// cover the common shapes emitted by tsc, eslint, mypy, pytest and go
// vet/build without being tied to any one of them.
var errorOutputPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s+error(s)?`),
	regexp.MustCompile(`ERROR:`),
	regexp.MustCompile(`FAILED`),
	regexp.MustCompile(`✖`),
	regexp.MustCompile(`found .* error`),
	regexp.MustCompile(`compilation failed`),
	regexp.MustCompile(`type error`),
	regexp.MustCompile(`mypy:.*error`),
}

const reviewPrompt = "Diagnostics are clean. Now invoke the code-reviewer " +
	"agent via the Task tool (subagent_type: \"code-reviewer\") to review " +
	"the changes made in this session before reporting completion."

// diagnosticsHandler is the second pipeline stage. After a diagnostics run
// comes back clean while a todo cycle is awaiting review, it blocks and
// prompts Claude to invoke the code-reviewer agent. Diagnostics that still
// show errors pass through so Claude keeps fixing them.
type diagnosticsHandler struct {
	lookback int
}

// NewDiagnosticsHandler creates the stage-two PostToolUse handler.
func NewDiagnosticsHandler(lookback int) Handler {
	return &diagnosticsHandler{lookback: lookback}
}

var _ Handler = (*diagnosticsHandler)(nil)

func (h *diagnosticsHandler) EventType() EventType {
	return EventPostToolUse
}

func (h *diagnosticsHandler) Handle(ctx context.Context, input *HookInput) (*HookOutput, error) {
	clean, tool := diagnosticsVerdict(input)
	if tool == "" {
		return nil, nil
	}
	if !clean {
		slog.Debug("diagnostics reported errors, letting Claude fix them",
			"tool", tool,
			"session_id", input.SessionID,
		)
		return nil, nil
	}

	uses := ReadRecentToolUses(input.TranscriptPath, h.lookback)
	if !WorkflowAwaitingReview(uses) {
		return nil, nil
	}

	slog.Info("diagnostics clean, requesting code review",
		"tool", tool,
		"session_id", input.SessionID,
	)
	return NewPostToolBlockOutput(reviewPrompt, &HookSpecificOutput{
		Stage:           StageDiagnostics,
		DiagnosticsTool: tool,
	}), nil
}

// diagnosticsVerdict classifies the tool invocation. It returns whether the
// run was clean and which diagnostics tool produced it; an empty tool name
// means the invocation was not a diagnostics run at all.
func diagnosticsVerdict(input *HookInput) (clean bool, tool string) {
	switch input.ToolName {
	case ToolMCPDiagnostics:
		return mcpDiagnosticsClean(input.ToolResponse), input.ToolName
	case ToolBash:
		if !isDiagnosticsCommand(input.ToolInput) {
			return false, ""
		}
		return bashDiagnosticsClean(input.ToolResponse), input.ToolName
	default:
		return false, ""
	}
}

// diagnosticsCommands are the command prefixes treated as diagnostics runs
// when invoked through Bash.
var diagnosticsCommands = []string{
	"tsc", "npx tsc",
	"eslint", "npx eslint",
	"mypy", "ruff",
	"go vet", "go build", "golangci-lint",
	"pyright", "npx pyright",
}

func isDiagnosticsCommand(toolInput json.RawMessage) bool {
	var in struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal(toolInput, &in); err != nil {
		return false
	}
	cmd := strings.TrimSpace(in.Command)
	for _, prefix := range diagnosticsCommands {
		if cmd == prefix || strings.HasPrefix(cmd, prefix+" ") {
			return true
		}
	}
	return false
}

// mcpDiagnosticsClean inspects an MCP get_diagnostics response. The run is
// clean when no reported item has severity error or warning (<= 1).
func mcpDiagnosticsClean(response json.RawMessage) bool {
	var resp struct {
		Diagnostics []struct {
			Severity int `json:"severity"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal(response, &resp); err != nil {
		// Some servers return the list bare.
		var bare []struct {
			Severity int `json:"severity"`
		}
		if err := json.Unmarshal(response, &bare); err != nil {
			return false
		}
		resp.Diagnostics = bare
	}
	for _, d := range resp.Diagnostics {
		if d.Severity <= 1 {
			return false
		}
	}
	return true
}

// bashDiagnosticsClean inspects a Bash tool response: a non-zero exit code
// or error-looking output means the run was not clean.
func bashDiagnosticsClean(response json.RawMessage) bool {
	var resp struct {
		ExitCode *int   `json:"exit_code"`
		Stdout   string `json:"stdout"`
		Stderr   string `json:"stderr"`
	}
	if err := json.Unmarshal(response, &resp); err != nil {
		return false
	}
	if resp.ExitCode != nil && *resp.ExitCode != 0 {
		return false
	}
	combined := resp.Stdout + "\n" + resp.Stderr
	for _, pattern := range errorOutputPatterns {
		if pattern.MatchString(combined) {
			return false
		}
	}
	return true
}
