package hook

import (
	"context"
	"encoding/json"
	"log/slog"
)

const finalReportPrompt = "The code review is done. Produce the final " +
	"report for this work cycle: summarize what was implemented, the " +
	"diagnostics result, and the reviewer's findings with how each was " +
	"addressed. Then the cycle is complete."

// codeReviewHandler is the third pipeline stage. When a code-reviewer Task
// returns inside an active todo cycle it blocks once more, prompting Claude
// to write the final report that closes the cycle.
type codeReviewHandler struct {
	lookback int
}

// NewCodeReviewHandler creates the stage-three PostToolUse handler.
func NewCodeReviewHandler(lookback int) Handler {
	return &codeReviewHandler{lookback: lookback}
}

var _ Handler = (*codeReviewHandler)(nil)

func (h *codeReviewHandler) EventType() EventType {
	return EventPostToolUse
}

func (h *codeReviewHandler) Handle(ctx context.Context, input *HookInput) (*HookOutput, error) {
	if input.ToolName != ToolTask {
		return nil, nil
	}

	var toolInput struct {
		SubagentType string `json:"subagent_type"`
	}
	if err := json.Unmarshal(input.ToolInput, &toolInput); err != nil {
		return nil, nil
	}
	if toolInput.SubagentType != CodeReviewerAgent {
		return nil, nil
	}

	// Only a cycle that actually started with TodoWrite gets the report
	// prompt. A one-off review outside the pipeline passes through.
	uses := ReadRecentToolUses(input.TranscriptPath, h.lookback)
	if !WorkflowActive(uses) {
		return nil, nil
	}

	slog.Info("code review finished, requesting final report",
		"session_id", input.SessionID,
	)
	return NewPostToolBlockOutput(finalReportPrompt, &HookSpecificOutput{
		Stage:        StageCodeReviewDone,
		SubagentType: CodeReviewerAgent,
	}), nil
}
