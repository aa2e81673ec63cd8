package hook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// todoCompletionHandler is the first pipeline stage. When a TodoWrite call
// marks every task completed it blocks, prompting Claude to run project
// diagnostics before declaring the work done.
type todoCompletionHandler struct {
	lookback int
}

// NewTodoCompletionHandler creates the stage-one PostToolUse handler.
func NewTodoCompletionHandler(lookback int) Handler {
	return &todoCompletionHandler{lookback: lookback}
}

var _ Handler = (*todoCompletionHandler)(nil)

func (h *todoCompletionHandler) EventType() EventType {
	return EventPostToolUse
}

func (h *todoCompletionHandler) Handle(ctx context.Context, input *HookInput) (*HookOutput, error) {
	if input.ToolName != ToolTodoWrite {
		return nil, nil
	}

	var toolInput struct {
		Todos []Todo `json:"todos"`
	}
	if err := json.Unmarshal(input.ToolInput, &toolInput); err != nil {
		slog.Warn("unparseable TodoWrite input", "error", err)
		return nil, nil
	}

	if !AllCompleted(toolInput.Todos) {
		return nil, nil
	}

	slog.Info("all todos completed, requesting diagnostics",
		"session_id", input.SessionID,
		"tasks", len(toolInput.Todos),
	)

	reason := fmt.Sprintf(
		"All %d tasks are marked completed. Before finishing, verify the "+
			"project is clean: run the project's diagnostics (type checker, "+
			"linter, or build) on the files you changed and fix any errors "+
			"they report.",
		len(toolInput.Todos),
	)
	return NewPostToolBlockOutput(reason, &HookSpecificOutput{
		Stage:          StageTodosComplete,
		CompletedTasks: len(toolInput.Todos),
	}), nil
}
