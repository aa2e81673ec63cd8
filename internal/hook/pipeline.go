package hook

import (
	"time"

	"github.com/dotclaude/dotclaude/internal/config"
)

// Stage names, used for selective disabling in hooks.yaml.
const (
	StageAnalyzers      = "analyzers"
	StageTodosComplete  = "todos-complete"
	StageDiagnostics    = "diagnostics-clean"
	StageCodeReviewDone = "code-review-done"
)

// NewPipeline builds the registry with the full PostToolUse workflow. The
// analyzer runner is registered ahead of the todo-completion handler so a
// failing analyzer blocks with concrete errors instead of a generic prompt.
func NewPipeline(cfg *config.Config) Registry {
	timeout := time.Duration(cfg.Hooks.TimeoutSeconds) * time.Second
	lookback := cfg.Hooks.TranscriptLookback

	r := NewRegistryWithTimeout(timeout)
	if cfg.Hooks.StageEnabled(StageAnalyzers) {
		r.Register(NewAnalyzerHandler(nil))
	}
	if cfg.Hooks.StageEnabled(StageTodosComplete) {
		r.Register(NewTodoCompletionHandler(lookback))
	}
	if cfg.Hooks.StageEnabled(StageDiagnostics) {
		r.Register(NewDiagnosticsHandler(lookback))
	}
	if cfg.Hooks.StageEnabled(StageCodeReviewDone) {
		r.Register(NewCodeReviewHandler(lookback))
	}
	return r
}
