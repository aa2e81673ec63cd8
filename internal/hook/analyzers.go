package hook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Analyzer is a project-local diagnostics tool detected by its config
// marker files and run from the project root.
type Analyzer struct {
	Name    string
	Markers []string
	Command []string
}

// DefaultAnalyzers lists the analyzers the pipeline knows how to detect.
// Order matters: earlier entries are reported first.
func DefaultAnalyzers() []Analyzer {
	return []Analyzer{
		{
			Name:    "tsc",
			Markers: []string{"tsconfig.json"},
			Command: []string{"npx", "tsc", "--noEmit"},
		},
		{
			Name:    "eslint",
			Markers: []string{".eslintrc", ".eslintrc.js", ".eslintrc.cjs", ".eslintrc.json", ".eslintrc.yml", ".eslintrc.yaml", "eslint.config.js", "eslint.config.mjs"},
			Command: []string{"npx", "eslint", "."},
		},
		{
			Name:    "mypy",
			Markers: []string{"mypy.ini", "pyproject.toml"},
			Command: []string{"mypy", "."},
		},
		{
			Name:    "go vet",
			Markers: []string{"go.mod"},
			Command: []string{"go", "vet", "./..."},
		},
	}
}

// DetectAnalyzers returns the analyzers whose marker files exist in dir.
func DetectAnalyzers(dir string, analyzers []Analyzer) []Analyzer {
	var detected []Analyzer
	for _, a := range analyzers {
		for _, marker := range a.Markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				detected = append(detected, a)
				break
			}
		}
	}
	return detected
}

// AnalyzerResult is one analyzer run.
type AnalyzerResult struct {
	Analyzer Analyzer
	Output   string
	Err      error
}

// Failed reports whether the run found problems or could not complete.
func (r AnalyzerResult) Failed() bool {
	return r.Err != nil
}

// RunAnalyzer executes the analyzer in dir, honoring ctx cancellation.
func RunAnalyzer(ctx context.Context, dir string, a Analyzer) AnalyzerResult {
	cmd := exec.CommandContext(ctx, a.Command[0], a.Command[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return AnalyzerResult{Analyzer: a, Output: string(out), Err: err}
}

// analyzerHandler short-circuits the manual diagnostics stage. When a todo
// cycle completes it detects the project's analyzers from config markers,
// runs them, and blocks with the concrete failures. When every detected
// analyzer passes it blocks with the review prompt directly; when nothing
// is detected it stays silent so the manual diagnostics prompt applies.
// It must be registered before the todo-completion handler.
type analyzerHandler struct {
	analyzers []Analyzer
}

// NewAnalyzerHandler creates the analyzer-runner PostToolUse handler.
func NewAnalyzerHandler(analyzers []Analyzer) Handler {
	if analyzers == nil {
		analyzers = DefaultAnalyzers()
	}
	return &analyzerHandler{analyzers: analyzers}
}

var _ Handler = (*analyzerHandler)(nil)

func (h *analyzerHandler) EventType() EventType {
	return EventPostToolUse
}

func (h *analyzerHandler) Handle(ctx context.Context, input *HookInput) (*HookOutput, error) {
	if input.ToolName != ToolTodoWrite || input.CWD == "" {
		return nil, nil
	}

	var toolInput struct {
		Todos []Todo `json:"todos"`
	}
	if err := json.Unmarshal(input.ToolInput, &toolInput); err != nil {
		return nil, nil
	}
	if !AllCompleted(toolInput.Todos) {
		return nil, nil
	}

	detected := DetectAnalyzers(input.CWD, h.analyzers)
	if len(detected) == 0 {
		return nil, nil
	}

	var failures []AnalyzerResult
	for _, a := range detected {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result := RunAnalyzer(ctx, input.CWD, a)
		slog.Debug("analyzer finished",
			"analyzer", a.Name,
			"failed", result.Failed(),
		)
		if result.Failed() {
			failures = append(failures, result)
		}
	}

	if len(failures) == 0 {
		slog.Info("all analyzers passed, requesting code review",
			"session_id", input.SessionID,
			"analyzers", len(detected),
		)
		return NewPostToolBlockOutput(reviewPrompt, &HookSpecificOutput{
			Stage:           StageDiagnostics,
			DiagnosticsTool: analyzerNames(detected),
		}), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Project diagnostics failed (%d of %d analyzers). Fix the reported problems before finishing:\n", len(failures), len(detected))
	for _, f := range failures {
		fmt.Fprintf(&b, "\n--- %s ---\n%s", f.Analyzer.Name, strings.TrimSpace(f.Output))
	}
	slog.Info("analyzers reported failures",
		"session_id", input.SessionID,
		"failed", len(failures),
	)
	return NewPostToolBlockOutput(b.String(), &HookSpecificOutput{
		Stage:           "analyzers-failed",
		DiagnosticsTool: analyzerNames(resultAnalyzers(failures)),
	}), nil
}

func analyzerNames(analyzers []Analyzer) string {
	names := make([]string, len(analyzers))
	for i, a := range analyzers {
		names[i] = a.Name
	}
	return strings.Join(names, ",")
}

func resultAnalyzers(results []AnalyzerResult) []Analyzer {
	analyzers := make([]Analyzer, len(results))
	for i, r := range results {
		analyzers[i] = r.Analyzer
	}
	return analyzers
}
