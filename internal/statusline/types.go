// Package statusline renders the Claude Code status line for this
// configuration repo: model, context-window bar, output style, directory,
// symlink health and versions, formatted as a single line.
package statusline

// Segment keys for statusline.yaml segment toggles.
const (
	SegmentModel         = "model"
	SegmentContext       = "context"
	SegmentOutputStyle   = "output_style"
	SegmentDirectory     = "directory"
	SegmentLinks         = "links"
	SegmentClaudeVersion = "claude_version"
	SegmentToolVersion   = "tool_version"
)

// DefaultContextWindow is assumed when the host reports no window size.
const DefaultContextWindow = 200000

// StdinData is the statusline JSON Claude Code pipes to the command.
// Only the fields the renderer reads are declared.
type StdinData struct {
	Model         *ModelInfo         `json:"model,omitempty"`
	Workspace     *WorkspaceInfo     `json:"workspace,omitempty"`
	OutputStyle   *OutputStyleInfo   `json:"output_style,omitempty"`
	ContextWindow *ContextWindowInfo `json:"context_window,omitempty"`
	Version       string             `json:"version,omitempty"`
	CWD           string             `json:"cwd,omitempty"`
}

// ModelInfo identifies the active model.
type ModelInfo struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"display_name,omitempty"`
}

// WorkspaceInfo carries the host's directory fields.
type WorkspaceInfo struct {
	CurrentDir string `json:"current_dir,omitempty"`
	ProjectDir string `json:"project_dir,omitempty"`
}

// OutputStyleInfo names the active output style.
type OutputStyleInfo struct {
	Name string `json:"name,omitempty"`
}

// ContextWindowInfo reports context usage. Newer hosts send used_percentage
// or current_usage; older ones send the bare used/total pair.
type ContextWindowInfo struct {
	Used              int               `json:"used,omitempty"`
	Total             int               `json:"total,omitempty"`
	UsedPercentage    *float64          `json:"used_percentage,omitempty"`
	ContextWindowSize int               `json:"context_window_size,omitempty"`
	CurrentUsage      *CurrentUsageInfo `json:"current_usage,omitempty"`
}

// CurrentUsageInfo is the token breakdown of the current request.
type CurrentUsageInfo struct {
	InputTokens         int `json:"input_tokens,omitempty"`
	CacheCreationTokens int `json:"cache_creation_tokens,omitempty"`
	CacheReadTokens     int `json:"cache_read_tokens,omitempty"`
}

// MemoryData is the collected context-window state.
type MemoryData struct {
	TokensUsed  int
	TokenBudget int
	Available   bool
}

// MetricsData is the collected model state.
type MetricsData struct {
	Model     string
	Available bool
}

// LinkHealthData summarizes the installed symlink set.
type LinkHealthData struct {
	Linked    int
	Total     int
	Broken    int
	Available bool
}

// StatusData aggregates everything a render pass needs.
type StatusData struct {
	Memory            MemoryData
	Metrics           MetricsData
	Links             LinkHealthData
	Directory         string
	OutputStyle       string
	ClaudeCodeVersion string
	ToolVersion       string
}
