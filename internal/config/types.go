package config

// Config is the merged tool configuration, assembled from YAML section
// files under the Claude config home's dotclaude/ directory.
type Config struct {
	Statusline StatuslineConfig `yaml:"statusline"`
	Hooks      HooksConfig      `yaml:"hooks"`
}

// StatuslineConfig controls the statusline renderer.
type StatuslineConfig struct {
	// Theme selects the rendering theme: "default" or "minimal".
	Theme string `yaml:"theme"`

	// NoColor disables all ANSI color output when true.
	NoColor bool `yaml:"no_color"`

	// Segments maps segment keys to enabled state. Absent keys default to
	// enabled.
	Segments map[string]bool `yaml:"segments"`
}

// HooksConfig controls the PostToolUse workflow pipeline.
type HooksConfig struct {
	// TimeoutSeconds bounds a single hook dispatch, analyzers included.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// TranscriptLookback is the number of recent transcript entries the
	// workflow-state checks scan.
	TranscriptLookback int `yaml:"transcript_lookback"`

	// DisabledStages names pipeline stages to skip: "analyzers",
	// "todos-complete", "diagnostics-clean", "code-review-done".
	DisabledStages []string `yaml:"disabled_stages"`
}

// StageEnabled reports whether the named pipeline stage is active.
func (h HooksConfig) StageEnabled(stage string) bool {
	for _, s := range h.DisabledStages {
		if s == stage {
			return false
		}
	}
	return true
}
