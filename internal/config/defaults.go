package config

// Default values applied before any section file is read.
const (
	DefaultTheme              = "default"
	DefaultTimeoutSeconds     = 30
	DefaultTranscriptLookback = 100
)

// NewDefaultConfig returns a Config with every field at its default.
// Section loaders overwrite only the sections their files declare.
func NewDefaultConfig() *Config {
	return &Config{
		Statusline: StatuslineConfig{
			Theme: DefaultTheme,
		},
		Hooks: HooksConfig{
			TimeoutSeconds:     DefaultTimeoutSeconds,
			TranscriptLookback: DefaultTranscriptLookback,
		},
	}
}
