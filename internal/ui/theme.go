package ui

// ColorScheme holds the hex colors used across UI components.
type ColorScheme struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme configures UI rendering.
type Theme struct {
	NoColor bool
	Colors  ColorScheme
}

// DefaultTheme returns the standard theme.
func DefaultTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: ColorScheme{
			Primary:   "#7C3AED",
			Secondary: "#06B6D4",
			Success:   "#10B981",
			Error:     "#DC2626",
			Muted:     "#6B7280",
		},
	}
}
