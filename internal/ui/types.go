// Package ui provides terminal UI components for the CLI: progress
// display, confirmation prompts and TTY-aware headless fallbacks.
package ui

// Progress creates progress displays for long-running operations.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar

	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar is a determinate progress display.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner is an indeterminate progress display.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm prompts with the given title and returns the answer. In
	// headless mode the prompt is skipped and fallback is returned.
	Confirm(title, description string, fallback bool) (bool, error)
}
