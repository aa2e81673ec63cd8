package hook

import "errors"

var (
	// ErrHookTimeout indicates a dispatch exceeded its timeout budget.
	ErrHookTimeout = errors.New("hook execution timed out")

	// ErrInvalidInput indicates the stdin payload was not valid JSON.
	ErrInvalidInput = errors.New("invalid hook input")
)
