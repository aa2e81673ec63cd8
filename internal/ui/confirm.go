package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrCancelled indicates the user aborted an interactive prompt.
var ErrCancelled = errors.New("cancelled by user")

// confirmImpl implements Confirmer with a huh confirm form, falling back
// to the provided default when no TTY is attached.
type confirmImpl struct {
	headless *HeadlessManager
}

// NewConfirmer creates a Confirmer gated by the headless manager.
func NewConfirmer(hm *HeadlessManager) Confirmer {
	return &confirmImpl{headless: hm}
}

var _ Confirmer = (*confirmImpl)(nil)

// Confirm prompts with the given title. Headless mode skips the prompt and
// returns fallback; Ctrl-C or Esc reports ErrCancelled.
func (c *confirmImpl) Confirm(title, description string, fallback bool) (bool, error) {
	if c.headless.IsHeadless() {
		return fallback, nil
	}

	answer := fallback
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, err
	}
	return answer, nil
}
