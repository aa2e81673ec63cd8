package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	successBorder = lipgloss.Color("#10B981")
	infoBorder    = lipgloss.Color("#06B6D4")
	errorBorder   = lipgloss.Color("#DC2626")

	titleStyle = lipgloss.NewStyle().Bold(true)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706"))
)

// DisableColor turns off all styled output (for --no-color and tests).
func DisableColor() {
	colorEnabled = false
}

// kvPair is a label/value line inside a card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines formats pairs as aligned "key  value" lines.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		key := fmt.Sprintf("%-*s", width, p.key)
		if colorEnabled {
			key = keyStyle.Render(key)
		}
		lines = append(lines, key+"  "+p.value)
	}
	return strings.Join(lines, "\n")
}

func renderCardWithBorder(border lipgloss.Color, title, body string) string {
	content := title
	if colorEnabled {
		content = titleStyle.Render(title)
	}
	if body != "" {
		content += "\n\n" + body
	}
	if !colorEnabled {
		return content
	}
	return cardStyle.BorderForeground(border).Render(content)
}

// renderCard renders a bordered card with the default accent.
func renderCard(title, body string) string {
	return renderCardWithBorder(lipgloss.Color("#7C3AED"), title, body)
}

// renderSuccessCard renders a card with a success accent.
func renderSuccessCard(title, body string) string {
	return renderCardWithBorder(successBorder, title, body)
}

// renderInfoCard renders a card with an informational accent.
func renderInfoCard(title, body string) string {
	return renderCardWithBorder(infoBorder, title, body)
}

// renderErrorCard renders a card with an error accent.
func renderErrorCard(title, body string) string {
	return renderCardWithBorder(errorBorder, title, body)
}

// cliWarn formats a warning line for command output.
func cliWarn(msg string) string {
	line := "⚠ " + msg
	if !colorEnabled {
		return line
	}
	return warnStyle.Render(line)
}
