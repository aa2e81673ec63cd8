package statusline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects how much of the statusline is rendered.
type Mode string

const (
	ModeDefault Mode = "default"
	ModeMinimal Mode = "minimal"
)

// contextLevel classifies context usage for coloring.
type contextLevel int

const (
	levelOk contextLevel = iota
	levelWarn
	levelError
)

// fallbackLine is emitted when there is nothing to show.
const fallbackLine = "dotclaude"

// Renderer formats StatusData into a single-line statusline string.
type Renderer struct {
	separator     string
	noColor       bool
	mutedStyle    lipgloss.Style
	warnStyle     lipgloss.Style
	errorStyle    lipgloss.Style
	segmentConfig map[string]bool
}

// NewRenderer creates a Renderer. When segmentConfig is nil or empty every
// segment is displayed; unknown keys default to enabled.
func NewRenderer(noColor bool, segmentConfig map[string]bool) *Renderer {
	r := &Renderer{
		separator:     " | ",
		noColor:       noColor,
		segmentConfig: segmentConfig,
	}
	if noColor {
		return r
	}
	r.mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	r.warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706"))
	r.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	return r
}

// Render formats the StatusData into one line. The output never contains a
// newline; nil data or an all-empty render falls back to the tool name.
func (r *Renderer) Render(data *StatusData, mode Mode) string {
	if data == nil {
		return fallbackLine
	}

	var sections []string
	if mode == ModeMinimal {
		sections = r.renderMinimal(data)
	} else {
		sections = r.renderFull(data)
	}

	filtered := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		return fallbackLine
	}
	return strings.Join(filtered, r.separator)
}

func (r *Renderer) isSegmentEnabled(key string) bool {
	if len(r.segmentConfig) == 0 {
		return true
	}
	enabled, exists := r.segmentConfig[key]
	if !exists {
		return true
	}
	return enabled
}

// renderFull emits every enabled segment:
// 🤖 Model | 🔋 ████░░░░░░░░ 41% | 💬 Style | 📁 Directory | 🔗 Links | 🔅 vClaude | ⛓ vTool
func (r *Renderer) renderFull(data *StatusData) []string {
	var sections []string

	if r.isSegmentEnabled(SegmentModel) && data.Metrics.Available && data.Metrics.Model != "" {
		sections = append(sections, fmt.Sprintf("🤖 %s", data.Metrics.Model))
	}

	if r.isSegmentEnabled(SegmentContext) {
		if graph := r.renderContextGraph(data); graph != "" {
			sections = append(sections, graph)
		}
	}

	if r.isSegmentEnabled(SegmentOutputStyle) && data.OutputStyle != "" {
		sections = append(sections, fmt.Sprintf("💬 %s", data.OutputStyle))
	}

	if r.isSegmentEnabled(SegmentDirectory) && data.Directory != "" {
		sections = append(sections, fmt.Sprintf("📁 %s", data.Directory))
	}

	if r.isSegmentEnabled(SegmentLinks) {
		if links := r.renderLinkHealth(data); links != "" {
			sections = append(sections, links)
		}
	}

	if r.isSegmentEnabled(SegmentClaudeVersion) && data.ClaudeCodeVersion != "" {
		sections = append(sections, fmt.Sprintf("🔅 v%s", data.ClaudeCodeVersion))
	}

	if r.isSegmentEnabled(SegmentToolVersion) && data.ToolVersion != "" {
		sections = append(sections, r.muted(fmt.Sprintf("⛓ %s", data.ToolVersion)))
	}

	return sections
}

// renderMinimal keeps just the model and the context graph.
func (r *Renderer) renderMinimal(data *StatusData) []string {
	var sections []string
	if data.Metrics.Available && data.Metrics.Model != "" {
		sections = append(sections, fmt.Sprintf("🤖 %s", data.Metrics.Model))
	}
	if graph := r.renderContextGraph(data); graph != "" {
		sections = append(sections, graph)
	}
	return sections
}

// renderContextGraph renders context usage as a 12-cell bar.
// 🔋 for 70% or less used, 🪫 above that.
func (r *Renderer) renderContextGraph(data *StatusData) string {
	if !data.Memory.Available || data.Memory.TokenBudget <= 0 {
		return ""
	}

	pct := usagePercent(data.Memory.TokensUsed, data.Memory.TokenBudget)

	icon := "🔋"
	if pct > 70 {
		icon = "🪫"
	}

	bar := buildBar(pct, 12)
	line := fmt.Sprintf("%s  %s %d%%", icon, bar, pct)

	switch contextUsageLevel(data.Memory.TokensUsed, data.Memory.TokenBudget) {
	case levelError:
		return r.styled(r.errorStyle, line)
	case levelWarn:
		return r.styled(r.warnStyle, line)
	default:
		return line
	}
}

// renderLinkHealth summarizes the installed symlink set. Fully linked sets
// render a short check; anything broken is spelled out.
func (r *Renderer) renderLinkHealth(data *StatusData) string {
	if !data.Links.Available || data.Links.Total == 0 {
		return ""
	}
	if data.Links.Broken > 0 {
		return r.styled(r.errorStyle, fmt.Sprintf("🔗 %d/%d (%d broken)", data.Links.Linked, data.Links.Total, data.Links.Broken))
	}
	if data.Links.Linked == data.Links.Total {
		return fmt.Sprintf("🔗 %d/%d ✓", data.Links.Linked, data.Links.Total)
	}
	return fmt.Sprintf("🔗 %d/%d", data.Links.Linked, data.Links.Total)
}

func (r *Renderer) muted(s string) string {
	return r.styled(r.mutedStyle, s)
}

func (r *Renderer) styled(style lipgloss.Style, s string) string {
	if r.noColor {
		return s
	}
	return style.Render(s)
}

// contextUsageLevel maps usage to a severity band: under 50% is fine, under
// 80% warns, 80% and up is critical.
func contextUsageLevel(used, total int) contextLevel {
	if total <= 0 {
		return levelOk
	}
	pct := usagePercent(used, total)
	switch {
	case pct >= 80:
		return levelError
	case pct >= 50:
		return levelWarn
	default:
		return levelOk
	}
}

// buildBar constructs a horizontal bar with full blocks for the used
// portion and light blocks for the rest.
func buildBar(pct, width int) string {
	if width <= 0 {
		return ""
	}
	filled := min((pct*width)/100, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
