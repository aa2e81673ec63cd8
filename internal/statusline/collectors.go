package statusline

import (
	"context"
	"log/slog"
	"path/filepath"

	"golang.org/x/text/unicode/norm"

	"github.com/dotclaude/dotclaude/internal/linker"
)

// CollectMemory derives context-window usage from the stdin payload.
// Field priority: used_percentage, then current_usage, then the legacy
// used/total pair. A reported window of zero falls back to the default.
func CollectMemory(input *StdinData) *MemoryData {
	if input == nil || input.ContextWindow == nil {
		return &MemoryData{}
	}
	cw := input.ContextWindow

	budget := cw.ContextWindowSize
	if budget <= 0 {
		budget = cw.Total
	}
	if budget <= 0 {
		budget = DefaultContextWindow
	}

	switch {
	case cw.UsedPercentage != nil:
		used := int(*cw.UsedPercentage / 100 * float64(budget))
		return &MemoryData{TokensUsed: used, TokenBudget: budget, Available: true}
	case cw.CurrentUsage != nil:
		u := cw.CurrentUsage
		used := u.InputTokens + u.CacheCreationTokens + u.CacheReadTokens
		return &MemoryData{TokensUsed: used, TokenBudget: budget, Available: true}
	default:
		return &MemoryData{TokensUsed: cw.Used, TokenBudget: budget, Available: true}
	}
}

// CollectMetrics extracts the model display name.
func CollectMetrics(input *StdinData) *MetricsData {
	if input == nil || input.Model == nil {
		return &MetricsData{}
	}
	name := input.Model.Name
	if name == "" {
		name = input.Model.ID
	}
	if name == "" {
		return &MetricsData{}
	}
	return &MetricsData{Model: name, Available: true}
}

// LinkHealthProvider reports the state of the installed symlink set.
type LinkHealthProvider interface {
	CollectLinkHealth(ctx context.Context) (*LinkHealthData, error)
}

// linkCollector inspects the manifest targets under the Claude home.
type linkCollector struct {
	specs linker.Manifest
}

// NewLinkCollector creates a LinkHealthProvider over the given manifest.
func NewLinkCollector(specs linker.Manifest) LinkHealthProvider {
	return &linkCollector{specs: specs}
}

var _ LinkHealthProvider = (*linkCollector)(nil)

func (c *linkCollector) CollectLinkHealth(ctx context.Context) (*LinkHealthData, error) {
	statuses := linker.Inspect(c.specs)

	data := &LinkHealthData{Total: len(statuses), Available: true}
	for _, s := range statuses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch s.State {
		case linker.StateLinked:
			data.Linked++
		case linker.StateConflict, linker.StateMissingSource:
			data.Broken++
		}
	}
	return data, nil
}

// extractDirectory picks the directory name to display. Priority:
// workspace.project_dir, workspace.current_dir, then the legacy cwd field.
// The name is NFC-normalized so decomposed names from macOS hosts render
// with correct widths.
func extractDirectory(input *StdinData) string {
	if input == nil {
		return ""
	}
	var dir string
	switch {
	case input.Workspace != nil && input.Workspace.ProjectDir != "":
		dir = input.Workspace.ProjectDir
	case input.Workspace != nil && input.Workspace.CurrentDir != "":
		dir = input.Workspace.CurrentDir
	case input.CWD != "":
		dir = input.CWD
	default:
		return ""
	}
	name := norm.NFC.String(filepath.Base(dir))
	slog.Debug("statusline directory resolved", "name", name)
	return name
}

// usagePercent is used/total as a clamped integer percentage.
func usagePercent(used, total int) int {
	if total <= 0 {
		return 0
	}
	pct := used * 100 / total
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
