package statusline

import (
	"strings"
	"testing"
)

func fullData() *StatusData {
	return &StatusData{
		Memory:            MemoryData{TokensUsed: 50000, TokenBudget: 200000, Available: true},
		Metrics:           MetricsData{Model: "Sonnet 4.5", Available: true},
		Links:             LinkHealthData{Linked: 8, Total: 8, Available: true},
		Directory:         "dotclaude",
		OutputStyle:       "concise",
		ClaudeCodeVersion: "2.0.1",
		ToolVersion:       "v0.4.0",
	}
}

func TestRendererRender(t *testing.T) {
	r := NewRenderer(true, nil)

	t.Run("full_line_contains_all_segments", func(t *testing.T) {
		line := r.Render(fullData(), ModeDefault)

		for _, want := range []string{"🤖 Sonnet 4.5", "🔋", "25%", "💬 concise", "📁 dotclaude", "🔗 8/8 ✓", "🔅 v2.0.1", "⛓ v0.4.0"} {
			if !strings.Contains(line, want) {
				t.Errorf("line missing %q: %s", want, line)
			}
		}
		if strings.Contains(line, "\n") {
			t.Error("statusline must be a single line")
		}
	})

	t.Run("nil_data_falls_back", func(t *testing.T) {
		if got := r.Render(nil, ModeDefault); got != fallbackLine {
			t.Errorf("Render(nil) = %q, want %q", got, fallbackLine)
		}
	})

	t.Run("empty_data_falls_back", func(t *testing.T) {
		if got := r.Render(&StatusData{}, ModeDefault); got != fallbackLine {
			t.Errorf("Render(empty) = %q, want %q", got, fallbackLine)
		}
	})

	t.Run("minimal_mode_keeps_model_and_context", func(t *testing.T) {
		line := r.Render(fullData(), ModeMinimal)
		if !strings.Contains(line, "🤖") || !strings.Contains(line, "🔋") {
			t.Errorf("minimal line missing model or context: %s", line)
		}
		if strings.Contains(line, "📁") || strings.Contains(line, "🔗") {
			t.Errorf("minimal line should drop extra segments: %s", line)
		}
	})

	t.Run("segment_config_disables", func(t *testing.T) {
		r := NewRenderer(true, map[string]bool{SegmentDirectory: false, SegmentLinks: false})
		line := r.Render(fullData(), ModeDefault)
		if strings.Contains(line, "📁") || strings.Contains(line, "🔗") {
			t.Errorf("disabled segments still rendered: %s", line)
		}
		if !strings.Contains(line, "🤖") {
			t.Errorf("enabled segment missing: %s", line)
		}
	})

	t.Run("unknown_segment_keys_default_enabled", func(t *testing.T) {
		r := NewRenderer(true, map[string]bool{"made_up": false})
		line := r.Render(fullData(), ModeDefault)
		if !strings.Contains(line, "📁 dotclaude") {
			t.Errorf("unknown key must not disable other segments: %s", line)
		}
	})

	t.Run("low_battery_icon_above_70_percent", func(t *testing.T) {
		data := fullData()
		data.Memory.TokensUsed = 180000
		line := r.Render(data, ModeDefault)
		if !strings.Contains(line, "🪫") {
			t.Errorf("expected low battery icon: %s", line)
		}
	})

	t.Run("broken_links_are_spelled_out", func(t *testing.T) {
		data := fullData()
		data.Links = LinkHealthData{Linked: 6, Total: 8, Broken: 2, Available: true}
		line := r.Render(data, ModeDefault)
		if !strings.Contains(line, "🔗 6/8 (2 broken)") {
			t.Errorf("expected broken link summary: %s", line)
		}
	})
}

func TestBuildBar(t *testing.T) {
	tests := []struct {
		name  string
		pct   int
		width int
		want  string
	}{
		{"empty", 0, 12, "░░░░░░░░░░░░"},
		{"quarter", 25, 12, "███░░░░░░░░░"},
		{"full", 100, 12, "████████████"},
		{"zero_width", 50, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildBar(tt.pct, tt.width); got != tt.want {
				t.Errorf("buildBar(%d, %d) = %q, want %q", tt.pct, tt.width, got, tt.want)
			}
		})
	}
}
