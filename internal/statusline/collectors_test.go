package statusline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dotclaude/dotclaude/internal/linker"
)

func floatPtr(f float64) *float64 { return &f }

func TestCollectMemory(t *testing.T) {
	tests := []struct {
		name       string
		input      *StdinData
		wantUsed   int
		wantBudget int
		wantAvail  bool
	}{
		{
			name: "legacy_used_total_pair",
			input: &StdinData{
				ContextWindow: &ContextWindowInfo{Used: 50000, Total: 200000},
			},
			wantUsed:   50000,
			wantBudget: 200000,
			wantAvail:  true,
		},
		{
			name:      "nil_input",
			input:     nil,
			wantAvail: false,
		},
		{
			name:      "nil_context_window",
			input:     &StdinData{Model: &ModelInfo{Name: "claude-sonnet-4"}},
			wantAvail: false,
		},
		{
			name: "zero_values_session_start",
			input: &StdinData{
				ContextWindow: &ContextWindowInfo{Used: 0, Total: 0},
			},
			wantUsed:   0,
			wantBudget: DefaultContextWindow,
			wantAvail:  true,
		},
		{
			name: "used_percentage_takes_priority",
			input: &StdinData{
				ContextWindow: &ContextWindowInfo{
					Used:              1,
					UsedPercentage:    floatPtr(25.0),
					ContextWindowSize: 200000,
				},
			},
			wantUsed:   50000,
			wantBudget: 200000,
			wantAvail:  true,
		},
		{
			name: "current_usage_sums_token_kinds",
			input: &StdinData{
				ContextWindow: &ContextWindowInfo{
					ContextWindowSize: 200000,
					CurrentUsage: &CurrentUsageInfo{
						InputTokens:         30000,
						CacheCreationTokens: 10000,
						CacheReadTokens:     10000,
					},
				},
			},
			wantUsed:   50000,
			wantBudget: 200000,
			wantAvail:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectMemory(tt.input)

			if got.TokensUsed != tt.wantUsed {
				t.Errorf("TokensUsed = %d, want %d", got.TokensUsed, tt.wantUsed)
			}
			if got.TokenBudget != tt.wantBudget {
				t.Errorf("TokenBudget = %d, want %d", got.TokenBudget, tt.wantBudget)
			}
			if got.Available != tt.wantAvail {
				t.Errorf("Available = %v, want %v", got.Available, tt.wantAvail)
			}
		})
	}
}

func TestCollectMetrics(t *testing.T) {
	tests := []struct {
		name      string
		input     *StdinData
		wantModel string
		wantAvail bool
	}{
		{"display_name", &StdinData{Model: &ModelInfo{Name: "Sonnet 4.5"}}, "Sonnet 4.5", true},
		{"falls_back_to_id", &StdinData{Model: &ModelInfo{ID: "claude-sonnet-4-5"}}, "claude-sonnet-4-5", true},
		{"nil_model", &StdinData{}, "", false},
		{"nil_input", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectMetrics(tt.input)
			if got.Model != tt.wantModel || got.Available != tt.wantAvail {
				t.Errorf("CollectMetrics() = %+v, want model=%q avail=%v", got, tt.wantModel, tt.wantAvail)
			}
		})
	}
}

func TestContextUsageLevel(t *testing.T) {
	tests := []struct {
		name  string
		used  int
		total int
		want  contextLevel
	}{
		{"ok_low_usage", 50000, 200000, levelOk},
		{"ok_zero_usage", 0, 200000, levelOk},
		{"ok_49_percent", 98000, 200000, levelOk},
		{"warn_exactly_50", 100000, 200000, levelWarn},
		{"warn_65_percent", 130000, 200000, levelWarn},
		{"warn_79_percent", 158000, 200000, levelWarn},
		{"error_exactly_80", 160000, 200000, levelError},
		{"error_full", 200000, 200000, levelError},
		{"ok_zero_total", 0, 0, levelOk},
		{"ok_negative_total", 100, -1, levelOk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contextUsageLevel(tt.used, tt.total); got != tt.want {
				t.Errorf("contextUsageLevel(%d, %d) = %v, want %v", tt.used, tt.total, got, tt.want)
			}
		})
	}
}

func TestExtractDirectory(t *testing.T) {
	tests := []struct {
		name  string
		input *StdinData
		want  string
	}{
		{
			"project_dir_preferred",
			&StdinData{
				Workspace: &WorkspaceInfo{ProjectDir: "/home/u/proj", CurrentDir: "/home/u/proj/sub"},
				CWD:       "/tmp",
			},
			"proj",
		},
		{
			"current_dir_second",
			&StdinData{Workspace: &WorkspaceInfo{CurrentDir: "/home/u/proj/sub"}},
			"sub",
		},
		{"legacy_cwd", &StdinData{CWD: "/var/work"}, "work"},
		{"nothing_set", &StdinData{}, ""},
		{"nil_input", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractDirectory(tt.input); got != tt.want {
				t.Errorf("extractDirectory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinkCollector(t *testing.T) {
	t.Run("counts_linked_and_broken", func(t *testing.T) {
		dir := t.TempDir()
		source := filepath.Join(dir, "src.md")
		if err := os.WriteFile(source, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		linked := filepath.Join(dir, "linked.md")
		if err := os.Symlink(source, linked); err != nil {
			t.Fatal(err)
		}
		conflict := filepath.Join(dir, "conflict.md")
		if err := os.WriteFile(conflict, []byte("y"), 0o644); err != nil {
			t.Fatal(err)
		}

		specs := linker.Manifest{
			{Name: "linked", Target: linked, Source: source, Kind: linker.KindFile},
			{Name: "conflict", Target: conflict, Source: source, Kind: linker.KindFile},
			{Name: "absent", Target: filepath.Join(dir, "absent.md"), Source: source, Kind: linker.KindFile},
		}

		data, err := NewLinkCollector(specs).CollectLinkHealth(context.Background())
		if err != nil {
			t.Fatalf("CollectLinkHealth() error = %v", err)
		}
		if data.Total != 3 || data.Linked != 1 || data.Broken != 1 {
			t.Errorf("unexpected health: %+v", data)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		specs := linker.Manifest{{Name: "a", Target: "/nope", Source: "/nope", Kind: linker.KindFile}}
		if _, err := NewLinkCollector(specs).CollectLinkHealth(ctx); err == nil {
			t.Error("expected context error")
		}
	})
}
