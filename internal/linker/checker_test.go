package linker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConflicts(t *testing.T) {
	t.Run("empty_for_clean_targets", func(t *testing.T) {
		p := setupLayout(t)
		if got := Conflicts(DefaultManifest(p)); len(got) != 0 {
			t.Errorf("Conflicts = %d specs, want 0", len(got))
		}
	})

	t.Run("reports_existing_file_and_directory", func(t *testing.T) {
		p := setupLayout(t)
		specs := DefaultManifest(p)

		if err := os.MkdirAll(filepath.Join(p.ClaudeHome, "agents"), 0o755); err != nil {
			t.Fatalf("MkdirAll error: %v", err)
		}
		if err := os.WriteFile(filepath.Join(p.ClaudeHome, "settings.json"), []byte("{}"), 0o644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}

		got := Conflicts(specs)
		if len(got) != 2 {
			t.Fatalf("Conflicts = %d specs, want 2", len(got))
		}
	})

	t.Run("dangling_symlink_counts_as_conflict", func(t *testing.T) {
		p := setupLayout(t)
		specs := DefaultManifest(p)

		if err := os.MkdirAll(p.ClaudeHome, 0o755); err != nil {
			t.Fatalf("MkdirAll error: %v", err)
		}
		if err := os.Symlink("/nonexistent", filepath.Join(p.ClaudeHome, "CLAUDE.md")); err != nil {
			t.Fatalf("Symlink error: %v", err)
		}

		got := Conflicts(specs)
		if len(got) != 1 || got[0].Name != "CLAUDE.md" {
			t.Errorf("Conflicts = %v, want the dangling CLAUDE.md link", got)
		}
	})
}

func TestMissingSources(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(t *testing.T, p Paths)
		wantLen int
	}{
		{
			name:    "all_sources_present",
			mutate:  func(*testing.T, Paths) {},
			wantLen: 0,
		},
		{
			name: "missing_file_source",
			mutate: func(t *testing.T, p Paths) {
				if err := os.Remove(filepath.Join(p.SourceRoot, "CLAUDE.md")); err != nil {
					t.Fatalf("Remove error: %v", err)
				}
			},
			wantLen: 1,
		},
		{
			name: "missing_directory_source",
			mutate: func(t *testing.T, p Paths) {
				if err := os.RemoveAll(filepath.Join(p.SourceRoot, "commands")); err != nil {
					t.Fatalf("RemoveAll error: %v", err)
				}
			},
			wantLen: 1,
		},
		{
			name: "kind_mismatch_counts_as_missing",
			mutate: func(t *testing.T, p Paths) {
				dir := filepath.Join(p.SourceRoot, "skills")
				if err := os.RemoveAll(dir); err != nil {
					t.Fatalf("RemoveAll error: %v", err)
				}
				if err := os.WriteFile(dir, []byte("not a dir"), 0o644); err != nil {
					t.Fatalf("WriteFile error: %v", err)
				}
			},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := setupLayout(t)
			tt.mutate(t, p)

			got := MissingSources(DefaultManifest(p))
			if len(got) != tt.wantLen {
				t.Errorf("MissingSources = %d specs, want %d", len(got), tt.wantLen)
			}
		})
	}
}
