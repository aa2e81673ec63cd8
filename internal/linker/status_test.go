package linker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestInspect(t *testing.T) {
	t.Run("reports_absent_in_clean_environment", func(t *testing.T) {
		p := setupLayout(t)

		for _, st := range Inspect(DefaultManifest(p)) {
			if st.State != StateAbsent {
				t.Errorf("%s: state = %v, want absent", st.Spec.Name, st.State)
			}
		}
	})

	t.Run("reports_linked_after_install", func(t *testing.T) {
		p := setupLayout(t)
		specs := DefaultManifest(p)
		if err := NewInstaller(nil).Install(context.Background(), p.ClaudeHome, specs); err != nil {
			t.Fatalf("Install error: %v", err)
		}

		for _, st := range Inspect(specs) {
			if st.State != StateLinked {
				t.Errorf("%s: state = %v, want linked", st.Spec.Name, st.State)
			}
		}
	})

	t.Run("reports_conflict_for_foreign_target", func(t *testing.T) {
		p := setupLayout(t)
		specs := DefaultManifest(p)

		if err := os.MkdirAll(p.ClaudeHome, 0o755); err != nil {
			t.Fatalf("MkdirAll error: %v", err)
		}
		if err := os.WriteFile(specs[0].Target, []byte("user file"), 0o644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
		// A symlink pointing somewhere else is also a conflict.
		if err := os.Symlink("/elsewhere", specs[1].Target); err != nil {
			t.Fatalf("Symlink error: %v", err)
		}

		statuses := Inspect(specs)
		if statuses[0].State != StateConflict {
			t.Errorf("statuses[0].State = %v, want conflict", statuses[0].State)
		}
		if statuses[1].State != StateConflict {
			t.Errorf("statuses[1].State = %v, want conflict", statuses[1].State)
		}
	})

	t.Run("reports_missing_source", func(t *testing.T) {
		p := setupLayout(t)
		specs := DefaultManifest(p)
		if err := os.Remove(filepath.Join(p.SourceRoot, "CLAUDE.md")); err != nil {
			t.Fatalf("Remove error: %v", err)
		}

		for _, st := range Inspect(specs) {
			if st.Spec.Name == "CLAUDE.md" && st.State != StateMissingSource {
				t.Errorf("CLAUDE.md state = %v, want missing-source", st.State)
			}
		}
	})
}
