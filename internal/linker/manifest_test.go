package linker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	p := Paths{
		SourceRoot: "/repo/claude",
		ClaudeHome: "/home/u/.claude",
	}

	t.Run("resolves_relative_paths_against_roots", func(t *testing.T) {
		path := writeManifest(t, `
links:
  - name: settings
    target: settings.json
    source: settings.json
    kind: file
  - target: skills
    source: skills
    kind: directory
`)

		specs, err := LoadManifest(path, p)
		if err != nil {
			t.Fatalf("LoadManifest error: %v", err)
		}
		if len(specs) != 2 {
			t.Fatalf("got %d specs, want 2", len(specs))
		}

		if specs[0].Target != filepath.Join(p.ClaudeHome, "settings.json") {
			t.Errorf("specs[0].Target = %q", specs[0].Target)
		}
		if specs[0].Source != filepath.Join(p.SourceRoot, "settings.json") {
			t.Errorf("specs[0].Source = %q", specs[0].Source)
		}
		if specs[1].Kind != KindDirectory {
			t.Errorf("specs[1].Kind = %v, want directory", specs[1].Kind)
		}
		if specs[1].Name != "skills" {
			t.Errorf("specs[1].Name = %q, want basename default", specs[1].Name)
		}
	})

	t.Run("honors_absolute_paths", func(t *testing.T) {
		path := writeManifest(t, `
links:
  - target: /etc/claude/settings.json
    source: /srv/claude/settings.json
`)

		specs, err := LoadManifest(path, p)
		if err != nil {
			t.Fatalf("LoadManifest error: %v", err)
		}
		if specs[0].Target != "/etc/claude/settings.json" {
			t.Errorf("Target = %q", specs[0].Target)
		}
		if specs[0].Kind != KindFile {
			t.Errorf("Kind = %v, want file default", specs[0].Kind)
		}
	})

	t.Run("rejects_unknown_kind", func(t *testing.T) {
		path := writeManifest(t, `
links:
  - target: a
    source: a
    kind: hardlink
`)

		_, err := LoadManifest(path, p)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})

	t.Run("rejects_empty_manifest", func(t *testing.T) {
		path := writeManifest(t, "links: []\n")

		_, err := LoadManifest(path, p)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})

	t.Run("rejects_missing_target", func(t *testing.T) {
		path := writeManifest(t, `
links:
  - source: a
`)

		_, err := LoadManifest(path, p)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})

	t.Run("rejects_unparsable_yaml", func(t *testing.T) {
		path := writeManifest(t, "links: [unclosed\n")

		_, err := LoadManifest(path, p)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})

	t.Run("missing_file_is_not_invalid_manifest", func(t *testing.T) {
		_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"), p)
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if errors.Is(err, ErrInvalidManifest) {
			t.Errorf("read failure should not be ErrInvalidManifest: %v", err)
		}
	})
}

func TestManifestTargets(t *testing.T) {
	m := Manifest{
		{Name: "a", Target: "/h/a"},
		{Name: "b", Target: "/h/b"},
	}
	targets := m.Targets()
	if len(targets) != 2 || targets[0] != "/h/a" || targets[1] != "/h/b" {
		t.Errorf("Targets = %v", targets)
	}
}
