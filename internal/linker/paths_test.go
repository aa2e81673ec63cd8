package linker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePaths(t *testing.T) {
	t.Run("resolves_source_and_claude_home", func(t *testing.T) {
		root := t.TempDir()
		home := t.TempDir()
		t.Setenv("HOME", home)
		if err := os.MkdirAll(filepath.Join(root, "claude"), 0o755); err != nil {
			t.Fatalf("MkdirAll error: %v", err)
		}

		p, err := ResolvePaths(root)
		if err != nil {
			t.Fatalf("ResolvePaths error: %v", err)
		}
		if p.SourceRoot != filepath.Join(root, "claude") {
			t.Errorf("SourceRoot = %q", p.SourceRoot)
		}
		if p.ClaudeHome != filepath.Join(home, ".claude") {
			t.Errorf("ClaudeHome = %q", p.ClaudeHome)
		}
	})

	t.Run("fails_without_claude_subtree", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		_, err := ResolvePaths(t.TempDir())
		if !errors.Is(err, ErrSourceRootNotFound) {
			t.Errorf("expected ErrSourceRootNotFound, got: %v", err)
		}
	})

	t.Run("fails_when_subtree_is_a_file", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("HOME", t.TempDir())
		if err := os.WriteFile(filepath.Join(root, "claude"), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}

		_, err := ResolvePaths(root)
		if !errors.Is(err, ErrSourceRootNotFound) {
			t.Errorf("expected ErrSourceRootNotFound, got: %v", err)
		}
	})

	t.Run("fails_without_home_directory", func(t *testing.T) {
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, "claude"), 0o755); err != nil {
			t.Fatalf("MkdirAll error: %v", err)
		}
		t.Setenv("HOME", "")

		_, err := ResolvePaths(root)
		if !errors.Is(err, ErrHomeNotFound) {
			t.Errorf("expected ErrHomeNotFound, got: %v", err)
		}
	})
}

func TestConfigDir(t *testing.T) {
	p := Paths{ClaudeHome: "/home/u/.claude"}
	want := filepath.Join("/home/u/.claude", "dotclaude")
	if got := p.ConfigDir(); got != want {
		t.Errorf("ConfigDir = %q, want %q", got, want)
	}
}
