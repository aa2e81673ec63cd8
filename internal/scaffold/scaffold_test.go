package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"claude/settings.json": &fstest.MapFile{Data: []byte("{}")},
		"claude/CLAUDE.md":     &fstest.MapFile{Data: []byte("# hi")},
		"claude/statusline.sh": &fstest.MapFile{Data: []byte("#!/bin/sh\n")},
	}
}

func TestScaffold(t *testing.T) {
	t.Run("writes_all_files", func(t *testing.T) {
		dir := t.TempDir()
		result, err := New(testFS()).Scaffold(context.Background(), dir)
		if err != nil {
			t.Fatalf("Scaffold() error = %v", err)
		}
		if len(result.Written) != 3 || len(result.Skipped) != 0 {
			t.Errorf("unexpected result: %+v", result)
		}

		data, err := os.ReadFile(filepath.Join(dir, "claude", "CLAUDE.md"))
		if err != nil {
			t.Fatalf("read scaffolded file: %v", err)
		}
		if string(data) != "# hi" {
			t.Errorf("unexpected content %q", data)
		}
	})

	t.Run("shell_scripts_are_executable", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits not portable")
		}
		dir := t.TempDir()
		if _, err := New(testFS()).Scaffold(context.Background(), dir); err != nil {
			t.Fatal(err)
		}

		info, err := os.Stat(filepath.Join(dir, "claude", "statusline.sh"))
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm()&0o100 == 0 {
			t.Errorf("statusline.sh not executable: %v", info.Mode())
		}
	})

	t.Run("existing_files_are_skipped_not_overwritten", func(t *testing.T) {
		dir := t.TempDir()
		existing := filepath.Join(dir, "claude", "CLAUDE.md")
		if err := os.MkdirAll(filepath.Dir(existing), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(existing, []byte("mine"), 0o644); err != nil {
			t.Fatal(err)
		}

		result, err := New(testFS()).Scaffold(context.Background(), dir)
		if err != nil {
			t.Fatalf("Scaffold() error = %v", err)
		}
		if !slices.Contains(result.Skipped, "claude/CLAUDE.md") {
			t.Errorf("existing file not reported as skipped: %+v", result)
		}

		data, _ := os.ReadFile(existing)
		if string(data) != "mine" {
			t.Error("existing file was overwritten")
		}
	})

	t.Run("cancelled_context_stops_the_walk", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := New(testFS()).Scaffold(ctx, t.TempDir()); err == nil {
			t.Error("expected context error")
		}
	})

	t.Run("list_returns_relative_paths", func(t *testing.T) {
		list := New(testFS()).List()
		if len(list) != 3 {
			t.Fatalf("expected 3 entries, got %v", list)
		}
		if !slices.Contains(list, "claude/settings.json") {
			t.Errorf("missing settings.json in %v", list)
		}
	})
}

func TestDefaultFS(t *testing.T) {
	list := New(DefaultFS()).List()
	for _, want := range []string{"claude/settings.json", "claude/CLAUDE.md", "claude/statusline.sh"} {
		if !slices.Contains(list, want) {
			t.Errorf("embedded skeleton missing %s: %v", want, list)
		}
	}
}
