// Package scaffold writes the skeleton of a new configuration repository:
// the claude/ subtree with a starter settings.json, CLAUDE.md, statusline
// script and the linked directories.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafePath indicates a template path that would escape the target
// directory.
var ErrUnsafePath = errors.New("template path escapes target directory")

// Result reports what a scaffold run did, per relative path.
type Result struct {
	Written []string
	Skipped []string
}

// Scaffolder writes an embedded skeleton into a repository checkout.
type Scaffolder interface {
	// Scaffold walks the skeleton and writes every file under repoRoot.
	// Existing files are never overwritten; they are reported as skipped.
	Scaffold(ctx context.Context, repoRoot string) (*Result, error)

	// List returns the relative paths of all skeleton files.
	List() []string
}

type scaffolder struct {
	fsys fs.FS
}

// New creates a Scaffolder backed by the given filesystem. Production use
// passes the embedded skeleton; tests use testing/fstest.MapFS.
func New(fsys fs.FS) Scaffolder {
	return &scaffolder{fsys: fsys}
}

var _ Scaffolder = (*scaffolder)(nil)

// Scaffold walks the skeleton filesystem and writes each file to repoRoot.
// Shell scripts get the executable bit. Cancellation is checked per file.
func (s *scaffolder) Scaffold(ctx context.Context, repoRoot string) (*Result, error) {
	repoRoot = filepath.Clean(repoRoot)
	result := &Result{}

	err := fs.WalkDir(s.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == "." || entry.IsDir() {
			return nil
		}

		if err := validatePath(path); err != nil {
			return err
		}

		destPath := filepath.Join(repoRoot, filepath.FromSlash(path))

		if _, statErr := os.Stat(destPath); statErr == nil {
			result.Skipped = append(result.Skipped, path)
			return nil
		}

		content, err := fs.ReadFile(s.fsys, path)
		if err != nil {
			return fmt.Errorf("scaffold read %q: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return fmt.Errorf("scaffold mkdir %q: %w", filepath.Dir(destPath), err)
		}

		perm := fs.FileMode(0o644)
		if strings.HasSuffix(path, ".sh") {
			perm = 0o755
		}
		if err := os.WriteFile(destPath, content, perm); err != nil {
			return fmt.Errorf("scaffold write %q: %w", destPath, err)
		}

		result.Written = append(result.Written, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List returns sorted relative paths of all files in the skeleton.
func (s *scaffolder) List() []string {
	var list []string
	_ = fs.WalkDir(s.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil || path == "." || entry.IsDir() {
			return nil
		}
		list = append(list, path)
		return nil
	})
	return list
}

// validatePath rejects skeleton paths that would write outside the target.
func validatePath(relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return fmt.Errorf("%w: %s", ErrUnsafePath, relPath)
	}
	return nil
}
