package linker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotclaude/dotclaude/internal/defs"
)

// Paths holds the two absolute roots the provisioning core works between:
// the repository's claude/ subtree and the Claude config home.
type Paths struct {
	// SourceRoot is the absolute path of the repository's claude/ subtree.
	SourceRoot string

	// ClaudeHome is the absolute path of the host tool's config directory,
	// normally $HOME/.claude.
	ClaudeHome string
}

// ResolveClaudeHome returns the host tool's config directory, derived from
// the current user's home directory.
func ResolveClaudeHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHomeNotFound, err)
	}
	return filepath.Join(home, defs.ClaudeHomeDirName), nil
}

// ResolvePaths computes the path layout. repoRoot selects the repository
// checkout ("." when empty); the Claude home derives from the current
// user's home directory. The claude/ subtree must exist under repoRoot.
func ResolvePaths(repoRoot string) (Paths, error) {
	if repoRoot == "" {
		repoRoot = "."
	}

	absRoot, err := filepath.Abs(repoRoot)
	if err != nil {
		return Paths{}, fmt.Errorf("resolve repo root %q: %w", repoRoot, err)
	}

	sourceRoot := filepath.Join(absRoot, defs.SourceDirName)
	info, err := os.Stat(sourceRoot)
	if err != nil || !info.IsDir() {
		return Paths{}, fmt.Errorf("%w: %s", ErrSourceRootNotFound, sourceRoot)
	}

	claudeHome, err := ResolveClaudeHome()
	if err != nil {
		return Paths{}, err
	}

	return Paths{
		SourceRoot: sourceRoot,
		ClaudeHome: claudeHome,
	}, nil
}

// ConfigDir returns the directory holding dotclaude's own YAML sections.
func (p Paths) ConfigDir() string {
	return filepath.Join(p.ClaudeHome, defs.ToolConfigDirName)
}
