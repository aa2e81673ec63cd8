package linker

import (
	"path/filepath"

	"github.com/dotclaude/dotclaude/internal/defs"
)

// LinkKind selects the linking and removal primitives for a spec. Some
// platforms distinguish file from directory symlinks, and removal of a
// directory link must never recurse into the link target.
type LinkKind string

const (
	// KindFile links a single file.
	KindFile LinkKind = "file"

	// KindDirectory links a whole directory.
	KindDirectory LinkKind = "directory"
)

// LinkSpec is a single declared mapping the installer must realize as a
// symlink: Target inside the Claude config home points at Source inside
// the repository tree.
type LinkSpec struct {
	// Name is the short display name used in reports.
	Name string

	// Target is the absolute path under the Claude config home.
	Target string

	// Source is the absolute path under the repository source tree.
	Source string

	// Kind determines the linking and removal primitives.
	Kind LinkKind
}

// Manifest is the ordered list of LinkSpecs for one tool version. It is
// reconstructed identically on every invocation; nothing is persisted
// between runs beyond the filesystem's own symlink entries.
type Manifest []LinkSpec

// Targets returns the target paths in declared order.
func (m Manifest) Targets() []string {
	targets := make([]string, 0, len(m))
	for _, spec := range m {
		targets = append(targets, spec.Target)
	}
	return targets
}

// DefaultManifest returns the compiled-in manifest for the given path
// layout. Order matters: the installer processes specs strictly in this
// order and rollback replays the created prefix.
func DefaultManifest(p Paths) Manifest {
	file := func(name string) LinkSpec {
		return LinkSpec{
			Name:   name,
			Target: filepath.Join(p.ClaudeHome, name),
			Source: filepath.Join(p.SourceRoot, name),
			Kind:   KindFile,
		}
	}
	dir := func(name string) LinkSpec {
		return LinkSpec{
			Name:   name,
			Target: filepath.Join(p.ClaudeHome, name),
			Source: filepath.Join(p.SourceRoot, name),
			Kind:   KindDirectory,
		}
	}

	return Manifest{
		file(defs.SettingsJSON),
		file(defs.ClaudeMD),
		file(defs.StatuslineScript),
		dir(defs.AgentsDir),
		dir(defs.CommandsDir),
		dir(defs.SkillsDir),
		dir(defs.HooksDir),
		dir(defs.OutputStylesDir),
	}
}
