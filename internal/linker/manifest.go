package linker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// manifestFile is the YAML shape of an external manifest override.
//
//	links:
//	  - name: settings.json
//	    target: settings.json        # relative to the Claude config home
//	    source: settings.json        # relative to the repo claude/ subtree
//	    kind: file
type manifestFile struct {
	Links []manifestEntry `yaml:"links"`
}

type manifestEntry struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
	Source string `yaml:"source"`
	Kind   string `yaml:"kind"`
}

// LoadManifest reads a manifest override file. Relative targets resolve
// against the Claude config home and relative sources against the source
// root; absolute paths and "~/" prefixes are honored as written. The
// compiled-in DefaultManifest remains the normal path; overrides exist for
// variant layouts and tests.
func LoadManifest(path string, p Paths) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}
	if len(file.Links) == 0 {
		return nil, fmt.Errorf("%w: %s declares no links", ErrInvalidManifest, path)
	}

	specs := make(Manifest, 0, len(file.Links))
	for idx, entry := range file.Links {
		spec, err := entry.toSpec(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s link %d: %v", ErrInvalidManifest, path, idx, err)
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

func (e manifestEntry) toSpec(p Paths) (LinkSpec, error) {
	if e.Target == "" || e.Source == "" {
		return LinkSpec{}, fmt.Errorf("target and source are required")
	}

	var kind LinkKind
	switch strings.ToLower(e.Kind) {
	case "file", "":
		kind = KindFile
	case "directory", "dir":
		kind = KindDirectory
	default:
		return LinkSpec{}, fmt.Errorf("unknown kind %q", e.Kind)
	}

	target, err := resolveEntryPath(e.Target, p.ClaudeHome)
	if err != nil {
		return LinkSpec{}, err
	}
	source, err := resolveEntryPath(e.Source, p.SourceRoot)
	if err != nil {
		return LinkSpec{}, err
	}

	name := e.Name
	if name == "" {
		name = filepath.Base(target)
	}

	return LinkSpec{Name: name, Target: target, Source: source, Kind: kind}, nil
}

// resolveEntryPath turns a manifest path into an absolute path against the
// given base directory.
func resolveEntryPath(path, base string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrHomeNotFound, err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if base == "" {
		return "", fmt.Errorf("relative path %q with no base directory", path)
	}
	return filepath.Join(base, path), nil
}
