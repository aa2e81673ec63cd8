package linker

import (
	"os"
)

// Conflicts returns the specs whose target already exists as a file,
// directory, or symlink. Lstat is used deliberately so a dangling symlink
// still counts as present: the installer must never clobber it either.
func Conflicts(specs []LinkSpec) []LinkSpec {
	var conflicts []LinkSpec
	for _, spec := range specs {
		if _, err := os.Lstat(spec.Target); err == nil {
			conflicts = append(conflicts, spec)
		}
	}
	return conflicts
}

// MissingSources returns the specs whose source does not exist or does not
// match the declared kind. Checking every source up front is cheaper and
// clearer than failing mid-batch on a bad spec.
func MissingSources(specs []LinkSpec) []LinkSpec {
	var missing []LinkSpec
	for _, spec := range specs {
		info, err := os.Stat(spec.Source)
		if err != nil {
			missing = append(missing, spec)
			continue
		}
		if info.IsDir() != (spec.Kind == KindDirectory) {
			missing = append(missing, spec)
		}
	}
	return missing
}
