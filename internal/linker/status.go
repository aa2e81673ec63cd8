package linker

import (
	"os"
)

// LinkState classifies one spec's current filesystem state for reporting.
type LinkState string

const (
	// StateLinked means the target is a symlink pointing at the declared source.
	StateLinked LinkState = "linked"

	// StateConflict means the target exists but is not a link to the source.
	StateConflict LinkState = "conflict"

	// StateMissingSource means the declared source is absent or the wrong kind.
	StateMissingSource LinkState = "missing-source"

	// StateAbsent means neither a link nor a conflicting target exists.
	StateAbsent LinkState = "absent"
)

// SpecStatus pairs a spec with its observed state.
type SpecStatus struct {
	Spec  LinkSpec
	State LinkState
}

// Inspect reports the current state of every spec without mutating
// anything. A spec with both a missing source and an existing foreign
// target reports the conflict: that is the condition blocking install.
func Inspect(specs []LinkSpec) []SpecStatus {
	statuses := make([]SpecStatus, 0, len(specs))
	for _, spec := range specs {
		statuses = append(statuses, SpecStatus{Spec: spec, State: inspectOne(spec)})
	}
	return statuses
}

func inspectOne(spec LinkSpec) LinkState {
	info, err := os.Lstat(spec.Target)
	if err == nil {
		if info.Mode()&os.ModeSymlink != 0 {
			if dest, err := os.Readlink(spec.Target); err == nil && dest == spec.Source {
				return StateLinked
			}
		}
		return StateConflict
	}

	if len(MissingSources([]LinkSpec{spec})) > 0 {
		return StateMissingSource
	}
	return StateAbsent
}
