package linker

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for environment and manifest problems.
var (
	// ErrHomeNotFound indicates the user home directory could not be determined.
	ErrHomeNotFound = errors.New("home directory not found")

	// ErrSourceRootNotFound indicates the repository source tree is missing
	// the expected claude/ subtree.
	ErrSourceRootNotFound = errors.New("source tree not found")

	// ErrInvalidManifest indicates a manifest file could not be parsed or
	// declares an invalid spec.
	ErrInvalidManifest = errors.New("invalid manifest")
)

// ConflictError reports targets that already exist before installation.
// Install never overwrites pre-existing configuration; every conflicting
// target is listed so the user can resolve them in one pass.
type ConflictError struct {
	Targets []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%d target(s) already exist: %s",
		len(e.Targets), strings.Join(e.Targets, ", "))
}

// MissingSourceError reports declared sources that are absent or of the
// wrong kind. Detected before any link is created.
type MissingSourceError struct {
	Sources []string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("%d source(s) missing or wrong kind: %s",
		len(e.Sources), strings.Join(e.Sources, ", "))
}

// LinkError reports a failed symlink creation. RollbackWarnings holds the
// targets the compensating removal could not clean up; those need manual
// attention and are reported, never hidden.
type LinkError struct {
	Spec             LinkSpec
	Err              error
	RollbackWarnings []string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("create link %s -> %s: %v", e.Spec.Target, e.Spec.Source, e.Err)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}
