package linker

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
)

// Reporter receives progress notifications during installation. Implemented
// by the CLI's progress UI; a nil Reporter disables reporting.
type Reporter interface {
	// LinkCreated is called after each successful symlink creation.
	LinkCreated(spec LinkSpec)
}

// Installer creates the manifest's symlinks with precondition checks and
// automatic rollback on the first creation failure.
type Installer struct {
	reporter Reporter
}

// NewInstaller creates an Installer. reporter may be nil.
func NewInstaller(reporter Reporter) *Installer {
	return &Installer{reporter: reporter}
}

// Install validates preconditions and creates one symlink per spec, in
// declared order.
//
// Preconditions: no target may pre-exist (ConflictError lists every
// offender) and every source must exist with the declared kind
// (MissingSourceError). Both checks run before any mutation, so a failed
// precondition leaves the filesystem untouched.
//
// On a creation failure the links created so far in this run are removed
// again, in creation order; each deletion is independent, so the order is
// not significant. Rollback failures are collected into the returned
// LinkError as warnings rather than escalated: the run is already failing
// and the user needs the full cleanup picture, not a second fatal error.
func (i *Installer) Install(ctx context.Context, claudeHome string, specs []LinkSpec) error {
	if conflicts := Conflicts(specs); len(conflicts) > 0 {
		targets := make([]string, 0, len(conflicts))
		for _, spec := range conflicts {
			targets = append(targets, spec.Target)
		}
		return &ConflictError{Targets: targets}
	}

	if missing := MissingSources(specs); len(missing) > 0 {
		sources := make([]string, 0, len(missing))
		for _, spec := range missing {
			sources = append(sources, spec.Source)
		}
		return &MissingSourceError{Sources: sources}
	}

	// Non-fatal when the directory already exists.
	if err := os.MkdirAll(claudeHome, 0o755); err != nil {
		return &LinkError{Spec: LinkSpec{Target: claudeHome}, Err: err}
	}

	created := make([]LinkSpec, 0, len(specs))

	for _, spec := range specs {
		select {
		case <-ctx.Done():
			return i.fail(ctx, spec, ctx.Err(), created)
		default:
		}

		if err := createLink(spec); err != nil {
			return i.fail(ctx, spec, err, created)
		}

		created = append(created, spec)
		slog.Debug("link created",
			"target", spec.Target,
			"source", spec.Source,
			"kind", string(spec.Kind),
		)
		if i.reporter != nil {
			i.reporter.LinkCreated(spec)
		}
	}

	return nil
}

// fail rolls back the created prefix and wraps the failure.
func (i *Installer) fail(ctx context.Context, spec LinkSpec, err error, created []LinkSpec) error {
	slog.Error("link creation failed, rolling back",
		"target", spec.Target,
		"created_so_far", len(created),
		"error", err,
	)

	var warnings []string
	// Rollback must run even when ctx is already cancelled.
	for _, r := range RemoveAll(context.WithoutCancel(ctx), created) {
		if r.Outcome == OutcomeFailed {
			warnings = append(warnings, r.Target)
		}
	}

	return &LinkError{Spec: spec, Err: err, RollbackWarnings: warnings}
}

// createLink invokes the OS symlink primitive for one spec. The parent of
// the target must exist; only the config home itself is created by Install,
// matching the flat layout of the default manifest.
func createLink(spec LinkSpec) error {
	if err := os.MkdirAll(filepath.Dir(spec.Target), 0o755); err != nil {
		return err
	}
	return os.Symlink(spec.Source, spec.Target)
}
