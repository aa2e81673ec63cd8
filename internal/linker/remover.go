package linker

import (
	"context"
	"log/slog"
	"os"
)

// Outcome is the per-target result of a removal attempt.
type Outcome string

const (
	// OutcomeRemoved means the target existed and was deleted.
	OutcomeRemoved Outcome = "removed"

	// OutcomeSkippedNotFound means the target was already absent.
	OutcomeSkippedNotFound Outcome = "skipped"

	// OutcomeFailed means the target existed but could not be deleted.
	OutcomeFailed Outcome = "failed"
)

// RemovalResult records what happened to one target.
type RemovalResult struct {
	Target  string
	Outcome Outcome
	Err     error
}

// RemoveAll attempts to delete every target exactly once and reports a
// per-target outcome. An individual failure never aborts the batch:
// removal is best-effort cleanup where partial success is still useful,
// unlike installation where a partial result would leave a confusing mix
// of linked and unlinked configuration.
//
// Absent targets are recorded as OutcomeSkippedNotFound, never as errors,
// which makes uninstall idempotent.
func RemoveAll(ctx context.Context, specs []LinkSpec) []RemovalResult {
	results := make([]RemovalResult, 0, len(specs))

	for _, spec := range specs {
		select {
		case <-ctx.Done():
			results = append(results, RemovalResult{
				Target:  spec.Target,
				Outcome: OutcomeFailed,
				Err:     ctx.Err(),
			})
			continue
		default:
		}

		results = append(results, removeOne(spec))
	}

	return results
}

// removeOne deletes a single target. os.Remove deletes the symlink entry
// itself for both kinds and never follows a directory link into the source
// tree; a pre-existing real directory with contents fails here and is
// reported as OutcomeFailed.
func removeOne(spec LinkSpec) RemovalResult {
	if _, err := os.Lstat(spec.Target); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("removal target already absent", "target", spec.Target)
			return RemovalResult{Target: spec.Target, Outcome: OutcomeSkippedNotFound}
		}
		return RemovalResult{Target: spec.Target, Outcome: OutcomeFailed, Err: err}
	}

	if err := os.Remove(spec.Target); err != nil {
		slog.Warn("failed to remove target", "target", spec.Target, "error", err)
		return RemovalResult{Target: spec.Target, Outcome: OutcomeFailed, Err: err}
	}

	slog.Debug("removed target", "target", spec.Target)
	return RemovalResult{Target: spec.Target, Outcome: OutcomeRemoved}
}

// CountOutcomes tallies results by outcome.
func CountOutcomes(results []RemovalResult) (removed, skipped, failed int) {
	for _, r := range results {
		switch r.Outcome {
		case OutcomeRemoved:
			removed++
		case OutcomeSkippedNotFound:
			skipped++
		case OutcomeFailed:
			failed++
		}
	}
	return removed, skipped, failed
}
