package processor

import (
	"context"
	"fmt"
	"os"
	"time"
)

type outputState int

const (
	outputMissing outputState = iota
	outputCurrent
	outputStale
)

// checkOutput classifies an existing output file against cutoff. Files
// modified before cutoff were written by an older run and must be redone; a
// zero cutoff treats every existing output as current.
func checkOutput(path string, cutoff time.Time) (outputState, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return outputMissing, nil
	}
	if err != nil {
		return outputMissing, fmt.Errorf("stat output: %w", err)
	}
	if !cutoff.IsZero() && info.ModTime().Before(cutoff) {
		return outputStale, nil
	}
	return outputCurrent, nil
}

// removeStale deletes an output written before the cutoff.
func (p *implProcessor) removeStale(ctx context.Context, path string) error {
	p.logger.Warn(ctx, "Output written by an older run, removing to regenerate: %s", path)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove stale output: %w", err)
	}
	return nil
}

// cleanupDir removes a work directory, logs warning if it fails
func (t *whisperTranscriber) cleanupDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}
