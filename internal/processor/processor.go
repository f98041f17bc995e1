package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/scripture-scribe/internal/reflow"
	"github.com/nguyentantai21042004/scripture-scribe/internal/scanner"
)

type outcome int

const (
	outcomeIgnored outcome = iota
	outcomeSkipped
	outcomeWritten
)

// Process handles one media file.
func (p *implProcessor) Process(ctx context.Context, mediaPath string) error {
	_, err := p.process(ctx, mediaPath)
	return err
}

// RunAll processes paths sequentially, one attempt per file.
func (p *implProcessor) RunAll(ctx context.Context, paths []string) Summary {
	var sum Summary

	for _, path := range paths {
		if ctx.Err() != nil {
			p.logger.Warn(ctx, "Stopping batch: %v", ctx.Err())
			break
		}

		p.logger.Info(ctx, "Attempt 1 for file %s", path)
		result, err := p.process(ctx, path)
		if err != nil {
			p.logger.Error(ctx, "Attempt 1 failed for file %s: %v", path, err)
			sum.Failed++
			continue
		}

		switch result {
		case outcomeWritten:
			p.logger.Info(ctx, "Successfully processed file %s", path)
			sum.Processed++
		case outcomeSkipped:
			sum.Skipped++
		}
	}

	p.logger.Info(ctx, "Batch complete: %d processed, %d skipped, %d failed", sum.Processed, sum.Skipped, sum.Failed)
	return sum
}

func (p *implProcessor) process(ctx context.Context, mediaPath string) (outcome, error) {
	if !scanner.HasExtension(mediaPath, p.cfg.Processing.Extensions) {
		p.logger.Debug(ctx, "Ignoring unsupported file: %s", mediaPath)
		return outcomeIgnored, nil
	}

	startTime := time.Now()
	filename := filepath.Base(mediaPath)
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	outPath := filepath.Join(p.cfg.Paths.Output, stem+p.writer.Ext())

	p.logger.Info(ctx, "Found media file: %s", filename)

	state, err := checkOutput(outPath, p.cfg.CutoffTime())
	if err != nil {
		return outcomeIgnored, err
	}
	switch state {
	case outputCurrent:
		p.logger.Info(ctx, "Already processed, skipping: %s", outPath)
		return outcomeSkipped, nil
	case outputStale:
		if err := p.removeStale(ctx, outPath); err != nil {
			return outcomeIgnored, err
		}
	}

	// Step 1: Transcribe
	transcript, err := p.transcriber.Transcribe(ctx, mediaPath)
	if err != nil {
		return outcomeIgnored, fmt.Errorf("transcribe: %w", err)
	}

	// Step 2: Link book references
	p.logFound(ctx, transcript)
	annotated := p.annotator.Annotate(transcript)

	// Step 3: Reflow into paragraphs
	document := reflow.Reflow(annotated, p.cfg.Processing.MaxSentences)

	// Step 4: Write
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return outcomeIgnored, fmt.Errorf("create output dir: %w", err)
	}
	if err := p.writer.Write(stem, document, outPath); err != nil {
		return outcomeIgnored, fmt.Errorf("write document: %w", err)
	}

	p.logger.Info(ctx, "Wrote %s in %s", outPath, time.Since(startTime).Round(time.Millisecond))
	return outcomeWritten, nil
}

// logFound logs each distinct book name mentioned in transcript.
func (p *implProcessor) logFound(ctx context.Context, transcript string) {
	seen := make(map[string]bool)
	for _, m := range p.annotator.Find(transcript) {
		if seen[m.Entry.Name] {
			continue
		}
		seen[m.Entry.Name] = true
		p.logger.Debug(ctx, "Found %s in text", m.Entry.Name)
	}
}
