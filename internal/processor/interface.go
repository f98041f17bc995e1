package processor

import "context"

// Processor turns recordings into annotated, reflowed documents.
type Processor interface {
	// Process handles one media file: skip policy, transcription, annotation,
	// reflow and write.
	Process(ctx context.Context, mediaPath string) error
	// RunAll processes paths one after another with a single attempt each.
	// A failed file is logged and counted; it never stops the batch.
	RunAll(ctx context.Context, paths []string) Summary
}

// Transcriber converts a recording into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) (string, error)
}

// Summary counts the outcomes of a RunAll batch.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}
