package summarizer

import "context"

// Summarizer writes LLM-generated summaries next to finished transcripts.
type Summarizer interface {
	// SummarizeAll summarizes every markdown transcript in dir that has no
	// summary yet.
	SummarizeAll(ctx context.Context, dir string) (int, error)
}
