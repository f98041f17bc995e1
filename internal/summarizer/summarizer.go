package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"
)

// SummarySuffix names the summary written for <stem>.md.
const SummarySuffix = ".summary.md"

var ErrNoAPIKeys = errors.New("summarizer: no API keys configured")

const summaryPrompt = `You are summarizing a transcribed sermon or Bible study. Write a concise summary in English using markdown.

Requirements:
- Start with a one-sentence overview of the main theme
- List the key points in the order they were made, as bullet points
- Keep every Bible reference link exactly as it appears in the transcript
- Finish with a short "Application" section if the speaker gave practical applications

Transcript:
---
%s
---`

// SummarizeAll reads every transcript in dir, calls Gemini for each one
// without a summary, and writes <stem>.summary.md beside it. It returns the
// number of summaries written.
func (s *implSummarizer) SummarizeAll(ctx context.Context, dir string) (int, error) {
	if len(s.apiKeys) == 0 {
		return 0, ErrNoAPIKeys
	}

	docs, err := discoverTranscripts(dir)
	if err != nil {
		return 0, fmt.Errorf("discover transcripts: %w", err)
	}

	if len(docs) == 0 {
		s.logger.Info(ctx, "No transcripts to summarize in %s", dir)
		return 0, nil
	}

	s.logger.Info(ctx, "Found %d transcripts to summarize", len(docs))

	successCount := 0
	failCount := 0

	for i, docPath := range docs {
		base := filepath.Base(docPath)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(docs), name)

		content, err := os.ReadFile(docPath)
		if err != nil {
			s.logger.Error(ctx, "Failed to read %s: %v", docPath, err)
			failCount++
			continue
		}

		summary, err := s.summarize(ctx, string(content))
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", name, err)
			failCount++
			continue
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			name,
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)

		outPath := filepath.Join(dir, name+SummarySuffix)
		if err := os.WriteFile(outPath, []byte(md), 0644); err != nil {
			s.logger.Error(ctx, "Failed to write %s: %v", outPath, err)
			failCount++
			continue
		}

		s.logger.Info(ctx, "[DONE] %s -> %s", name, outPath)
		successCount++
	}

	s.logger.Info(ctx, "Summary complete: %d success, %d failed", successCount, failCount)
	return successCount, nil
}

// summarize sends the transcript to the model, rotating API keys on rate
// limit errors until every key has been tried once.
func (s *implSummarizer) summarize(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	var lastErr error
	for range len(s.apiKeys) {
		text, err := s.generate(ctx, s.apiKeys[s.currentKey], s.model, prompt)
		if err == nil {
			return text, nil
		}
		if !isRateLimited(err) {
			return "", err
		}
		s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
		s.rotateKey()
		lastErr = err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// callGemini is the production generateFunc.
func callGemini(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

// discoverTranscripts lists markdown transcripts in dir that have no summary.
func discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool)
	var candidates []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || strings.ToLower(filepath.Ext(name)) != ".md" {
			continue
		}
		if strings.HasSuffix(name, SummarySuffix) {
			existing[strings.TrimSuffix(name, SummarySuffix)] = true
			continue
		}
		candidates = append(candidates, name)
	}

	var files []string
	for _, name := range candidates {
		if existing[strings.TrimSuffix(name, filepath.Ext(name))] {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)
	return files, nil
}
