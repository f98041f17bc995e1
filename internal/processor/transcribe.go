package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe extracts the audio track of mediaPath and runs whisper.cpp on it,
// returning the transcript as a single line of text.
func (t *whisperTranscriber) Transcribe(ctx context.Context, mediaPath string) (string, error) {
	if err := os.MkdirAll(t.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	workDir, err := os.MkdirTemp(t.cfg.Paths.Temp, "scribe-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer t.cleanupDir(ctx, workDir)

	audioPath, err := t.extractAudio(ctx, mediaPath, workDir)
	if err != nil {
		return "", err
	}

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Whisper.Threads, filepath.Base(mediaPath))

	// -otxt writes <prefix>.txt, one line per segment
	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}
	if t.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Whisper.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	return joinSegments(string(data)), nil
}

// joinSegments folds whisper's per-segment lines into one text.
func joinSegments(raw string) string {
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
