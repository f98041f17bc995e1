package processor

import (
	"context"
	"fmt"
	"path/filepath"
)

// extractAudio converts mediaPath into a 16kHz mono WAV inside workDir, the
// input format whisper.cpp expects.
func (t *whisperTranscriber) extractAudio(ctx context.Context, mediaPath, workDir string) (string, error) {
	audioPath := filepath.Join(workDir, "audio.wav")

	t.logger.Debug(ctx, "Extracting audio: %s -> %s", mediaPath, audioPath)

	// -vn: drop video, -ar/-ac: 16kHz mono, -c:a: 16-bit PCM
	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return audioPath, nil
}
