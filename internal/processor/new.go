package processor

import (
	"github.com/nguyentantai21042004/scripture-scribe/internal/config"
	"github.com/nguyentantai21042004/scripture-scribe/internal/logger"
	"github.com/nguyentantai21042004/scripture-scribe/internal/reference"
	"github.com/nguyentantai21042004/scripture-scribe/internal/writer"
	"github.com/nguyentantai21042004/scripture-scribe/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber Transcriber
	annotator   reference.Annotator
	writer      writer.Writer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, tr Transcriber, ann reference.Annotator, w writer.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: tr,
		annotator:   ann,
		writer:      w,
		logger:      log,
	}
}

type whisperTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperTranscriber creates a Transcriber that extracts audio with ffmpeg
// and runs whisper.cpp on it.
func NewWhisperTranscriber(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &whisperTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
