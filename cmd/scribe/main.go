package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/nguyentantai21042004/scripture-scribe/internal/config"
	"github.com/nguyentantai21042004/scripture-scribe/internal/logger"
	"github.com/nguyentantai21042004/scripture-scribe/internal/processor"
	"github.com/nguyentantai21042004/scripture-scribe/internal/reference"
	"github.com/nguyentantai21042004/scripture-scribe/internal/scanner"
	"github.com/nguyentantai21042004/scripture-scribe/internal/summarizer"
	"github.com/nguyentantai21042004/scripture-scribe/internal/watcher"
	"github.com/nguyentantai21042004/scripture-scribe/internal/writer"
	"github.com/nguyentantai21042004/scripture-scribe/pkg/executor"
)

type options struct {
	configPath string
	watch      bool
	summarize  bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("scribe", pflag.ContinueOnError)
	fs.StringVarP(&opts.configPath, "config", "c", "config.yaml", "path to the YAML config file")
	fs.BoolVarP(&opts.watch, "watch", "w", false, "keep running and process new recordings in the input tree as they appear")
	fs.BoolVarP(&opts.summarize, "summarize", "s", false, "write Gemini summaries for finished markdown transcripts")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithOptions(cfg.Logging.Level, os.Stdout, cfg.Logging.Color)

	annotator, err := newAnnotator(cfg)
	if err != nil {
		return err
	}

	w, err := writer.New(cfg.Processing.Format)
	if err != nil {
		return fmt.Errorf("output format: %w", err)
	}

	tr := processor.NewWhisperTranscriber(cfg, executor.New(), log)
	proc := processor.New(cfg, tr, annotator, w, log)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Scripture Scribe")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Input: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s (%s)", cfg.Paths.Output, cfg.Processing.Format)
	log.Info(ctx, "Model: %s", cfg.Whisper.ModelPath)
	if cfg.Processing.Cutoff != "" {
		log.Info(ctx, "Reprocessing outputs older than %s", cfg.Processing.Cutoff)
	}

	// The watcher is created before the walk so recordings that arrive
	// during the batch are queued instead of lost.
	var wt watcher.Watcher
	if opts.watch {
		wt, err = watcher.New(cfg.Paths.Input, proc.Process, log, watcher.Options{
			Extensions:    cfg.Processing.Extensions,
			MaxConcurrent: cfg.Performance.MaxConcurrent,
		})
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer wt.Stop()
	}

	files, err := scanner.Walk(cfg.Paths.Input, cfg.Processing.Extensions)
	if err != nil {
		return fmt.Errorf("list recordings: %w", err)
	}
	log.Info(ctx, "Found %d recordings", len(files))

	sum := proc.RunAll(ctx, files)

	if opts.summarize {
		s := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
		if _, err := s.SummarizeAll(ctx, cfg.Paths.Output); err != nil {
			log.Error(ctx, "Summaries failed: %v", err)
		}
	}

	if wt != nil {
		log.Info(ctx, "Watching %s and its subfolders, press Ctrl+C to stop", cfg.Paths.Input)
		if err := wt.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("watcher: %w", err)
		}
	}

	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d recordings failed", sum.Failed, len(files))
	}
	return nil
}

func newAnnotator(cfg *config.Config) (reference.Annotator, error) {
	table := reference.DefaultTable()
	if cfg.Reference.TablePath != "" {
		t, err := reference.LoadTable(cfg.Reference.TablePath)
		if err != nil {
			return nil, fmt.Errorf("load book table: %w", err)
		}
		table = t
	}

	tmpl, err := reference.NewTemplate(cfg.Reference.Host, cfg.Reference.Translation)
	if err != nil {
		return nil, fmt.Errorf("link template: %w", err)
	}

	return reference.New(table, tmpl), nil
}
