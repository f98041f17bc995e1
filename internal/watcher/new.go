package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/scripture-scribe/internal/logger"
)

// DefaultSettleDelay is how long a new file is left alone before handling,
// so recorders can finish writing it.
const DefaultSettleDelay = 500 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	// Extensions limits which files are handled; empty means all files.
	Extensions []string
	// MaxConcurrent bounds in-flight handlers. Defaults to 2.
	MaxConcurrent int
	// SettleDelay defaults to DefaultSettleDelay.
	SettleDelay time.Duration
}

// New creates a Watcher over inputDir and every non-hidden subdirectory.
// Events are queued from the moment New returns, before Start is called.
func New(inputDir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}

	w := &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		extensions:    opts.Extensions,
		maxConcurrent: opts.MaxConcurrent,
		settleDelay:   opts.SettleDelay,
		semaphore:     make(chan struct{}, opts.MaxConcurrent),
		inFlight:      make(map[string]bool),
	}

	if err := w.addTree(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return w, nil
}
