package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/scripture-scribe/internal/logger"
	"github.com/nguyentantai21042004/scripture-scribe/internal/scanner"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	extensions    []string
	maxConcurrent int
	settleDelay   time.Duration
	semaphore     chan struct{}
	wg            sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]bool
}

// Start blocks, handing each newly created media file to the handler until
// ctx is cancelled. In-flight handlers are awaited before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(w.extensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			if !event.Has(fsnotify.Create) {
				continue
			}

			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				w.handleNewDir(ctx, event.Name)
				continue
			}

			w.dispatch(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// handleNewDir watches a directory created under the input tree and
// dispatches recordings that landed in it before the watch was added.
func (w *implWatcher) handleNewDir(ctx context.Context, dir string) {
	if strings.HasPrefix(filepath.Base(dir), ".") {
		return
	}
	if err := w.addTree(dir); err != nil {
		w.logger.Error(ctx, "Failed to watch %s: %v", dir, err)
		return
	}
	w.logger.Debug(ctx, "Watching new directory: %s", dir)

	files, err := scanner.Walk(dir, w.extensions)
	if err != nil {
		w.logger.Error(ctx, "Failed to list %s: %v", dir, err)
		return
	}
	for _, f := range files {
		w.dispatch(ctx, f)
	}
}

// dispatch hands path to the handler unless it is unsupported or already
// being handled.
func (w *implWatcher) dispatch(ctx context.Context, path string) {
	if !scanner.HasExtension(path, w.extensions) {
		w.logger.Debug(ctx, "Ignoring unsupported file: %s", path)
		return
	}
	if !w.claim(path) {
		return
	}

	w.logger.Info(ctx, "New recording detected: %s", path)

	select {
	case <-time.After(w.settleDelay):
	case <-ctx.Done():
		w.release(path)
		return
	}

	select {
	case w.semaphore <- struct{}{}:
		w.wg.Add(1)
		go func(filePath string) {
			defer w.wg.Done()
			defer w.release(filePath)
			defer func() { <-w.semaphore }()

			if err := w.handler(ctx, filePath); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
			}
		}(path)
	case <-ctx.Done():
		w.release(path)
	}
}

func (w *implWatcher) claim(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight[path] {
		return false
	}
	w.inFlight[path] = true
	return true
}

func (w *implWatcher) release(path string) {
	w.mu.Lock()
	delete(w.inFlight, path)
	w.mu.Unlock()
}

// addTree watches root and every non-hidden directory below it.
func (w *implWatcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
