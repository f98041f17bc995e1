package watcher

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/scripture-scribe/internal/logger"
)

func newTestWatcher(t *testing.T, dir string) (Watcher, chan string) {
	t.Helper()
	handled := make(chan string, 8)

	handler := func(ctx context.Context, path string) error {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		handled <- filepath.ToSlash(rel)
		return nil
	}

	w, err := New(dir, handler, logger.NewWithOptions("error", io.Discard, false), Options{
		Extensions:  []string{".mp4"},
		SettleDelay: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { w.Stop() })
	return w, handled
}

func start(t *testing.T, w Watcher) (cancel func() error) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	return func() error {
		stop()
		return <-done
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func expectHandled(t *testing.T, handled chan string, want string) {
	t.Helper()
	select {
	case name := <-handled:
		if name != want {
			t.Errorf("handled %q, want %q", name, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("handler not called for %s", want)
	}
}

func TestWatcherHandlesNewRecordings(t *testing.T) {
	dir := t.TempDir()
	w, handled := newTestWatcher(t, dir)
	stop := start(t, w)

	// give the event loop a moment to start
	time.Sleep(50 * time.Millisecond)

	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, "sunday.mp4"))

	expectHandled(t, handled, "sunday.mp4")

	if err := stop(); !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}

	select {
	case name := <-handled:
		t.Errorf("unexpected handler call for %q", name)
	default:
	}
}

func TestWatcherQueuesEventsBeforeStart(t *testing.T) {
	dir := t.TempDir()
	w, handled := newTestWatcher(t, dir)

	writeFile(t, filepath.Join(dir, "early.mp4"))

	stop := start(t, w)
	defer stop()

	expectHandled(t, handled, "early.mp4")
}

func TestWatcherWatchesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "2024")
	if err := os.Mkdir(existing, 0755); err != nil {
		t.Fatal(err)
	}

	w, handled := newTestWatcher(t, dir)
	stop := start(t, w)
	defer stop()

	time.Sleep(50 * time.Millisecond)

	writeFile(t, filepath.Join(existing, "easter.mp4"))
	expectHandled(t, handled, "2024/easter.mp4")

	created := filepath.Join(dir, "2025")
	if err := os.Mkdir(created, 0755); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	writeFile(t, filepath.Join(created, "advent.mp4"))
	expectHandled(t, handled, "2025/advent.mp4")
}

func TestWatcherSkipsPathsInFlight(t *testing.T) {
	release := make(chan struct{})
	calls := make(chan string, 4)
	handler := func(ctx context.Context, path string) error {
		calls <- path
		<-release
		return nil
	}

	w, err := New(t.TempDir(), handler, logger.NewWithOptions("error", io.Discard, false), Options{
		SettleDelay: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	iw := w.(*implWatcher)

	ctx := context.Background()
	iw.dispatch(ctx, "a.mp4")
	<-calls
	iw.dispatch(ctx, "a.mp4")

	close(release)
	iw.wg.Wait()

	select {
	case p := <-calls:
		t.Errorf("duplicate dispatch for %q", p)
	default:
	}

	if !iw.claim("a.mp4") {
		t.Error("path not released after handler returned")
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.New("error"), Options{})
	if err == nil {
		t.Error("New() should fail for missing directory")
	}
}
