package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long the watcher waits for more events before reacting.
// Editors usually save in several writes.
const Debounce = 100 * time.Millisecond

var errWatcherClosed = errors.New("watcher was closed")

// Func is the action run on start and after every change.
type Func func(ctx context.Context) error

// Run calls fn once and then again each time one of files changes, until ctx
// is cancelled or the process receives SIGINT/SIGTERM. Errors from fn are
// logged, they do not stop the watch.
func Run(ctx context.Context, logger *slog.Logger, files []string, fn Func) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Parent directories are watched since editors often replace the file
	// instead of writing it in place.
	wanted := make(map[string]bool, len(files))
	dirs := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", f, err)
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("error watching %s: %w", dir, err)
		}
	}

	run := func() {
		if err := fn(ctx); err != nil {
			logger.Error("[Watch] Run failed", slog.Any("error", err))
		}
	}
	run()
	logger.Info("[Watch] Watching for changes", slog.Any("files", files))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("[Watch] Stopped")
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return errWatcherClosed
			}
			logger.Warn("[Watch] Watcher error", slog.Any("error", err))
		case event, ok := <-watcher.Events:
			if !ok {
				return errWatcherClosed
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !wanted[abs] {
				continue
			}

			logger.Debug("[Watch] Change detected", slog.String("file", abs), slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(Debounce)
			} else {
				timer.Stop()
				timer.Reset(Debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			run()
		}
	}
}
