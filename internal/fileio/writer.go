package fileio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jpillora/backoff"
)

const (
	// MaxAttempts is the number of plain write attempts before remediation.
	MaxAttempts = 10

	Suggestion = "Try running the application as Administrator, or move the game installation to a folder your user can write to."
)

// WriteError is returned once every attempt, including the one after
// remediation, has failed.
type WriteError struct {
	Path           string
	Attempts       int
	Err            error
	RemediationErr error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s after %d attempts: %v. %s", e.Path, e.Attempts, e.Err, Suggestion)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Remediator tries to make path writable, e.g. clearing read-only flags or
// repairing its ACL.
type Remediator func(path string) error

type Sleeper func(ctx context.Context, d time.Duration) error

// Writer writes files with bounded exponential backoff, then one
// remediation step and one final attempt.
type Writer struct {
	fs        FS
	logger    *slog.Logger
	remediate Remediator
	sleep     Sleeper
	backoff   backoff.Backoff
}

type WriterOption func(*Writer)

func WithRemediator(r Remediator) WriterOption {
	return func(w *Writer) { w.remediate = r }
}

func WithSleeper(s Sleeper) WriterOption {
	return func(w *Writer) { w.sleep = s }
}

func NewWriter(fsys FS, logger *slog.Logger, opts ...WriterOption) *Writer {
	w := &Writer{
		fs:        fsys,
		logger:    logger,
		remediate: Remediate,
		sleep:     sleepContext,
		backoff: backoff.Backoff{
			Min:    100 * time.Millisecond,
			Max:    time.Second,
			Factor: 2,
		},
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Delay returns the wait before retry n (0-based): min(1s, 100ms * 2^n).
func (w *Writer) Delay(retry int) time.Duration {
	return w.backoff.ForAttempt(float64(retry))
}

func (w *Writer) Write(ctx context.Context, path string, data []byte) error {
	var err error
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		if attempt > 0 {
			if sleepErr := w.sleep(ctx, w.Delay(attempt-1)); sleepErr != nil {
				return sleepErr
			}
		}

		if err = w.fs.WriteFile(path, data); err == nil {
			w.logger.Debug("File written",
				slog.String("path", path),
				slog.String("size", humanize.Bytes(uint64(len(data)))),
				slog.Int("attempt", attempt+1),
			)
			return nil
		}
		w.logger.Warn("Write failed, retrying",
			slog.String("path", path),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err),
		)
	}

	w.logger.Warn("Write retries exhausted, trying to repair file permissions", slog.String("path", path))
	remErr := w.remediate(path)
	if remErr != nil {
		w.logger.Warn("Permission repair failed", slog.String("path", path), slog.Any("error", remErr))
	}

	if err = w.fs.WriteFile(path, data); err == nil {
		w.logger.Info("File written after permission repair", slog.String("path", path))
		return nil
	}

	return &WriteError{Path: path, Attempts: MaxAttempts + 1, Err: err, RemediationErr: remErr}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
