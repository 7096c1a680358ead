package applylog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	OpApply = "apply"
	OpLoad  = "load"
	OpWatch = "watch"
)

// DefaultMaxBytes is the size past which a journal is rotated.
const DefaultMaxBytes = 5 * 1024 * 1024

func fileName(op string) string {
	switch op {
	case OpApply, OpLoad, OpWatch:
		return "d2rlabels_" + op + ".log"
	default:
		return "d2rlabels.log"
	}
}

// Path returns the journal file of op inside dir.
func Path(dir, op string) string {
	return filepath.Join(dir, fileName(op))
}

// Journal keeps a plain text history of apply and load cycles, one line per
// progress step, next to the structured log. A nil *Journal records nothing.
type Journal struct {
	path     string
	maxBytes int64
	now      func() time.Time

	mu sync.Mutex
}

func New(dir, op string) *Journal {
	return &Journal{path: Path(dir, op), maxBytes: DefaultMaxBytes, now: time.Now}
}

func (j *Journal) Path() string {
	return j.path
}

// Record appends one step of run runID. Once the journal grows past its size
// limit it is moved to <path>.1, replacing the previous rotation.
func (j *Journal) Record(runID, step, message string) error {
	if j == nil {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return fmt.Errorf("error creating %s: %w", filepath.Dir(j.path), err)
	}
	if err := j.rotate(); err != nil {
		return err
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", j.path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s run=%s %-9s %s\n", j.now().UTC().Format(time.RFC3339), runID, step, message)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("error writing %s: %w", j.path, err)
	}
	return nil
}

func (j *Journal) rotate() error {
	info, err := os.Stat(j.path)
	if err != nil || info.Size() < j.maxBytes {
		return nil
	}
	if err := os.Rename(j.path, j.path+".1"); err != nil {
		return fmt.Errorf("error rotating %s: %w", j.path, err)
	}
	return nil
}
