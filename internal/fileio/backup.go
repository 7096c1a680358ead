package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/otiai10/copy"
)

// Backup copies srcDir into a timestamped folder under backupRoot and
// returns its path. A missing srcDir is not an error; nothing is copied.
func Backup(srcDir, backupRoot string, now time.Time) (string, error) {
	if _, err := os.Stat(srcDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to inspect %s: %w", srcDir, err)
	}

	dst := filepath.Join(backupRoot, now.UTC().Format("20060102-150405"))
	if err := copy.Copy(srcDir, dst, copy.Options{PreserveTimes: true}); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", srcDir, err)
	}

	return dst, nil
}
