//go:build !windows

package fileio

import (
	"fmt"
	"os"
	"path/filepath"
)

// Remediate adds the owner write bit to path, or to its directory when the
// file does not exist yet.
func Remediate(path string) error {
	target := path
	info, err := os.Stat(path)
	if err != nil {
		target = filepath.Dir(path)
		if info, err = os.Stat(target); err != nil {
			return fmt.Errorf("failed to inspect %s: %w", target, err)
		}
	}

	mode := info.Mode().Perm()
	if mode&0o200 != 0 {
		return nil
	}
	if err := os.Chmod(target, mode|0o200); err != nil {
		return fmt.Errorf("failed to make %s writable: %w", target, err)
	}
	return nil
}
