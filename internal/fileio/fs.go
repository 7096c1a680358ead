package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the file capability the compiler reads and writes string tables through.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// OS is the FS backed by the local disk.
type OS struct{}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OS) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadOptional reads path and reports found=false instead of an error when
// the file does not exist.
func ReadOptional(fsys FS, path string) (data []byte, found bool, err error) {
	data, err = fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}
