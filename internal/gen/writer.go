package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile is one rendered artifact and where it belongs.
type GeneratedFile struct {
	// Path is the destination, e.g. "views/index.c".
	Path string
	// Content is the generated C source.
	Content []byte
}

// WriteFile writes file atomically: readers see either the previous content
// or the new one, never a partial write. Missing parent directories are
// created. New files get filePerm; existing files keep their mode.
func WriteFile(file GeneratedFile) error {
	if dir := filepath.Dir(file.Path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	_, statErr := os.Stat(file.Path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(file.Path, bytes.NewReader(file.Content)); err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	if isNew {
		if err := os.Chmod(file.Path, filePerm); err != nil {
			return fmt.Errorf("setting mode of %s: %w", file.Path, err)
		}
	}

	return nil
}
