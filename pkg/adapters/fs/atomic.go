package fs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	TempFilePrefix = ".quire-tmp-"
)

// isTempFile reports whether name is one of our in-flight atomic writes.
func isTempFile(name string) bool {
	return strings.HasPrefix(filepath.Base(name), TempFilePrefix)
}

// resolveTarget follows a symlink so that saving replaces the file it points
// to instead of the link itself.
func resolveTarget(filename string) (string, error) {
	resolved, err := filepath.EvalSymlinks(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return filename, nil
	}
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// writeFileAtomic writes content next to filename and renames it into place,
// so readers only ever see the old file or the complete new one.
func writeFileAtomic(filename string, content string, perm os.FileMode) error {
	target, err := resolveTarget(filename)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", filename, err)
	}
	dir := filepath.Dir(target)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // no-op once renamed

	if _, err := io.WriteString(tmpFile, content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), target); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", target, err)
	}

	return nil
}
