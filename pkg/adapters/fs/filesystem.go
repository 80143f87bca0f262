// Package fs implements the editor's FileSystem on top of the local disk.
//
// Reads reject bytes that are not valid UTF-8. Writes are atomic: content goes
// to a temporary file in the same directory which is then renamed over the
// target, so a failed save never truncates the previous file.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/aretw0/quire/pkg/core"
)

const (
	// DefaultPerm is the mode of newly created files.
	DefaultPerm os.FileMode = 0644
	// DefaultDebounce coalesces bursts of watcher events for one file.
	DefaultDebounce = 50 * time.Millisecond
	// selfWriteWindow hides watcher events caused by our own saves.
	selfWriteWindow = 500 * time.Millisecond
)

// Config holds configuration for the FileSystem.
type Config struct {
	Logger       *slog.Logger
	Perm         os.FileMode
	ReadOnly     bool
	Debounce     time.Duration
	ErrorHandler func(error)
}

// FileSystem reads and writes whole text files.
type FileSystem struct {
	config Config

	mu        sync.RWMutex
	written   map[string]time.Time
	watching  map[string]int
	lastRead  *time.Time
	lastWrite *time.Time
}

// New creates a FileSystem with the given configuration.
func New(config Config) *FileSystem {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Perm == 0 {
		config.Perm = DefaultPerm
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	return &FileSystem{
		config:   config,
		written:  make(map[string]time.Time),
		watching: make(map[string]int),
	}
}

// Read returns the content of path.
func (f *FileSystem) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, core.ErrInvalidEncoding)
	}

	f.touch(&f.lastRead)
	f.config.Logger.Debug("file read", "path", path, "bytes", len(data))
	return string(data), nil
}

// Write replaces path with content. An existing file keeps its mode.
func (f *FileSystem) Write(ctx context.Context, path string, content string) error {
	if f.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	perm := f.config.Perm
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	// Record before writing: the watcher may see the rename before we return.
	f.markWritten(path)
	if err := writeFileAtomic(path, content, perm); err != nil {
		f.config.Logger.Error("write failed", "path", path, "error", err)
		return err
	}

	f.touch(&f.lastWrite)
	f.config.Logger.Debug("file written", "path", path, "bytes", len(content))
	return nil
}

func (f *FileSystem) touch(field **time.Time) {
	now := time.Now()
	f.mu.Lock()
	*field = &now
	f.mu.Unlock()
}

func (f *FileSystem) markWritten(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	f.mu.Lock()
	f.written[abs] = time.Now()
	f.mu.Unlock()
}

// wroteRecently reports whether abs was saved by us within selfWriteWindow.
func (f *FileSystem) wroteRecently(abs string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	at, ok := f.written[abs]
	return ok && time.Since(at) < selfWriteWindow
}

var (
	_ core.FileSystem = (*FileSystem)(nil)
	_ core.Watchable  = (*FileSystem)(nil)
)
