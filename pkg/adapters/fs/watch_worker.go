package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/quire/pkg/core"
)

// Watch emits core.EventChanged whenever another process changes path. The
// parent directory is watched so that editors which save by renaming a new
// file into place are still seen. Saves made through this FileSystem are not
// reported. The returned channel is closed once ctx is done.
func (f *FileSystem) Watch(ctx context.Context, path string) (<-chan core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	events := make(chan core.Event, 16)
	w := &watchWorker{
		fs:        f,
		target:    target,
		events:    events,
		watcher:   watcher,
		debouncer: newDebouncer(f.config.Debounce),
	}

	f.setWatching(target, 1)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		if f.config.ErrorHandler != nil {
			f.config.ErrorHandler(fmt.Errorf("watcher for %s: %w", path, err))
			return
		}
		f.config.Logger.Error("watcher stopped", "path", path, "error", err)
	}))
	return events, nil
}

func (f *FileSystem) setWatching(abs string, delta int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.watching[abs] += delta
	if f.watching[abs] <= 0 {
		delete(f.watching, abs)
	}
}

type watchWorker struct {
	fs        *FileSystem
	target    string
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
}

// relevant reports whether event touches the watched file in a way that can
// change its content.
func (w *watchWorker) relevant(event fsnotify.Event) bool {
	if isTempFile(event.Name) {
		return false
	}
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// processFilesystemEvent filters and debounces one fsnotify event.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	w.fs.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	if !w.relevant(event) {
		return false
	}
	if w.fs.wroteRecently(w.target) {
		w.fs.config.Logger.Debug("ignoring own write", "path", w.target)
		return false
	}

	w.sendEvent(ctx, core.Event{
		Type:      core.EventChanged,
		Path:      w.target,
		Timestamp: time.Now().Unix(),
	})
	return true
}

// sendEvent enqueues an event via the debouncer. The events channel may be
// closed by the time a late timer fires.
func (w *watchWorker) sendEvent(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func (w *watchWorker) handleWatcherError(err error) {
	w.fs.config.Logger.Error("fsnotify error", "error", err)
	if w.fs.config.ErrorHandler != nil {
		w.fs.config.ErrorHandler(err)
	}
}

func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.fs.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer close(w.events)
	defer w.fs.setWatching(w.target, -1)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Timers must be drained before the deferred close of events.
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleWatcherError(wErr)
		}
	}
}
