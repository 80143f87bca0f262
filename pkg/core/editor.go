package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/quire/pkg/document"
	"github.com/aretw0/quire/pkg/i18n"
)

// DefaultEventBuffer is the capacity of the events channel when none is set.
const DefaultEventBuffer = 100

// Config holds the collaborators and settings of an Editor.
type Config struct {
	Picker       Picker
	Table        i18n.Table
	Logger       *slog.Logger
	EventBuffer  int
	ErrorHandler func(error)
	ReadOnly     bool
}

// Editor is the single owner of the open document. UI callbacks either call
// its methods directly or send Commands through Run; nothing else holds a
// reference to the document.
type Editor struct {
	mu     sync.RWMutex
	fs     FileSystem
	config Config
	doc    *document.Document
	events chan Event
}

// NewEditor creates an Editor holding an empty document.
func NewEditor(fs FileSystem, config Config) *Editor {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.EventBuffer <= 0 {
		config.EventBuffer = DefaultEventBuffer
	}
	e := &Editor{
		fs:     fs,
		config: config,
		events: make(chan Event, config.EventBuffer),
	}
	e.doc = document.Empty(e.docOptions()...)
	return e
}

func (e *Editor) docOptions() []document.Option {
	label := e.config.Table.Translate(i18n.TabUntitled)
	if label == string(i18n.TabUntitled) {
		return nil
	}
	return []document.Option{document.WithUntitled(label)}
}

// Events returns the channel of document events. Events are dropped when
// nobody drains it.
func (e *Editor) Events() <-chan Event {
	return e.events
}

func (e *Editor) emit(t EventType, path string) {
	select {
	case e.events <- Event{Type: t, Path: path, Timestamp: time.Now().Unix()}:
	default:
		e.config.Logger.Debug("event dropped", "type", t, "path", path)
	}
}

func (e *Editor) report(err error) {
	e.config.Logger.Error("command failed", "error", err)
	if e.config.ErrorHandler != nil {
		e.config.ErrorHandler(err)
	}
}

// New replaces the open document with an empty, untitled one.
func (e *Editor) New() {
	e.mu.Lock()
	e.doc = document.Empty(e.docOptions()...)
	e.mu.Unlock()
	e.emit(EventNew, "")
}

// Open loads path and replaces the open document. On failure the previous
// document is left untouched.
func (e *Editor) Open(ctx context.Context, path string) error {
	if path == "" {
		return ErrNoPath
	}
	content, err := e.fs.Read(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	e.mu.Lock()
	e.doc = document.FromContent(content, path, e.docOptions()...)
	e.mu.Unlock()

	e.config.Logger.Info("document opened", "path", path, "bytes", len(content))
	e.emit(EventOpen, path)
	return nil
}

// OpenPicked asks the Picker for a path and opens it. A cancelled pick is
// reported as ErrCancelled and changes nothing.
func (e *Editor) OpenPicked(ctx context.Context) error {
	if e.config.Picker == nil {
		return ErrNoPath
	}
	path, ok := e.config.Picker.PickOpen(ctx)
	if !ok {
		return ErrCancelled
	}
	return e.Open(ctx, path)
}

// Save writes the document to its bound path. Without one it asks the Picker
// for a path, and fails with ErrNoPath (no Picker) or ErrCancelled. The dirty
// flag is cleared only after the write succeeded.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.RLock()
	path, ok := e.doc.FilePath()
	e.mu.RUnlock()
	if !ok {
		return e.SaveAs(ctx, "")
	}
	return e.saveTo(ctx, path, false)
}

// SaveAs writes the document to path and binds it. An empty path asks the
// Picker. The path is recorded only once the write succeeded.
func (e *Editor) SaveAs(ctx context.Context, path string) error {
	if e.config.ReadOnly {
		return ErrReadOnly
	}
	if path == "" {
		if e.config.Picker == nil {
			return ErrNoPath
		}
		picked, ok := e.config.Picker.PickSave(ctx, e.FileName())
		if !ok {
			return ErrCancelled
		}
		path = picked
	}
	return e.saveTo(ctx, path, true)
}

func (e *Editor) saveTo(ctx context.Context, path string, bind bool) error {
	if e.config.ReadOnly {
		return ErrReadOnly
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.fs.Write(ctx, path, e.doc.Content()); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	if bind {
		e.doc.SetFilePath(path)
	}
	e.doc.SetDirty(false)

	e.config.Logger.Info("document saved", "path", path)
	e.emit(EventSave, path)
	return nil
}

// Reload re-reads the bound path, discarding unsaved changes.
func (e *Editor) Reload(ctx context.Context) error {
	e.mu.RLock()
	path, ok := e.doc.FilePath()
	e.mu.RUnlock()
	if !ok {
		return ErrNoPath
	}
	content, err := e.fs.Read(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to reload %s: %w", path, err)
	}

	e.mu.Lock()
	e.doc = document.FromContent(content, path, e.docOptions()...)
	e.mu.Unlock()

	e.emit(EventReload, path)
	return nil
}

// SetContent replaces the whole text and marks the document dirty.
func (e *Editor) SetContent(text string) {
	e.mu.Lock()
	e.doc.SetContent(text)
	path, _ := e.doc.FilePath()
	e.mu.Unlock()
	e.emit(EventModify, path)
}

// Insert inserts text at a rune offset.
func (e *Editor) Insert(offset int, text string) error {
	e.mu.Lock()
	err := e.doc.Insert(offset, text)
	path, _ := e.doc.FilePath()
	e.mu.Unlock()
	if err != nil {
		return err
	}
	e.emit(EventModify, path)
	return nil
}

// Delete removes length runes at a rune offset.
func (e *Editor) Delete(offset, length int) error {
	e.mu.Lock()
	err := e.doc.Delete(offset, length)
	path, _ := e.doc.FilePath()
	e.mu.Unlock()
	if err != nil {
		return err
	}
	e.emit(EventModify, path)
	return nil
}

// Offset converts a line and column to a rune offset in the open document.
func (e *Editor) Offset(line, col int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Offset(line, col)
}

// LineCount returns the number of lines of the open document.
func (e *Editor) LineCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.LineCount()
}

// Line returns one line of the open document, or false past the end.
func (e *Editor) Line(i int) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Line(i)
}

// Window returns up to n lines starting at first, the rows a renderer has
// scrolled into view. It stops at the first missing line and never builds the
// whole content.
func (e *Editor) Window(first, n int) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if first < 0 || n <= 0 {
		return nil
	}
	rows := make([]string, 0, min(n, e.doc.LineCount()))
	for i := first; i < first+n; i++ {
		line, ok := e.doc.Line(i)
		if !ok {
			break
		}
		rows = append(rows, line)
	}
	return rows
}

// IsDirty reports whether the open document has unsaved changes.
func (e *Editor) IsDirty() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.IsDirty()
}

// FilePath returns the bound path of the open document.
func (e *Editor) FilePath() (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.FilePath()
}

// FileName returns the display name of the open document.
func (e *Editor) FileName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.FileName()
}

// DocumentState returns the lifecycle state of the open document.
func (e *Editor) DocumentState() document.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.State()
}

// Title is the tab label: the file name, with " *" when dirty.
func (e *Editor) Title() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.doc.IsDirty() {
		return e.doc.FileName() + " *"
	}
	return e.doc.FileName()
}

// Status is the status bar text in the configured language.
func (e *Editor) Status() string {
	t := e.config.Table
	state := t.Translate(i18n.StatusReady)
	if e.IsDirty() {
		state = t.Translate(i18n.StatusModified)
	}
	return strings.Join([]string{
		t.Translate(i18n.StatusEncoding),
		t.Translate(i18n.StatusFileType),
		state,
	}, " | ")
}

// Handle executes one command.
func (e *Editor) Handle(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case NewRequested:
		e.New()
		return nil
	case OpenRequested:
		if c.Path == "" {
			return e.OpenPicked(ctx)
		}
		return e.Open(ctx, c.Path)
	case SaveRequested:
		return e.Save(ctx)
	case SaveAsRequested:
		return e.SaveAs(ctx, c.Path)
	case ReloadRequested:
		return e.Reload(ctx)
	case SetContentRequested:
		e.SetContent(c.Text)
		return nil
	}
	return fmt.Errorf("unknown command %T", cmd)
}

// Run executes commands in order until cmds is closed or ctx is done.
// Command failures are logged and passed to the error handler; they do not
// stop the loop. A cancelled pick is not a failure.
func (e *Editor) Run(ctx context.Context, cmds <-chan Command) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			if err := e.Handle(ctx, cmd); err != nil && !errors.Is(err, ErrCancelled) {
				e.report(err)
			}
		}
	}
}

// Watch reports external changes to the bound file, if the file system
// supports it.
func (e *Editor) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := e.fs.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	path, bound := e.FilePath()
	if !bound {
		return nil, ErrNoPath
	}
	return w.Watch(ctx, path)
}
