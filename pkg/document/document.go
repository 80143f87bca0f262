// Package document binds a text buffer to its backing file path and tracks
// whether it has unsaved changes.
package document

import (
	"path/filepath"

	"github.com/aretw0/quire/pkg/buffer"
)

// DefaultUntitled is the display name of a document without a path when no
// localized label was supplied.
const DefaultUntitled = "[Untitled]"

// State summarizes a document's identity and change tracking.
type State string

const (
	StateUntitled   State = "UNTITLED"
	StateBoundClean State = "BOUND_CLEAN"
	StateBoundDirty State = "BOUND_DIRTY"
)

// Option configures a Document.
type Option func(*Document)

// WithUntitled sets the label returned by FileName when no path is bound.
func WithUntitled(label string) Option {
	return func(d *Document) {
		if label != "" {
			d.untitled = label
		}
	}
}

// Document owns one Buffer plus its save/load identity.
//
// Every content mutation marks the document dirty. Only SetDirty(false)
// clears the flag, and callers do that right after a confirmed save.
type Document struct {
	buf      *buffer.Buffer
	path     string
	dirty    bool
	untitled string
}

func newDocument(buf *buffer.Buffer, path string, opts []Option) *Document {
	d := &Document{buf: buf, path: path, untitled: DefaultUntitled}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Empty returns an untitled, clean document over the placeholder buffer.
func Empty(opts ...Option) *Document {
	return newDocument(buffer.Empty(), "", opts)
}

// FromContent returns a clean document as just loaded from path. An empty
// path means no backing file.
func FromContent(text, path string, opts ...Option) *Document {
	return newDocument(buffer.FromContent(text), path, opts)
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int { return d.buf.LineCount() }

// Line returns line index without its terminator, or false past the end.
func (d *Document) Line(index int) (string, bool) { return d.buf.Line(index) }

// Content returns the whole text for persistence.
func (d *Document) Content() string { return d.buf.Content() }

// SetContent replaces the text and marks the document dirty, even when the
// new text equals the old.
func (d *Document) SetContent(text string) {
	d.buf.SetContent(text)
	d.dirty = true
}

// Insert inserts text at a rune offset and marks the document dirty.
func (d *Document) Insert(offset int, text string) error {
	if err := d.buf.Insert(offset, text); err != nil {
		return err
	}
	d.dirty = true
	return nil
}

// Delete removes length runes at offset and marks the document dirty.
func (d *Document) Delete(offset, length int) error {
	if err := d.buf.Delete(offset, length); err != nil {
		return err
	}
	d.dirty = true
	return nil
}

// Offset converts a line and column into a rune offset.
func (d *Document) Offset(line, col int) (int, error) { return d.buf.Offset(line, col) }

// RuneLen returns the content length in runes.
func (d *Document) RuneLen() int { return d.buf.RuneLen() }

// FilePath returns the backing path, if any.
func (d *Document) FilePath() (string, bool) {
	return d.path, d.path != ""
}

// SetFilePath records a new backing path. Content and dirty flag are left
// alone; a save is expected to follow.
func (d *Document) SetFilePath(path string) { d.path = path }

// IsDirty reports unsaved changes.
func (d *Document) IsDirty() bool { return d.dirty }

// SetDirty sets the change flag.
func (d *Document) SetDirty(dirty bool) { d.dirty = dirty }

// FileName returns the last element of the path, or the untitled label.
func (d *Document) FileName() string {
	if d.path == "" {
		return d.untitled
	}
	return filepath.Base(d.path)
}

// State reports where the document stands in its lifecycle. A dirty document
// is BOUND_DIRTY whether or not it has a path yet; saving it requires one.
func (d *Document) State() State {
	switch {
	case d.dirty:
		return StateBoundDirty
	case d.path == "":
		return StateUntitled
	}
	return StateBoundClean
}
