// Package buffer holds the text of a document and answers line-oriented
// queries without materializing the whole content.
//
// Lines are terminated by "\n"; a "\r" directly before the "\n" belongs to the
// terminator and is not part of the line. Offsets are counted in runes.
package buffer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/quire/pkg/rope"
)

// Placeholder is the content of a buffer created with Empty.
const Placeholder = "Hello, quire editor MVP!\n\n" +
	"这是一个最小可运行原型。\n" +
	"支持 rope 显示。\n\n" +
	"下一步：虚拟行 + 高亮。"

// ErrOutOfRange is returned by edits and conversions outside the content.
var ErrOutOfRange = rope.ErrOutOfRange

// Buffer is a rope-backed text buffer. The zero value is an empty buffer with
// one empty line.
type Buffer struct {
	text rope.Rope
}

// Empty returns a buffer holding the built-in placeholder text.
func Empty() *Buffer {
	return FromContent(Placeholder)
}

// FromContent returns a buffer wrapping text verbatim.
func FromContent(text string) *Buffer {
	return &Buffer{text: rope.New(text)}
}

// LineCount returns the number of lines; never less than one.
func (b *Buffer) LineCount() int {
	return b.text.LineCount()
}

// Line returns line index without its terminator. ok is false when there is
// no such line, which renderers treat as the end of the document.
//
// The returned string stays valid after later edits; it simply no longer
// reflects the buffer.
func (b *Buffer) Line(index int) (line string, ok bool) {
	line, ok = b.text.Line(index)
	if !ok {
		return "", false
	}
	if index < b.text.LineCount()-1 {
		line = strings.TrimSuffix(line, "\r")
	}
	return line, true
}

// Content returns the whole text. Use it for saving, not for rendering.
func (b *Buffer) Content() string {
	return b.text.String()
}

// SetContent replaces the whole content.
func (b *Buffer) SetContent(text string) {
	b.text = rope.New(text)
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int { return b.text.Len() }

// RuneLen returns the content length in runes.
func (b *Buffer) RuneLen() int { return b.text.RuneLen() }

// Insert inserts text before rune offset.
func (b *Buffer) Insert(offset int, text string) error {
	next, err := b.text.Insert(offset, text)
	if err != nil {
		return err
	}
	b.text = next
	return nil
}

// Delete removes length runes starting at offset.
func (b *Buffer) Delete(offset, length int) error {
	if length < 0 {
		return fmt.Errorf("negative length %d: %w", length, ErrOutOfRange)
	}
	next, err := b.text.Delete(offset, offset+length)
	if err != nil {
		return err
	}
	b.text = next
	return nil
}

// LineStart returns the rune offset where line begins.
func (b *Buffer) LineStart(line int) (int, bool) {
	return b.text.LineStart(line)
}

// Offset converts a line and a rune column into a rune offset. The column may
// point just past the last rune of the line.
func (b *Buffer) Offset(line, col int) (int, error) {
	text, ok := b.Line(line)
	if !ok {
		return 0, fmt.Errorf("line %d of %d: %w", line, b.LineCount(), ErrOutOfRange)
	}
	if col < 0 || col > len([]rune(text)) {
		return 0, fmt.Errorf("column %d on line %d: %w", col, line, ErrOutOfRange)
	}
	start, _ := b.text.LineStart(line)
	return start + col, nil
}

// Rope exposes the current immutable snapshot.
func (b *Buffer) Rope() rope.Rope { return b.text }

// IsOutOfRange reports whether err was caused by an offset outside the buffer.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
