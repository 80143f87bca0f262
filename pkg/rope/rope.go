// Package rope implements an immutable, balanced rope over UTF-8 text.
//
// Text is stored in leaves of at most 1 KiB, split on rune boundaries. Every
// node caches the byte, rune and newline counts of its subtree, so offset and
// line lookups descend a single root-to-leaf path. Edits return a new Rope
// that shares every untouched subtree with the old one.
//
// Lines are separated by "\n". A rope with k newlines has k+1 lines, and the
// last line may be empty.
package rope

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// ErrOutOfRange is returned when an offset falls outside the rope.
var ErrOutOfRange = errors.New("offset out of range")

// Rope is an immutable text value. The zero Rope is empty and has one line.
type Rope struct {
	root *node
}

// New returns a rope holding text verbatim.
func New(text string) Rope {
	return Rope{root: build(text)}
}

// Len returns the length in bytes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.bytes
}

// RuneLen returns the length in runes.
func (r Rope) RuneLen() int {
	if r.root == nil {
		return 0
	}
	return r.root.runes
}

// LineCount returns the number of lines, which is always at least one.
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.lines + 1
}

// Height returns the height of the underlying tree; -1 for an empty rope.
func (r Rope) Height() int {
	return height(r.root)
}

// String returns the whole text. It copies every leaf once.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	return concat(collect(r.root, 0, r.root.bytes, nil))
}

// Chunks iterates over the leaves in order.
func (r Rope) Chunks() iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(r.root, yield)
	}
}

// WriteTo streams the text to w without building it in memory.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var err error
	for chunk := range r.Chunks() {
		var n int
		n, err = io.WriteString(w, chunk)
		total += int64(n)
		if err != nil {
			break
		}
	}
	return total, err
}

// lineBytes returns the byte range of line i including its terminator.
func (r Rope) lineBytes(i int) (start, end int) {
	if i > 0 {
		start, _ = lineStart(r.root, i)
	}
	if i < r.root.lines {
		end, _ = lineStart(r.root, i+1)
		return start, end
	}
	return start, r.root.bytes
}

// Line returns line i without its trailing "\n". The result is a substring of
// a leaf whenever the line does not cross a leaf boundary. ok is false when i
// is not a valid line index.
func (r Rope) Line(i int) (line string, ok bool) {
	if i < 0 || i >= r.LineCount() {
		return "", false
	}
	if r.root == nil {
		return "", true
	}
	start, end := r.lineBytes(i)
	if i < r.root.lines {
		end-- // drop "\n"
	}
	return concat(collect(r.root, start, end, nil)), true
}

// LineStart returns the rune offset of the first rune of line i.
func (r Rope) LineStart(i int) (int, bool) {
	if i < 0 || i >= r.LineCount() {
		return 0, false
	}
	if i == 0 {
		return 0, true
	}
	_, off := lineStart(r.root, i)
	return off, true
}

// Slice returns the text between rune offsets start and end.
func (r Rope) Slice(start, end int) (string, error) {
	if err := r.checkRange(start, end); err != nil {
		return "", err
	}
	if start == end {
		return "", nil
	}
	b0, b1 := byteOffset(r.root, start), byteOffset(r.root, end)
	return concat(collect(r.root, b0, b1, nil)), nil
}

// Insert returns a rope with text inserted before rune offset at.
func (r Rope) Insert(at int, text string) (Rope, error) {
	if at < 0 || at > r.RuneLen() {
		return r, fmt.Errorf("insert at %d of %d: %w", at, r.RuneLen(), ErrOutOfRange)
	}
	if text == "" {
		return r, nil
	}
	left, right := split(r.root, at)
	return Rope{root: join(join(left, build(text)), right)}, nil
}

// Delete returns a rope without the runes in [start, end).
func (r Rope) Delete(start, end int) (Rope, error) {
	if err := r.checkRange(start, end); err != nil {
		return r, err
	}
	if start == end {
		return r, nil
	}
	left, rest := split(r.root, start)
	_, right := split(rest, end-start)
	return Rope{root: join(left, right)}, nil
}

// Append returns a rope with other appended.
func (r Rope) Append(other Rope) Rope {
	return Rope{root: join(r.root, other.root)}
}

func (r Rope) checkRange(start, end int) error {
	if start < 0 || end < start || end > r.RuneLen() {
		return fmt.Errorf("range [%d, %d) of %d: %w", start, end, r.RuneLen(), ErrOutOfRange)
	}
	return nil
}
