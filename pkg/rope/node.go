package rope

import (
	"strings"
	"unicode/utf8"
)

// maxLeaf is the largest chunk, in bytes, stored in a single leaf.
const maxLeaf = 1024

// node is an immutable tree node. Leaves carry text; branches carry only the
// aggregated counts of their subtrees. A nil *node is the empty tree.
type node struct {
	left, right *node
	text        string

	bytes  int
	runes  int
	lines  int // newline count
	height int // 0 for leaves
}

func (n *node) leaf() bool { return n.left == nil && n.right == nil }

func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

func newLeaf(s string) *node {
	if s == "" {
		return nil
	}
	return &node{
		text:  s,
		bytes: len(s),
		runes: utf8.RuneCountInString(s),
		lines: strings.Count(s, "\n"),
	}
}

func branch(l, r *node) *node {
	return &node{
		left:   l,
		right:  r,
		bytes:  l.bytes + r.bytes,
		runes:  l.runes + r.runes,
		lines:  l.lines + r.lines,
		height: max(l.height, r.height) + 1,
	}
}

// build returns a perfectly balanced tree over s. The leaves are substrings of
// s, so no text is copied.
func build(s string) *node {
	if s == "" {
		return nil
	}
	var leaves []*node
	for len(s) > 0 {
		cut := chunkEnd(s)
		leaves = append(leaves, newLeaf(s[:cut]))
		s = s[cut:]
	}
	return buildLeaves(leaves)
}

func buildLeaves(leaves []*node) *node {
	switch len(leaves) {
	case 0:
		return nil
	case 1:
		return leaves[0]
	}
	mid := len(leaves) / 2
	return branch(buildLeaves(leaves[:mid]), buildLeaves(leaves[mid:]))
}

// chunkEnd picks the byte length of the next leaf, never splitting a UTF-8
// sequence.
func chunkEnd(s string) int {
	if len(s) <= maxLeaf {
		return len(s)
	}
	end := maxLeaf
	for end > maxLeaf-utf8.UTFMax && !utf8.RuneStart(s[end]) {
		end--
	}
	if !utf8.RuneStart(s[end]) {
		// Not valid UTF-8 around here; cut anywhere.
		return maxLeaf
	}
	return end
}

// join concatenates two trees, keeping every node AVL balanced.
func join(l, r *node) *node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.leaf() && r.leaf() && l.bytes+r.bytes <= maxLeaf {
		return newLeaf(l.text + r.text)
	}
	switch {
	case l.height > r.height+1:
		return balance(l.left, join(l.right, r))
	case r.height > l.height+1:
		return balance(join(l, r.left), r.right)
	}
	return branch(l, r)
}

// balance builds a branch over l and r, whose heights differ by at most two,
// rotating when the difference is two.
func balance(l, r *node) *node {
	switch d := l.height - r.height; {
	case d > 1:
		if height(l.left) >= height(l.right) {
			return branch(l.left, branch(l.right, r))
		}
		return branch(branch(l.left, l.right.left), branch(l.right.right, r))
	case d < -1:
		if height(r.right) >= height(r.left) {
			return branch(branch(l, r.left), r.right)
		}
		return branch(branch(l, r.left.left), branch(r.left.right, r.right))
	}
	return branch(l, r)
}

// split cuts n at rune offset at: left holds runes [0, at), right the rest.
func split(n *node, at int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if at <= 0 {
		return nil, n
	}
	if at >= n.runes {
		return n, nil
	}
	if n.leaf() {
		b := runeToByte(n.text, at)
		return newLeaf(n.text[:b]), newLeaf(n.text[b:])
	}
	switch {
	case at < n.left.runes:
		ll, lr := split(n.left, at)
		return ll, join(lr, n.right)
	case at == n.left.runes:
		return n.left, n.right
	}
	rl, rr := split(n.right, at-n.left.runes)
	return join(n.left, rl), rr
}

// runeToByte converts a rune index within s to a byte index.
func runeToByte(s string, at int) int {
	i := 0
	for b := range s {
		if i == at {
			return b
		}
		i++
	}
	return len(s)
}

// byteOffset returns the byte offset of rune offset at within n.
func byteOffset(n *node, at int) int {
	off := 0
	for n != nil && !n.leaf() {
		if at < n.left.runes {
			n = n.left
			continue
		}
		at -= n.left.runes
		off += n.left.bytes
		n = n.right
	}
	if n == nil {
		return off
	}
	return off + runeToByte(n.text, at)
}

// lineStart returns the byte and rune offsets just past the k-th newline of n.
// k must be in [1, n.lines].
func lineStart(n *node, k int) (int, int) {
	byteOff, runeOff := 0, 0
	for !n.leaf() {
		if k <= n.left.lines {
			n = n.left
			continue
		}
		k -= n.left.lines
		byteOff += n.left.bytes
		runeOff += n.left.runes
		n = n.right
	}
	seen := 0
	for b, r := range n.text {
		runeOff++
		if r == '\n' {
			seen++
			if seen == k {
				return byteOff + b + 1, runeOff
			}
		}
	}
	// Unreachable while the counts are consistent.
	return byteOff + n.bytes, runeOff
}

// collect appends the leaf pieces overlapping bytes [start, end) of n.
func collect(n *node, start, end int, out []string) []string {
	if n == nil || start >= end {
		return out
	}
	if n.leaf() {
		return append(out, n.text[max(start, 0):min(end, n.bytes)])
	}
	if start < n.left.bytes {
		out = collect(n.left, start, min(end, n.left.bytes), out)
	}
	if end > n.left.bytes {
		out = collect(n.right, max(start-n.left.bytes, 0), end-n.left.bytes, out)
	}
	return out
}

func concat(pieces []string) string {
	switch len(pieces) {
	case 0:
		return ""
	case 1:
		return pieces[0]
	}
	return strings.Join(pieces, "")
}

func walk(n *node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	if n.leaf() {
		return yield(n.text)
	}
	return walk(n.left, yield) && walk(n.right, yield)
}
