package rope

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTree verifies the cached counts and the AVL property of every node.
func checkTree(t *testing.T, n *node) {
	t.Helper()
	if n == nil {
		return
	}
	if n.leaf() {
		require.NotEmpty(t, n.text, "empty leaf")
		require.LessOrEqual(t, n.bytes, maxLeaf)
		assert.Equal(t, len(n.text), n.bytes)
		assert.Equal(t, utf8.RuneCountInString(n.text), n.runes)
		assert.Equal(t, strings.Count(n.text, "\n"), n.lines)
		assert.Equal(t, 0, n.height)
		return
	}
	require.NotNil(t, n.left)
	require.NotNil(t, n.right)
	checkTree(t, n.left)
	checkTree(t, n.right)
	assert.Equal(t, n.left.bytes+n.right.bytes, n.bytes)
	assert.Equal(t, n.left.runes+n.right.runes, n.runes)
	assert.Equal(t, n.left.lines+n.right.lines, n.lines)
	assert.Equal(t, max(n.left.height, n.right.height)+1, n.height)
	d := n.left.height - n.right.height
	require.True(t, d >= -1 && d <= 1, "unbalanced node: %d vs %d", n.left.height, n.right.height)
}

func TestNew_RoundTrip(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"single":       "x",
		"newlines":     "line1\nline2\n",
		"multibyte":    "Hello, 世界\n这是一个最小可运行原型。\n",
		"crlf":         "a\r\nb\r\n",
		"only newline": "\n",
		"large":        strings.Repeat("0123456789abcdef\n", 5000),
		"large wide":   strings.Repeat("下一步：虚拟行 + 高亮。\n", 3000),
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			r := New(text)
			checkTree(t, r.root)
			assert.Equal(t, text, r.String())
			assert.Equal(t, len(text), r.Len())
			assert.Equal(t, utf8.RuneCountInString(text), r.RuneLen())
			assert.Equal(t, strings.Count(text, "\n")+1, r.LineCount())

			lines := strings.Split(text, "\n")
			for i, want := range lines {
				got, ok := r.Line(i)
				require.True(t, ok, "line %d", i)
				assert.Equal(t, want, got, "line %d", i)
			}
			_, ok := r.Line(len(lines))
			assert.False(t, ok)
			_, ok = r.Line(-1)
			assert.False(t, ok)
		})
	}
}

func TestZeroRope(t *testing.T) {
	var r Rope
	assert.Equal(t, 1, r.LineCount())
	assert.Equal(t, -1, r.Height())
	line, ok := r.Line(0)
	assert.True(t, ok)
	assert.Empty(t, line)
	_, ok = r.Line(1)
	assert.False(t, ok)
	assert.Equal(t, "", r.String())
}

func TestChunkEnd_KeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("é", maxLeaf) // two bytes each
	r := New(text)
	for chunk := range r.Chunks() {
		assert.True(t, utf8.ValidString(chunk), "chunk split a rune")
	}
	assert.Equal(t, text, r.String())
}

func TestBuild_IsBalanced(t *testing.T) {
	r := New(strings.Repeat("a\n", 100_000))
	checkTree(t, r.root)
	// 200 KB in 1 KiB leaves is about 196 leaves, so the tree is shallow.
	assert.LessOrEqual(t, r.Height(), 9)
}

func TestLine_SharesLeafMemory(t *testing.T) {
	r := New("alpha\nbeta\ngamma")
	line, ok := r.Line(1)
	require.True(t, ok)
	assert.Equal(t, "beta", line)
	leaf := r.root.text
	require.NotEmpty(t, leaf)
	assert.Equal(t, unsafe.StringData(leaf[6:]), unsafe.StringData(line), "line was copied")
}

func TestLine_AcrossLeaves(t *testing.T) {
	long := strings.Repeat("x", 3*maxLeaf+7)
	text := "head\n" + long + "\ntail"
	r := New(text)
	require.Greater(t, r.Height(), 0)
	got, ok := r.Line(1)
	require.True(t, ok)
	assert.Equal(t, long, got)
	got, ok = r.Line(2)
	require.True(t, ok)
	assert.Equal(t, "tail", got)
}

func TestLineStart(t *testing.T) {
	r := New("ab\n世界\n\nz")
	for i, want := range []int{0, 3, 6, 7} {
		got, ok := r.LineStart(i)
		require.True(t, ok)
		assert.Equal(t, want, got, "line %d", i)
	}
	_, ok := r.LineStart(4)
	assert.False(t, ok)
}

func TestSlice(t *testing.T) {
	r := New("héllo\nwörld")
	got, err := r.Slice(1, 8)
	require.NoError(t, err)
	assert.Equal(t, "éllo\nwö", got)

	_, err = r.Slice(3, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = r.Slice(0, 12)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestInsertDelete_Basic(t *testing.T) {
	r := New("line1\nline2")
	r, err := r.Insert(5, "\ninserted")
	require.NoError(t, err)
	assert.Equal(t, "line1\ninserted\nline2", r.String())
	assert.Equal(t, 3, r.LineCount())

	r, err = r.Delete(0, 6)
	require.NoError(t, err)
	assert.Equal(t, "inserted\nline2", r.String())
	assert.Equal(t, 2, r.LineCount())

	_, err = r.Insert(100, "x")
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = r.Delete(-1, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestInsert_LeavesOriginalUntouched(t *testing.T) {
	orig := New("abc\ndef")
	edited, err := orig.Insert(3, "XYZ")
	require.NoError(t, err)
	assert.Equal(t, "abc\ndef", orig.String())
	assert.Equal(t, "abcXYZ\ndef", edited.String())
}

func TestAppend(t *testing.T) {
	r := New("ab\n").Append(New("cd"))
	assert.Equal(t, "ab\ncd", r.String())
	assert.Equal(t, 2, r.LineCount())
}

func TestWriteTo(t *testing.T) {
	text := strings.Repeat("chunked output\n", 400)
	var sb strings.Builder
	n, err := New(text).WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(len(text)), n)
	assert.Equal(t, text, sb.String())
}

// TestRandomEdits checks the rope against a plain []rune model.
func TestRandomEdits(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	alphabet := []rune("abc\n世界é \r")
	randText := func(n int) string {
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return string(rs)
	}

	model := []rune(randText(3000))
	r := New(string(model))

	for step := 0; step < 2000; step++ {
		if rng.IntN(3) > 0 || len(model) == 0 {
			at := rng.IntN(len(model) + 1)
			text := randText(rng.IntN(300))
			var err error
			r, err = r.Insert(at, text)
			require.NoError(t, err)
			model = append(model[:at], append([]rune(text), model[at:]...)...)
		} else {
			start := rng.IntN(len(model))
			end := start + rng.IntN(min(len(model)-start, 400)+1)
			var err error
			r, err = r.Delete(start, end)
			require.NoError(t, err)
			model = append(model[:start], model[end:]...)
		}

		if step%100 == 0 {
			checkTree(t, r.root)
			want := string(model)
			require.Equal(t, want, r.String())
			require.Equal(t, strings.Count(want, "\n")+1, r.LineCount())
			lines := strings.Split(want, "\n")
			i := rng.IntN(len(lines))
			got, ok := r.Line(i)
			require.True(t, ok)
			require.Equal(t, lines[i], got)
		}
	}
}

func BenchmarkLine(b *testing.B) {
	r := New(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 200_000))
	n := r.LineCount()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Line(i % n)
	}
}

func BenchmarkInsert(b *testing.B) {
	r := New(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 200_000))
	mid := r.RuneLen() / 2
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Insert(mid, "x")
	}
}
