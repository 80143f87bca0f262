package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/i18n"
)

type memFS map[string]string

func (m memFS) Read(_ context.Context, path string) (string, error) {
	s, ok := m[path]
	if !ok {
		return "", os.ErrNotExist
	}
	return s, nil
}

func (m memFS) Write(_ context.Context, path, content string) error {
	m[path] = content
	return nil
}

func TestNew_Defaults(t *testing.T) {
	editor, err := New()
	require.NoError(t, err)
	assert.Equal(t, "[未命名]", editor.FileName())
	assert.False(t, editor.IsDirty())
}

func TestNew_LocalDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld"), 0644))

	editor, err := New(WithLanguage(i18n.English))
	require.NoError(t, err)
	require.NoError(t, editor.Open(ctx, path))
	assert.Equal(t, 2, editor.LineCount())

	require.NoError(t, editor.Insert(0, ">> "))
	require.NoError(t, editor.Save(ctx))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ">> hello\nworld", string(raw))
}

func TestNew_InjectedFileSystem(t *testing.T) {
	mem := memFS{"/a.txt": "x"}
	editor, err := New(WithFileSystem(mem), WithLanguage(i18n.English))
	require.NoError(t, err)

	require.NoError(t, editor.Open(context.Background(), "/a.txt"))
	editor.SetContent("y")
	require.NoError(t, editor.Save(context.Background()))
	assert.Equal(t, "y", mem["/a.txt"])
}

func TestNew_ReadOnly(t *testing.T) {
	editor, err := New(WithFileSystem(memFS{}), WithReadOnly(true))
	require.NoError(t, err)
	err = editor.SaveAs(context.Background(), "/x.txt")
	assert.ErrorIs(t, err, core.ErrReadOnly)
}

func TestNew_Table(t *testing.T) {
	catalog, err := i18n.Load()
	require.NoError(t, err)

	editor, err := New(WithTable(catalog.Table(i18n.English)), WithLanguage("fr"))
	require.NoError(t, err)
	assert.Equal(t, "[Untitled]", editor.FileName())

	_, err = New(WithLanguage("fr"))
	assert.Error(t, err)
}

func TestNew_ErrorHandler(t *testing.T) {
	var got []error
	editor, err := New(WithFileSystem(memFS{}), WithErrorHandler(func(err error) {
		got = append(got, err)
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmds := make(chan core.Command, 1)
	cmds <- core.OpenRequested{Path: "/missing.txt"}
	close(cmds)
	require.NoError(t, editor.Run(ctx, cmds))

	require.Len(t, got, 1)
	assert.True(t, errors.Is(got[0], os.ErrNotExist))
}
