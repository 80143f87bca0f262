package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsText(t *testing.T) {
	for _, name := range []string{"a.txt", "src/main.rs", "deep/er/x.hpp", "Cargo.toml"} {
		assert.True(t, IsText(name), name)
	}
	for _, name := range []string{"a.png", "noext", "archive.tar.gz", "txt"} {
		assert.False(t, IsText(name), name)
	}
}

func TestListText(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"readme.md":        "#",
		"src/lib.rs":       "fn",
		"src/img/logo.png": "",
		"notes/todo.txt":   "x",
	}
	for name, body := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(body), 0644))
	}

	got, err := ListText(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes/todo.txt", "readme.md", "src/lib.rs"}, got)
}
