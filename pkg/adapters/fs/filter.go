package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// TextExtensions are the file extensions offered by the open dialog's text
// filter.
var TextExtensions = []string{
	"txt", "rs", "toml", "md", "json", "yaml", "yml", "xml", "html",
	"css", "js", "ts", "py", "java", "c", "cpp", "h", "hpp",
}

// TextPattern is the glob matching every TextExtensions file below a root.
var TextPattern = "**/*.{" + strings.Join(TextExtensions, ",") + "}"

// IsText reports whether path has one of the TextExtensions.
func IsText(path string) bool {
	ok, err := doublestar.Match(TextPattern, filepath.ToSlash(path))
	return err == nil && ok
}

// ListText returns the text files below root, relative to it and sorted.
func ListText(root string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), TextPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
