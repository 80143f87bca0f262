package fs

import (
	"sort"
	"time"

	"github.com/aretw0/introspection"
)

// FileSystemState exposes internal state for observability.
type FileSystemState struct {
	ReadOnly  bool       `json:"read_only" yaml:"read_only"`
	Perm      string     `json:"perm" yaml:"perm"`
	Debounce  string     `json:"debounce" yaml:"debounce"`
	Watching  []string   `json:"watching,omitempty" yaml:"watching,omitempty"`
	LastRead  *time.Time `json:"last_read,omitempty" yaml:"last_read,omitempty"`
	LastWrite *time.Time `json:"last_write,omitempty" yaml:"last_write,omitempty"`
}

// State implements introspection.Introspectable.
func (f *FileSystem) State() any {
	f.mu.RLock()
	defer f.mu.RUnlock()

	watching := make([]string, 0, len(f.watching))
	for path := range f.watching {
		watching = append(watching, path)
	}
	sort.Strings(watching)

	return FileSystemState{
		ReadOnly:  f.config.ReadOnly,
		Perm:      f.config.Perm.String(),
		Debounce:  f.config.Debounce.String(),
		Watching:  watching,
		LastRead:  f.lastRead,
		LastWrite: f.lastWrite,
	}
}

// ComponentType implements introspection.Component.
func (f *FileSystem) ComponentType() string {
	return "filesystem"
}

var _ introspection.Introspectable = (*FileSystem)(nil)
var _ introspection.Component = (*FileSystem)(nil)
