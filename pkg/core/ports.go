package core

import "context"

// FileSystem is the file I/O collaborator. The editor never touches the disk
// or presents dialogs itself; it hands paths and text to this interface.
type FileSystem interface {
	// Read returns the full text stored at path. Content that is not valid
	// UTF-8 must fail with ErrInvalidEncoding instead of being returned.
	Read(ctx context.Context, path string) (string, error)

	// Write stores content at path verbatim. A failed write must leave any
	// previous file intact.
	Write(ctx context.Context, path string, content string) error
}

// Watchable is implemented by file systems that report external changes.
type Watchable interface {
	// Watch emits EventChanged whenever the file at path changes on disk. The
	// channel is closed when ctx is done.
	Watch(ctx context.Context, path string) (<-chan Event, error)
}

// Picker chooses paths on behalf of the user, e.g. through native dialogs.
// ok is false when the user cancels.
type Picker interface {
	PickOpen(ctx context.Context) (path string, ok bool)
	PickSave(ctx context.Context, suggested string) (path string, ok bool)
}
