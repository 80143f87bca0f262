package core

import "errors"

// Common errors.
var (
	ErrReadOnly        = errors.New("editor is in read-only mode")
	ErrNoPath          = errors.New("document has no file path")
	ErrCancelled       = errors.New("cancelled by user")
	ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")
	ErrNotWatchable    = errors.New("file system does not support watching")
)
