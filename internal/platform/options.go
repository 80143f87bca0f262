package platform

import (
	"log/slog"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/i18n"
)

// options holds the internal configuration for the editor.
type options struct {
	fileSystem   core.FileSystem
	picker       core.Picker
	logger       *slog.Logger
	language     i18n.Language
	table        *i18n.Table
	eventBuffer  int
	errorHandler func(error)
	readOnly     bool
}

// Option defines a functional option for configuring the editor.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		language: i18n.DefaultLanguage,
	}
}

// WithLogger sets the logger for the editor and the default file system.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFileSystem allows injecting a custom file I/O adapter (e.g. a mock).
// If provided, the local disk adapter will be skipped.
func WithFileSystem(fs core.FileSystem) Option {
	return func(o *options) {
		o.fileSystem = fs
	}
}

// WithPicker sets the path chooser used by Save on untitled documents.
// Without one, saving an untitled document fails with core.ErrNoPath.
func WithPicker(p core.Picker) Option {
	return func(o *options) {
		o.picker = p
	}
}

// WithLanguage selects a language from the built-in translations.
func WithLanguage(lang i18n.Language) Option {
	return func(o *options) {
		o.language = lang
	}
}

// WithTable sets the translation table directly, overriding WithLanguage.
func WithTable(t i18n.Table) Option {
	return func(o *options) {
		o.table = &t
	}
}

// WithEventBuffer sets the capacity of the editor's event channel.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithErrorHandler registers a callback for command and watcher failures
// that have no caller to return to.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithReadOnly enables read-only mode. Save and SaveAs return
// core.ErrReadOnly; editing in memory is still allowed.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}
