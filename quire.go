package quire

import (
	"log/slog"

	"github.com/aretw0/quire/internal/platform"
	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/i18n"
)

// --- Types ---

// Editor is a public alias for the editor service.
type Editor = core.Editor

// Event is a public alias for editor events.
type Event = core.Event

// FileSystem is a public alias for the file I/O port.
type FileSystem = core.FileSystem

// Picker is a public alias for the path chooser port.
type Picker = core.Picker

// --- Configuration ---

// Option defines a functional option for configuring the editor.
type Option = platform.Option

// WithLogger sets the logger for the editor and the default file system.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithFileSystem allows injecting a custom file I/O adapter.
func WithFileSystem(fs FileSystem) Option {
	return platform.WithFileSystem(fs)
}

// WithPicker sets the path chooser used when saving untitled documents.
func WithPicker(p Picker) Option {
	return platform.WithPicker(p)
}

// WithLanguage selects the display language.
func WithLanguage(lang i18n.Language) Option {
	return platform.WithLanguage(lang)
}

// WithTable sets the translation table directly.
func WithTable(t i18n.Table) Option {
	return platform.WithTable(t)
}

// WithEventBuffer sets the capacity of the event channel.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithErrorHandler registers a callback for background failures.
func WithErrorHandler(fn func(error)) Option {
	return platform.WithErrorHandler(fn)
}

// WithReadOnly disables saving.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// --- Factory ---

// New creates a new Editor holding an empty document.
func New(opts ...Option) (*Editor, error) {
	return platform.New(opts...)
}

// --- Settings ---

// FileConfig is the content of a .quire.yaml settings file.
type FileConfig = platform.FileConfig

// FindConfig looks upwards from startDir for a settings file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}

// LoadConfig parses a settings file.
func LoadConfig(path string) (FileConfig, error) {
	return platform.LoadConfig(path)
}
