package core

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/quire/pkg/document"
	"github.com/aretw0/quire/pkg/i18n"
)

// EditorState exposes internal state for observability.
type EditorState struct {
	Path            string         `json:"path,omitempty" yaml:"path,omitempty"`
	FileName        string         `json:"file_name" yaml:"file_name"`
	Dirty           bool           `json:"dirty" yaml:"dirty"`
	State           document.State `json:"state" yaml:"state"`
	LineCount       int            `json:"line_count" yaml:"line_count"`
	RuneCount       int            `json:"rune_count" yaml:"rune_count"`
	ReadOnly        bool           `json:"read_only" yaml:"read_only"`
	Language        i18n.Language  `json:"language,omitempty" yaml:"language,omitempty"`
	EventBufferSize int            `json:"event_buffer_size" yaml:"event_buffer_size"`
	FileSystemType  string         `json:"file_system_type" yaml:"file_system_type"`
}

// State implements introspection.Introspectable.
func (e *Editor) State() any {
	e.mu.RLock()
	defer e.mu.RUnlock()

	fsType := "unknown"
	if e.fs != nil {
		fsType = "filesystem"
		if comp, ok := e.fs.(introspection.Component); ok {
			fsType = comp.ComponentType()
		}
	}

	path, _ := e.doc.FilePath()
	return EditorState{
		Path:            path,
		FileName:        e.doc.FileName(),
		Dirty:           e.doc.IsDirty(),
		State:           e.doc.State(),
		LineCount:       e.doc.LineCount(),
		RuneCount:       e.doc.RuneLen(),
		ReadOnly:        e.config.ReadOnly,
		Language:        e.config.Table.Language(),
		EventBufferSize: e.config.EventBuffer,
		FileSystemType:  fsType,
	}
}

// ComponentType implements introspection.Component.
func (e *Editor) ComponentType() string {
	return "editor"
}

var _ introspection.Introspectable = (*Editor)(nil)
var _ introspection.Component = (*Editor)(nil)
