package core

// Command is a request sent from UI callbacks to the Editor, which is the
// only owner of the open document.
type Command interface {
	command()
}

// NewRequested replaces the open document with an empty one.
type NewRequested struct{}

// OpenRequested loads Path. An empty Path asks the Picker.
type OpenRequested struct{ Path string }

// SaveRequested writes the document to its bound path, asking the Picker when
// there is none.
type SaveRequested struct{}

// SaveAsRequested writes the document to Path and binds it. An empty Path asks
// the Picker.
type SaveAsRequested struct{ Path string }

// ReloadRequested re-reads the bound path, discarding in-memory changes.
type ReloadRequested struct{}

// SetContentRequested replaces the whole text, as on paste.
type SetContentRequested struct{ Text string }

func (NewRequested) command()        {}
func (OpenRequested) command()       {}
func (SaveRequested) command()       {}
func (SaveAsRequested) command()     {}
func (ReloadRequested) command()     {}
func (SetContentRequested) command() {}
