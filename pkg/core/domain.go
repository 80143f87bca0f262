package core

import "fmt"

// EventType represents the kind of change to the open document.
type EventType string

const (
	EventNew     EventType = "NEW"
	EventOpen    EventType = "OPEN"
	EventModify  EventType = "MODIFY"
	EventSave    EventType = "SAVE"
	EventReload  EventType = "RELOAD"
	EventChanged EventType = "CHANGED" // backing file changed on disk
)

// Event represents a change to the open document or its backing file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	if e.Path == "" {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
