package events

import "time"

// Event defines the contract for events emitted onto the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NoteCreated builds the event published after a note is persisted.
func NoteCreated(noteId int64, entityType, entityId, noteType string) BaseEvent {
	return BaseEvent{
		Type: "NOTE_CREATED",
		Data: map[string]interface{}{
			"note_id":     noteId,
			"entity_type": entityType,
			"entity_id":   entityId,
			"note_type":   noteType,
		},
		OccurredAt: time.Now(),
	}
}
