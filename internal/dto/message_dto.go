package dto

// NoteCreatedMessage travels over the in-process bus after a note is
// persisted.
type NoteCreatedMessage struct {
	NoteId     int64  `json:"note_id"`
	EntityType string `json:"entity_type"`
	EntityId   string `json:"entity_id"`
	NoteType   string `json:"note_type"`
}
