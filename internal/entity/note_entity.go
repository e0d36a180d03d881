package entity

import (
	"time"

	"github.com/google/uuid"
)

type NoteType string

const (
	NoteTypeHuman  NoteType = "human"
	NoteTypeSystem NoteType = "system"
)

// Label is the export-facing name for the note type.
func (t NoteType) Label() string {
	if t == NoteTypeSystem {
		return "System"
	}
	return "Note"
}

// Note is a free-text annotation attached to an arbitrary parent entity.
// The parent is a weak reference: (EntityType, EntityId) is validated against
// the notes-enabled registry at creation time only, never against the parent
// row itself, so a later-deleted parent orphans but does not invalidate its
// notes.
type Note struct {
	Id         int64
	EntityType string
	EntityId   string
	AuthorId   uuid.UUID
	Content    string
	NoteType   NoteType
	IsInternal bool
	Change     *FieldChange
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}

// FieldChange records the old/new values a system note was synthesized from.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}
