package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	EntityType string `json:"entity_type" validate:"required"`
	EntityId   string `json:"entity_id" validate:"required"`
	Content    string `json:"content" validate:"required"`
	// IsInternal defaults to true when omitted.
	IsInternal *bool `json:"is_internal"`
}

type CreateNoteResponse struct {
	Id int64 `json:"id"`
}

type ListNotesRequest struct {
	EntityType string `validate:"required"`
	EntityId   string `validate:"required"`
	Cursor     string
	Limit      int
}

// NoteResponse carries rendered HTML, never raw markup.
type NoteResponse struct {
	Id          int64      `json:"id"`
	EntityType  string     `json:"entity_type"`
	EntityId    string     `json:"entity_id"`
	AuthorId    uuid.UUID  `json:"author_id"`
	AuthorName  string     `json:"author_name"`
	ContentHTML string     `json:"content_html"`
	NoteType    string     `json:"note_type"`
	IsInternal  bool       `json:"is_internal"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ListNotesResponse struct {
	Notes      []NoteResponse `json:"notes"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

type UpdateNoteRequest struct {
	Id      int64
	Content string `json:"content" validate:"required"`
}

type UpdateNoteResponse struct {
	Id int64 `json:"id"`
}

type EnabledTypesResponse struct {
	EntityTypes []string `json:"entity_types"`
}
