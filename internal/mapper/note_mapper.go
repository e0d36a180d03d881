package mapper

import (
	"encoding/json"
	"time"

	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var deletedAt *time.Time
	if n.DeletedAt.Valid {
		t := n.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	var change *entity.FieldChange
	if len(n.Change) > 0 {
		var fc entity.FieldChange
		if err := json.Unmarshal(n.Change, &fc); err == nil {
			change = &fc
		}
	}

	return &entity.Note{
		Id:         n.Id,
		EntityType: n.EntityType,
		EntityId:   n.EntityId,
		AuthorId:   n.AuthorId,
		Content:    n.Content,
		NoteType:   entity.NoteType(n.NoteType),
		IsInternal: n.IsInternal,
		Change:     change,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  n.DeletedAt.Valid,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if n.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *n.DeletedAt, Valid: true}
	} else if n.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	var change datatypes.JSON
	if n.Change != nil {
		if raw, err := json.Marshal(n.Change); err == nil {
			change = raw
		}
	}

	return &model.Note{
		Id:         n.Id,
		EntityType: n.EntityType,
		EntityId:   n.EntityId,
		AuthorId:   n.AuthorId,
		Content:    n.Content,
		NoteType:   string(n.NoteType),
		IsInternal: n.IsInternal,
		Change:     change,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
