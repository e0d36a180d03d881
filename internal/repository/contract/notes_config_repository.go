package contract

import (
	"context"

	"entity-notes-be/internal/entity"
)

type NotesConfigRepository interface {
	FindByEntityType(ctx context.Context, entityType string) (*entity.EntityNotesConfig, error)
	FindEnabled(ctx context.Context) ([]*entity.EntityNotesConfig, error)
	Upsert(ctx context.Context, config *entity.EntityNotesConfig) error
}
