package contract

import (
	"context"

	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	// Delete soft-deletes by default; hard removes the row when hard is true.
	Delete(ctx context.Context, id int64, hard bool) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
