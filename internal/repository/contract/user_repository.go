package contract

import (
	"context"

	"entity-notes-be/internal/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)
}
