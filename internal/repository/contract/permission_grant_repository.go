package contract

import (
	"context"

	"entity-notes-be/internal/entity"
)

// PermissionGrantRepository reads the externally owned grant table.
// No write methods on purpose.
type PermissionGrantRepository interface {
	FindByResourceAction(ctx context.Context, resourceKey string, action entity.NoteAction) ([]*entity.PermissionGrant, error)
}
