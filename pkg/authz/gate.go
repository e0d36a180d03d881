// Package authz answers the coarse-grained question "may this actor read or
// create notes on this entity type". Author-equality checks on update/delete
// belong to the caller, not to this gate.
package authz

import (
	"context"

	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/repository/unitofwork"
)

type Gate struct{}

func NewGate() *Gate {
	return &Gate{}
}

// ResourceKey builds the grant-table key for an entity type's notes.
func ResourceKey(entityType string) string {
	return entityType + ":notes"
}

// CanPerform evaluates the administrative bypass first, then role grants.
// No side effects; re-evaluated per request so permission changes take
// effect on the next call without invalidation.
func (g *Gate) CanPerform(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.Actor, entityType string, action entity.NoteAction) (bool, error) {
	if actor.IsAdmin {
		return true, nil
	}
	if len(actor.Roles) == 0 {
		return false, nil
	}

	grants, err := uow.PermissionGrantRepository().FindByResourceAction(ctx, ResourceKey(entityType), action)
	if err != nil {
		return false, err
	}

	granted := make(map[string]struct{}, len(grants))
	for _, grant := range grants {
		granted[grant.Role] = struct{}{}
	}
	for _, role := range actor.Roles {
		if _, ok := granted[role]; ok {
			return true, nil
		}
	}
	return false, nil
}
