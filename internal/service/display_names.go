package service

import (
	"context"
	"time"

	"entity-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const unknownAuthorName = "Unknown"

// displayNames resolves author ids to display names with a short-lived
// cache. Display names are presentation only; authorization is never
// cached (see the gate).
type displayNames struct {
	cache *gocache.Cache
}

func newDisplayNames() *displayNames {
	return &displayNames{
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (d *displayNames) Resolve(ctx context.Context, uow unitofwork.UnitOfWork, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	var missing []uuid.UUID

	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if cached, ok := d.cache.Get(id.String()); ok {
			names[id] = cached.(string)
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return names, nil
	}

	users, err := uow.UserRepository().FindByIds(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		names[u.Id] = u.FullName
		d.cache.SetDefault(u.Id.String(), u.FullName)
	}

	// Authors whose user record is gone stay resolvable: the note keeps
	// its detached author_id, the name just degrades.
	for _, id := range missing {
		if _, ok := names[id]; !ok {
			names[id] = unknownAuthorName
		}
	}

	return names, nil
}
