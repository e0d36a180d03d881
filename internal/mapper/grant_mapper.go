package mapper

import (
	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/model"
)

type GrantMapper struct{}

func NewGrantMapper() *GrantMapper {
	return &GrantMapper{}
}

func (m *GrantMapper) ToEntity(g *model.PermissionGrant) *entity.PermissionGrant {
	if g == nil {
		return nil
	}
	return &entity.PermissionGrant{
		Id:          g.Id,
		Role:        g.Role,
		ResourceKey: g.ResourceKey,
		Action:      entity.NoteAction(g.Action),
	}
}

func (m *GrantMapper) ToEntities(grants []*model.PermissionGrant) []*entity.PermissionGrant {
	entities := make([]*entity.PermissionGrant, len(grants))
	for i, g := range grants {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
