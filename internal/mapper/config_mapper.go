package mapper

import (
	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/model"
)

type ConfigMapper struct{}

func NewConfigMapper() *ConfigMapper {
	return &ConfigMapper{}
}

func (m *ConfigMapper) ToEntity(c *model.EntityNotesConfig) *entity.EntityNotesConfig {
	if c == nil {
		return nil
	}
	return &entity.EntityNotesConfig{
		EntityType: c.EntityType,
		Enabled:    c.Enabled,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *ConfigMapper) ToModel(c *entity.EntityNotesConfig) *model.EntityNotesConfig {
	if c == nil {
		return nil
	}
	return &model.EntityNotesConfig{
		EntityType: c.EntityType,
		Enabled:    c.Enabled,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *ConfigMapper) ToEntities(configs []*model.EntityNotesConfig) []*entity.EntityNotesConfig {
	entities := make([]*entity.EntityNotesConfig, len(configs))
	for i, c := range configs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
