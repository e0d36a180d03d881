package implementation

import (
	"context"
	"errors"

	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/mapper"
	"entity-notes-be/internal/model"
	"entity-notes-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotesConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConfigMapper
}

func NewNotesConfigRepository(db *gorm.DB) contract.NotesConfigRepository {
	return &NotesConfigRepositoryImpl{
		db:     db,
		mapper: mapper.NewConfigMapper(),
	}
}

func (r *NotesConfigRepositoryImpl) FindByEntityType(ctx context.Context, entityType string) (*entity.EntityNotesConfig, error) {
	var m model.EntityNotesConfig
	if err := r.db.WithContext(ctx).Where("entity_type = ?", entityType).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NotesConfigRepositoryImpl) FindEnabled(ctx context.Context) ([]*entity.EntityNotesConfig, error) {
	var models []*model.EntityNotesConfig
	if err := r.db.WithContext(ctx).Where("enabled = ?", true).Order("entity_type ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NotesConfigRepositoryImpl) Upsert(ctx context.Context, config *entity.EntityNotesConfig) error {
	m := r.mapper.ToModel(config)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entity_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"}),
	}).Create(m).Error
}
