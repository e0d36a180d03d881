package implementation

import (
	"context"

	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/mapper"
	"entity-notes-be/internal/model"
	"entity-notes-be/internal/repository/contract"

	"gorm.io/gorm"
)

type PermissionGrantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GrantMapper
}

func NewPermissionGrantRepository(db *gorm.DB) contract.PermissionGrantRepository {
	return &PermissionGrantRepositoryImpl{
		db:     db,
		mapper: mapper.NewGrantMapper(),
	}
}

func (r *PermissionGrantRepositoryImpl) FindByResourceAction(ctx context.Context, resourceKey string, action entity.NoteAction) ([]*entity.PermissionGrant, error) {
	var models []*model.PermissionGrant
	err := r.db.WithContext(ctx).
		Where("resource_key = ? AND action = ?", resourceKey, string(action)).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
