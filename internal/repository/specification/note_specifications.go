package specification

import (
	"time"

	"gorm.io/gorm"
)

// ForEntity scopes notes to one parent instance
type ForEntity struct {
	EntityType string
	EntityId   string
}

func (s ForEntity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entity_type = ? AND entity_id = ?", s.EntityType, s.EntityId)
}

// ForEntities scopes notes to a set of parent instances of one type
type ForEntities struct {
	EntityType string
	EntityIds  []string
}

func (s ForEntities) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entity_type = ? AND entity_id IN ?", s.EntityType, s.EntityIds)
}

// NewestFirst orders by created_at descending with id as the tie-break,
// giving a deterministic total order under coarse clock granularity.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC, id DESC")
}

// Before is the keyset-pagination boundary matching NewestFirst ordering.
type Before struct {
	CreatedAt time.Time
	Id        int64
}

func (s Before) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at < ? OR (created_at = ? AND id < ?)", s.CreatedAt, s.CreatedAt, s.Id)
}
