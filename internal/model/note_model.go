package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Note struct {
	Id         int64          `gorm:"primaryKey;autoIncrement"`
	EntityType string         `gorm:"type:varchar(100);not null;index:idx_notes_entity,priority:1"`
	EntityId   string         `gorm:"type:text;not null;index:idx_notes_entity,priority:2"`
	AuthorId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Content    string         `gorm:"type:text;not null"`
	NoteType   string         `gorm:"type:varchar(10);not null;default:human"`
	IsInternal bool           `gorm:"not null;default:true"`
	Change     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index:idx_notes_entity,priority:3,sort:desc"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Note) TableName() string {
	return "notes"
}
