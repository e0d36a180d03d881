package model

import "time"

type EntityNotesConfig struct {
	EntityType string    `gorm:"type:varchar(100);primaryKey"`
	Enabled    bool      `gorm:"not null;default:false"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (EntityNotesConfig) TableName() string {
	return "entity_notes_configs"
}
