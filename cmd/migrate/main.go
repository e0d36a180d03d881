package main

import (
	"log"

	"entity-notes-be/internal/config"
	"entity-notes-be/internal/model"
	"entity-notes-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Note{},
		&model.EntityNotesConfig{},
		&model.PermissionGrant{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
