package main

import (
	"context"
	"log"
	"time"

	"entity-notes-be/internal/config"
	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/model"
	"entity-notes-be/internal/repository/unitofwork"
	"entity-notes-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/gorm/clause"
)

// Seeds the notes-enabled registry and a baseline grant set for local
// development. Idempotent: conflicting rows are left as-is.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	enabledTypes := []string{"issues", "contacts", "orders"}
	for _, entityType := range enabledTypes {
		err := uow.NotesConfigRepository().Upsert(ctx, &entity.EntityNotesConfig{
			EntityType: entityType,
			Enabled:    true,
			UpdatedAt:  time.Now(),
		})
		if err != nil {
			color.Red("✗ config %s: %v", entityType, err)
			continue
		}
		color.Green("✓ notes enabled for %s", entityType)
	}

	grants := []model.PermissionGrant{
		{Role: "agent", ResourceKey: "issues:notes", Action: "read"},
		{Role: "agent", ResourceKey: "issues:notes", Action: "create"},
		{Role: "viewer", ResourceKey: "issues:notes", Action: "read"},
		{Role: "sales", ResourceKey: "contacts:notes", Action: "read"},
		{Role: "sales", ResourceKey: "contacts:notes", Action: "create"},
		{Role: "support", ResourceKey: "orders:notes", Action: "read"},
		{Role: "support", ResourceKey: "orders:notes", Action: "create"},
	}
	for _, g := range grants {
		err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&g).Error
		if err != nil {
			color.Red("✗ grant %s %s %s: %v", g.Role, g.ResourceKey, g.Action, err)
			continue
		}
		color.Green("✓ grant %s may %s on %s", g.Role, g.Action, g.ResourceKey)
	}

	color.Cyan("Seeding complete")
}
