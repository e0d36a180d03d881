package entity

import "time"

// EntityNotesConfig is the per-entity-type flag gating whether notes may be
// created for that type. Disabling it later blocks new writes only; existing
// rows stay readable to actors who still hold notes:read.
type EntityNotesConfig struct {
	EntityType string
	Enabled    bool
	UpdatedAt  time.Time
}
