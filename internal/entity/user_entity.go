package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is consumed read-only for author display names. Notes keep their
// author_id even when the user record becomes inaccessible; the reference is
// detached, never cascaded.
type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	CreatedAt time.Time
}
