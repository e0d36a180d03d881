package entity

import "github.com/google/uuid"

type NoteAction string

const (
	ActionRead   NoteAction = "read"
	ActionCreate NoteAction = "create"
)

// PermissionGrant associates a role with an action on a resource key.
// The grant table is externally owned and consumed read-only here; the only
// resource keys this subsystem consults are "<entityType>:notes".
type PermissionGrant struct {
	Id          int64
	Role        string
	ResourceKey string
	Action      NoteAction
}

// Actor is the opaque current-actor value handed in by the session layer.
type Actor struct {
	Id      uuid.UUID
	Roles   []string
	IsAdmin bool
}

// SystemActorId is the designated identity for system notes when no human
// actor is attributable to the triggering mutation.
var SystemActorId = uuid.MustParse("00000000-0000-0000-0000-000000000001")
