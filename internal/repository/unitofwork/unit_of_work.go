package unitofwork

import (
	"context"

	"entity-notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	NotesConfigRepository() contract.NotesConfigRepository
	PermissionGrantRepository() contract.PermissionGrantRepository
	UserRepository() contract.UserRepository
}
