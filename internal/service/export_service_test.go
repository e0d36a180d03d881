package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"entity-notes-be/internal/apperror"
	"entity-notes-be/internal/dto"
	"entity-notes-be/internal/entity"
	"entity-notes-be/pkg/authz"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExportService(store *fakeStore) IExportService {
	return NewExportService(&fakeFactory{store: store}, authz.NewGate())
}

func addNote(store *fakeStore, entityId string, author uuid.UUID, noteType entity.NoteType, content string, createdAt time.Time) int64 {
	store.nextId++
	id := store.nextId
	store.notes[id] = &entity.Note{
		Id: id, EntityType: "issues", EntityId: entityId,
		AuthorId: author, Content: content, NoteType: noteType,
		IsInternal: true, CreatedAt: createdAt,
	}
	return id
}

func TestExportEntityNotes(t *testing.T) {
	store := newFakeStore()
	store.enableNotes("issues")
	store.grant("viewer", "issues:notes", entity.ActionRead)

	author := uuid.New()
	store.addUser(author, "Dana Alvarez")

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	addNote(store, "123", author, entity.NoteTypeHuman, "called the customer", base)
	addNote(store, "123", author, entity.NoteTypeHuman, "**waiting** on [parts](https://supplier.local/p9)", base.Add(time.Minute))
	addNote(store, "123", entity.SystemActorId, entity.NoteTypeSystem, "**status** changed from *open* to *resolved*", base.Add(2*time.Minute))
	addNote(store, "999", author, entity.NoteTypeHuman, "different entity", base)

	svc := newTestExportService(store)
	actor := entity.Actor{Id: uuid.New(), Roles: []string{"viewer"}}

	doc, err := svc.ExportEntityNotes(context.Background(), actor, "issues", "123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc.Filename, "issues_123_notes_"), "filename %q", doc.Filename)
	require.Len(t, doc.Sheets, 1)

	sheet := doc.Sheets[0]
	assert.Equal(t, []string{"Note ID", "Author", "Created", "Type", "Content"}, sheet.Header)
	require.Len(t, sheet.Rows, 3, "only the requested entity's notes are exported")

	// Newest first: the system note leads.
	assert.Equal(t, "System", sheet.Rows[0][3])
	assert.Equal(t, "status changed from open to resolved", sheet.Rows[0][4])
	assert.Equal(t, "Note", sheet.Rows[1][3])
	assert.Equal(t, "waiting on parts (https://supplier.local/p9)", sheet.Rows[1][4])
	assert.Equal(t, "Dana Alvarez", sheet.Rows[1][1])
	assert.Equal(t, "2026-08-20 10:00", sheet.Rows[2][2])

	for _, row := range sheet.Rows {
		assert.NotContains(t, row[4], "*", "markup markers never reach a cell")
		assert.NotContains(t, row[4], "[")
	}
}

func TestExportEntityNotes_PermissionDenied(t *testing.T) {
	store := newFakeStore()
	store.enableNotes("issues")
	svc := newTestExportService(store)

	_, err := svc.ExportEntityNotes(context.Background(), entity.Actor{Id: uuid.New(), Roles: []string{"viewer"}}, "issues", "123")
	assert.ErrorIs(t, err, apperror.ErrPermissionDenied)
}

func TestExportBulk_IncludeNotes(t *testing.T) {
	store := newFakeStore()
	store.enableNotes("issues")
	store.grant("viewer", "issues:notes", entity.ActionRead)

	author := uuid.New()
	store.addUser(author, "Dana Alvarez")
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	addNote(store, "123", author, entity.NoteTypeHuman, "on 123", base)
	addNote(store, "456", author, entity.NoteTypeHuman, "on 456", base.Add(time.Minute))
	addNote(store, "789", author, entity.NoteTypeHuman, "not requested", base)

	svc := newTestExportService(store)
	actor := entity.Actor{Id: uuid.New(), Roles: []string{"viewer"}}

	doc, err := svc.ExportBulk(context.Background(), actor, "issues", &dto.BulkExportRequest{
		EntityIds:    []string{"123", "456"},
		IncludeNotes: true,
	})
	require.NoError(t, err)
	require.Len(t, doc.Sheets, 2)

	primary := doc.Sheets[0]
	assert.Equal(t, "Entities", primary.Name)
	assert.Equal(t, []string{"Entity ID", "Notes"}, primary.Header)
	assert.Equal(t, [][]string{{"123", "1"}, {"456", "1"}}, primary.Rows)

	notes := doc.Sheets[1]
	assert.Equal(t, "Notes", notes.Name)
	assert.Equal(t, []string{"Entity ID", "Note ID", "Author", "Created", "Type", "Content"}, notes.Header)
	require.Len(t, notes.Rows, 2)
	// Entity id column keys the join back to the primary sheet.
	assert.Equal(t, "456", notes.Rows[0][0])
	assert.Equal(t, "123", notes.Rows[1][0])
}

func TestExportBulk_NotesOptOut(t *testing.T) {
	store := newFakeStore()
	store.enableNotes("issues")
	store.grant("viewer", "issues:notes", entity.ActionRead)
	addNote(store, "123", uuid.New(), entity.NoteTypeHuman, "present but not exported", time.Now())

	svc := newTestExportService(store)
	actor := entity.Actor{Id: uuid.New(), Roles: []string{"viewer"}}

	doc, err := svc.ExportBulk(context.Background(), actor, "issues", &dto.BulkExportRequest{
		EntityIds: []string{"123"},
	})
	require.NoError(t, err)
	require.Len(t, doc.Sheets, 1)
	assert.Equal(t, "Entities", doc.Sheets[0].Name)
}
