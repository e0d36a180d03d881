package service

import (
	"context"
	"strconv"
	"time"

	"entity-notes-be/internal/apperror"
	"entity-notes-be/internal/dto"
	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/repository/specification"
	"entity-notes-be/internal/repository/unitofwork"
	"entity-notes-be/pkg/authz"
	"entity-notes-be/pkg/export"
	"entity-notes-be/pkg/markup"

	"github.com/google/uuid"
)

var (
	singleNotesHeader = []string{"Note ID", "Author", "Created", "Type", "Content"}
	bulkNotesHeader   = []string{"Entity ID", "Note ID", "Author", "Created", "Type", "Content"}
)

type IExportService interface {
	ExportEntityNotes(ctx context.Context, actor entity.Actor, entityType, entityId string) (*export.Document, error)
	ExportBulk(ctx context.Context, actor entity.Actor, entityType string, req *dto.BulkExportRequest) (*export.Document, error)
}

type exportService struct {
	uowFactory unitofwork.RepositoryFactory
	gate       *authz.Gate
	names      *displayNames
}

func NewExportService(uowFactory unitofwork.RepositoryFactory, gate *authz.Gate) IExportService {
	return &exportService{
		uowFactory: uowFactory,
		gate:       gate,
		names:      newDisplayNames(),
	}
}

// ExportEntityNotes emits one sheet of plain-text note rows for a single
// parent instance. The read gate is re-checked here, never assumed from an
// earlier call.
func (s *exportService) ExportEntityNotes(ctx context.Context, actor entity.Actor, entityType, entityId string) (*export.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checkRead(ctx, uow, actor, entityType); err != nil {
		return nil, err
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ForEntity{EntityType: entityType, EntityId: entityId},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, apperror.Transient(err)
	}

	names, err := s.resolveAuthors(ctx, uow, notes)
	if err != nil {
		return nil, err
	}

	sheet := export.Sheet{
		Name:   "Notes",
		Header: singleNotesHeader,
	}
	for _, n := range notes {
		sheet.Rows = append(sheet.Rows, noteRow(n, names, ""))
	}

	return &export.Document{
		Filename: exportFilename(entityType, entityId),
		Sheets:   []export.Sheet{sheet},
	}, nil
}

// ExportBulk emits the primary entity sheet plus, when opted in, a notes
// sheet keyed by the entity identifier column for joinability.
func (s *exportService) ExportBulk(ctx context.Context, actor entity.Actor, entityType string, req *dto.BulkExportRequest) (*export.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checkRead(ctx, uow, actor, entityType); err != nil {
		return nil, err
	}

	primary := export.Sheet{
		Name:   "Entities",
		Header: []string{"Entity ID", "Notes"},
	}
	for _, id := range req.EntityIds {
		count, err := uow.NoteRepository().Count(ctx,
			specification.ForEntity{EntityType: entityType, EntityId: id},
		)
		if err != nil {
			return nil, apperror.Transient(err)
		}
		primary.Rows = append(primary.Rows, []string{id, strconv.FormatInt(count, 10)})
	}

	doc := &export.Document{
		Filename: entityType + "_export_" + time.Now().Format("2006-01-02"),
		Sheets:   []export.Sheet{primary},
	}

	if !req.IncludeNotes {
		return doc, nil
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ForEntities{EntityType: entityType, EntityIds: req.EntityIds},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, apperror.Transient(err)
	}

	names, err := s.resolveAuthors(ctx, uow, notes)
	if err != nil {
		return nil, err
	}

	notesSheet := export.Sheet{
		Name:   "Notes",
		Header: bulkNotesHeader,
	}
	for _, n := range notes {
		notesSheet.Rows = append(notesSheet.Rows, noteRow(n, names, n.EntityId))
	}
	doc.Sheets = append(doc.Sheets, notesSheet)

	return doc, nil
}

func (s *exportService) checkRead(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.Actor, entityType string) error {
	allowed, err := s.gate.CanPerform(ctx, uow, actor, entityType, entity.ActionRead)
	if err != nil {
		return apperror.Transient(err)
	}
	if !allowed {
		return apperror.ErrPermissionDenied
	}
	return nil
}

func (s *exportService) resolveAuthors(ctx context.Context, uow unitofwork.UnitOfWork, notes []*entity.Note) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.AuthorId)
	}
	names, err := s.names.Resolve(ctx, uow, ids)
	if err != nil {
		return nil, apperror.Transient(err)
	}
	return names, nil
}

// noteRow renders one export row. Content goes through the plain-text strip
// so no markup markers ever reach a cell. entityId is empty in
// single-entity mode, which omits the column.
func noteRow(n *entity.Note, names map[uuid.UUID]string, entityId string) []string {
	row := make([]string, 0, 6)
	if entityId != "" {
		row = append(row, entityId)
	}
	row = append(row,
		formatNoteId(n.Id),
		names[n.AuthorId],
		n.CreatedAt.Format("2006-01-02 15:04"),
		n.NoteType.Label(),
		markup.RenderPlain(n.Content),
	)
	return row
}

func formatNoteId(id int64) string {
	return strconv.FormatInt(id, 10)
}

func exportFilename(entityType, entityId string) string {
	return entityType + "_" + entityId + "_notes_" + time.Now().Format("2006-01-02")
}
