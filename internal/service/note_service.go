package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"entity-notes-be/internal/apperror"
	"entity-notes-be/internal/dto"
	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/pkg/logger"
	"entity-notes-be/internal/repository/specification"
	"entity-notes-be/internal/repository/unitofwork"
	"entity-notes-be/pkg/authz"
	"entity-notes-be/pkg/markup"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// SystemNoteInput is the trusted creation path. It is only reachable from
// the system-note producer, never from a request handler, and runs against
// the caller's active unit of work.
type SystemNoteInput struct {
	EntityType string
	EntityId   string
	Content    string
	AuthorId   uuid.UUID
	Change     *entity.FieldChange
	IsInternal bool
}

type INoteService interface {
	Create(ctx context.Context, actor entity.Actor, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	CreateSystem(ctx context.Context, uow unitofwork.UnitOfWork, input SystemNoteInput) (int64, error)
	List(ctx context.Context, actor entity.Actor, req *dto.ListNotesRequest) (*dto.ListNotesResponse, error)
	Update(ctx context.Context, actor entity.Actor, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error)
	Delete(ctx context.Context, actor entity.Actor, id int64) error
	EnabledEntityTypes(ctx context.Context) (*dto.EnabledTypesResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	gate             *authz.Gate
	publisherService IPublisherService
	names            *displayNames
	log              logger.ILogger
	maxContentLength int
	hardDelete       bool
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	gate *authz.Gate,
	publisherService IPublisherService,
	log logger.ILogger,
	maxContentLength int,
	hardDelete bool,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		gate:             gate,
		publisherService: publisherService,
		names:            newDisplayNames(),
		log:              log,
		maxContentLength: maxContentLength,
		hardDelete:       hardDelete,
	}
}

// validateContent trims and bounds note content. Shared by every write path.
func (c *noteService) validateContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", apperror.ErrEmptyContent
	}
	if len(trimmed) > c.maxContentLength {
		return "", apperror.ErrContentTooLong
	}
	return trimmed, nil
}

func (c *noteService) checkNotesEnabled(ctx context.Context, uow unitofwork.UnitOfWork, entityType string) error {
	cfg, err := uow.NotesConfigRepository().FindByEntityType(ctx, entityType)
	if err != nil {
		return apperror.Transient(err)
	}
	if cfg == nil || !cfg.Enabled {
		return apperror.ErrNotesNotEnabled
	}
	return nil
}

// Create is the human entry point. Validation is ordered and fails fast:
// actor, notes-enabled flag, permission gate, content rules, persist.
// Nothing is written on any failure.
func (c *noteService) Create(ctx context.Context, actor entity.Actor, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	if actor.Id == uuid.Nil {
		return nil, apperror.ErrUnauthenticated
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := c.checkNotesEnabled(ctx, uow, req.EntityType); err != nil {
		return nil, err
	}

	allowed, err := c.gate.CanPerform(ctx, uow, actor, req.EntityType, entity.ActionCreate)
	if err != nil {
		return nil, apperror.Transient(err)
	}
	if !allowed {
		return nil, apperror.ErrPermissionDenied
	}

	content, err := c.validateContent(req.Content)
	if err != nil {
		return nil, err
	}

	isInternal := true
	if req.IsInternal != nil {
		isInternal = *req.IsInternal
	}

	note := entity.Note{
		EntityType: req.EntityType,
		EntityId:   req.EntityId,
		AuthorId:   actor.Id,
		Content:    content,
		NoteType:   entity.NoteTypeHuman,
		IsInternal: isInternal,
		CreatedAt:  time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperror.Transient(err)
	}

	c.publishCreated(ctx, &note)

	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

// CreateSystem persists a system-authored note against the caller's active
// unit of work. The permission gate is skipped: the producer is a trusted
// internal caller. The notes-enabled flag and content rules still apply.
func (c *noteService) CreateSystem(ctx context.Context, uow unitofwork.UnitOfWork, input SystemNoteInput) (int64, error) {
	if input.AuthorId == uuid.Nil {
		return 0, apperror.ErrUnauthenticated
	}

	if err := c.checkNotesEnabled(ctx, uow, input.EntityType); err != nil {
		return 0, err
	}

	content, err := c.validateContent(input.Content)
	if err != nil {
		return 0, err
	}

	note := entity.Note{
		EntityType: input.EntityType,
		EntityId:   input.EntityId,
		AuthorId:   input.AuthorId,
		Content:    content,
		NoteType:   entity.NoteTypeSystem,
		IsInternal: input.IsInternal,
		Change:     input.Change,
		CreatedAt:  time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return 0, apperror.Transient(err)
	}

	return note.Id, nil
}

func (c *noteService) List(ctx context.Context, actor entity.Actor, req *dto.ListNotesRequest) (*dto.ListNotesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	allowed, err := c.gate.CanPerform(ctx, uow, actor, req.EntityType, entity.ActionRead)
	if err != nil {
		return nil, apperror.Transient(err)
	}
	if !allowed {
		return nil, apperror.ErrPermissionDenied
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	specs := []specification.Specification{
		specification.ForEntity{EntityType: req.EntityType, EntityId: req.EntityId},
		specification.NewestFirst{},
		// One extra row decides whether a next page exists.
		specification.Limit{N: limit + 1},
	}
	if req.Cursor != "" {
		createdAt, id, err := decodeCursor(req.Cursor)
		if err != nil {
			return nil, apperror.ErrNotFound
		}
		specs = append(specs, specification.Before{CreatedAt: createdAt, Id: id})
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Transient(err)
	}

	nextCursor := ""
	if len(notes) > limit {
		notes = notes[:limit]
		last := notes[len(notes)-1]
		nextCursor = encodeCursor(last.CreatedAt, last.Id)
	}

	authorIds := make([]uuid.UUID, 0, len(notes))
	for _, n := range notes {
		authorIds = append(authorIds, n.AuthorId)
	}
	names, err := c.names.Resolve(ctx, uow, authorIds)
	if err != nil {
		return nil, apperror.Transient(err)
	}

	res := &dto.ListNotesResponse{
		Notes:      make([]dto.NoteResponse, 0, len(notes)),
		NextCursor: nextCursor,
	}
	for _, n := range notes {
		res.Notes = append(res.Notes, dto.NoteResponse{
			Id:          n.Id,
			EntityType:  n.EntityType,
			EntityId:    n.EntityId,
			AuthorId:    n.AuthorId,
			AuthorName:  names[n.AuthorId],
			ContentHTML: markup.RenderHTML(n.Content),
			NoteType:    string(n.NoteType),
			IsInternal:  n.IsInternal,
			CreatedAt:   n.CreatedAt,
			UpdatedAt:   n.UpdatedAt,
		})
	}

	return res, nil
}

// loadForAuthor enforces the shared update/delete preconditions: the note
// exists and is not soft-deleted, the actor is its author (administrative
// bypass is the sole exception), and the actor still holds notes:create on
// the note's entity type. A demoted author loses edit rights on their own
// past notes.
func (c *noteService) loadForAuthor(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.Actor, id int64) (*entity.Note, error) {
	if actor.Id == uuid.Nil {
		return nil, apperror.ErrUnauthenticated
	}

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Transient(err)
	}
	if note == nil {
		return nil, apperror.ErrNotFound
	}

	if !actor.IsAdmin && actor.Id != note.AuthorId {
		return nil, apperror.ErrNotAuthor
	}

	allowed, err := c.gate.CanPerform(ctx, uow, actor, note.EntityType, entity.ActionCreate)
	if err != nil {
		return nil, apperror.Transient(err)
	}
	if !allowed {
		return nil, apperror.ErrPermissionDenied
	}

	return note, nil
}

func (c *noteService) Update(ctx context.Context, actor entity.Actor, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.loadForAuthor(ctx, uow, actor, req.Id)
	if err != nil {
		return nil, err
	}

	content, err := c.validateContent(req.Content)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	note.Content = content
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperror.Transient(err)
	}

	return &dto.UpdateNoteResponse{Id: note.Id}, nil
}

func (c *noteService) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := c.loadForAuthor(ctx, uow, actor, id)
	if err != nil {
		return err
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id, c.hardDelete); err != nil {
		return apperror.Transient(err)
	}

	return nil
}

func (c *noteService) EnabledEntityTypes(ctx context.Context) (*dto.EnabledTypesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	configs, err := uow.NotesConfigRepository().FindEnabled(ctx)
	if err != nil {
		return nil, apperror.Transient(err)
	}

	res := &dto.EnabledTypesResponse{EntityTypes: make([]string, 0, len(configs))}
	for _, cfg := range configs {
		res.EntityTypes = append(res.EntityTypes, cfg.EntityType)
	}
	return res, nil
}

// publishCreated fans the note out on the in-process bus. Auxiliary: a
// publish failure never fails the creation it describes.
func (c *noteService) publishCreated(ctx context.Context, note *entity.Note) {
	if c.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.NoteCreatedMessage{
		NoteId:     note.Id,
		EntityType: note.EntityType,
		EntityId:   note.EntityId,
		NoteType:   string(note.NoteType),
	})
	if err != nil {
		return
	}

	if err := c.publisherService.Publish(ctx, payload); err != nil {
		c.log.Warn("note_service", "failed to publish note created message", map[string]interface{}{
			"note_id": note.Id,
			"error":   err.Error(),
		})
	}
}
