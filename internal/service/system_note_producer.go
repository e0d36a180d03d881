package service

import (
	"context"
	"fmt"

	"entity-notes-be/internal/entity"
	"entity-notes-be/internal/pkg/logger"
	"entity-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ChangeEvent describes a tracked field change on a parent entity. The
// mutation system delivers events at most once; deduplication of upstream
// retries is its responsibility.
type ChangeEvent struct {
	EntityType string
	EntityId   string
	Field      string
	OldValue   string
	NewValue   string
	// ActorId is the user who performed the mutation; nil when no human
	// actor is attributable.
	ActorId *uuid.UUID
}

// ISystemNoteProducer synthesizes system notes from entity mutations.
//
// The caller owns the unit of work: HandleChange writes through the SAME
// transaction the mutation runs in, so a rolled-back mutation takes its
// system note with it, and a failed note write aborts the mutation. No
// state exists where one is visible without the other.
type ISystemNoteProducer interface {
	HandleChange(ctx context.Context, uow unitofwork.UnitOfWork, evt ChangeEvent) (int64, error)
}

type systemNoteProducer struct {
	noteService INoteService
	log         logger.ILogger
}

func NewSystemNoteProducer(noteService INoteService, log logger.ILogger) ISystemNoteProducer {
	return &systemNoteProducer{
		noteService: noteService,
		log:         log,
	}
}

func (p *systemNoteProducer) HandleChange(ctx context.Context, uow unitofwork.UnitOfWork, evt ChangeEvent) (int64, error) {
	author := entity.SystemActorId
	if evt.ActorId != nil && *evt.ActorId != uuid.Nil {
		author = *evt.ActorId
	}

	input := SystemNoteInput{
		EntityType: evt.EntityType,
		EntityId:   evt.EntityId,
		Content:    renderChangeContent(evt),
		AuthorId:   author,
		Change: &entity.FieldChange{
			Field:    evt.Field,
			OldValue: evt.OldValue,
			NewValue: evt.NewValue,
		},
		IsInternal: true,
	}

	id, err := p.noteService.CreateSystem(ctx, uow, input)
	if err != nil {
		// The error propagates to, and must abort, the enclosing mutation.
		p.log.Error("system_note_producer", "failed to write system note", map[string]interface{}{
			"entity_type": evt.EntityType,
			"entity_id":   evt.EntityId,
			"field":       evt.Field,
			"error":       err.Error(),
		})
		return 0, err
	}

	return id, nil
}

// renderChangeContent builds note content in the restricted markup subset.
func renderChangeContent(evt ChangeEvent) string {
	if evt.OldValue == "" {
		return fmt.Sprintf("**%s** set to *%s*", evt.Field, evt.NewValue)
	}
	return fmt.Sprintf("**%s** changed from *%s* to *%s*", evt.Field, evt.OldValue, evt.NewValue)
}
