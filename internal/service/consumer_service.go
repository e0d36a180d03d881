package service

import (
	"context"
	"encoding/json"

	"entity-notes-be/internal/dto"
	"entity-notes-be/internal/pkg/logger"
	"entity-notes-be/pkg/events"
	pkgNats "entity-notes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the in-process note-created topic and forwards
// each message to the NATS bus for externally owned consumers.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	natsPub   *pkgNats.Publisher
	log       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	natsPub *pkgNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		natsPub:   natsPub,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.NoteCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer_service", "failed to unmarshal note created message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.natsPub != nil {
		evt := events.NoteCreated(payload.NoteId, payload.EntityType, payload.EntityId, payload.NoteType)
		if err := cs.natsPub.Publish(ctx, evt); err != nil {
			cs.log.Warn("consumer_service", "failed to forward note created event", map[string]interface{}{
				"note_id": payload.NoteId,
				"error":   err.Error(),
			})
		}
	}

	msg.Ack()
}
