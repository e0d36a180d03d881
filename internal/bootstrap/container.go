package bootstrap

import (
	"log"

	"entity-notes-be/internal/config"
	"entity-notes-be/internal/controller"
	"entity-notes-be/internal/pkg/logger"
	"entity-notes-be/internal/repository/unitofwork"
	"entity-notes-be/internal/service"
	"entity-notes-be/pkg/authz"
	pkgNats "entity-notes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController   controller.INoteController
	ExportController controller.IExportController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// SystemNoteProducer is handed to the entity-mutation system; it is the
	// only caller of the trusted system-note path.
	SystemNoteProducer service.ISystemNoteProducer
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	gate := authz.NewGate()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (best-effort: the API runs without the bus)
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Notes.CreatedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Notes.CreatedTopic,
		natsPub,
		sysLogger,
	)

	noteService := service.NewNoteService(
		uowFactory,
		gate,
		publisherService,
		sysLogger,
		cfg.Notes.MaxContentLength,
		cfg.Notes.HardDelete,
	)
	exportService := service.NewExportService(uowFactory, gate)
	systemNoteProducer := service.NewSystemNoteProducer(noteService, sysLogger)

	// 4. Controllers
	return &Container{
		NoteController:   controller.NewNoteController(noteService),
		ExportController: controller.NewExportController(exportService),

		ConsumerService:    consumerService,
		SystemNoteProducer: systemNoteProducer,
	}
}
