package app

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/burakmert236/matchday/common/cache"
	"github.com/burakmert236/matchday/common/config"
	"github.com/burakmert236/matchday/common/database"
	apperrors "github.com/burakmert236/matchday/common/errors"
	commonevents "github.com/burakmert236/matchday/common/events"
	"github.com/burakmert236/matchday/common/logger"
	"github.com/burakmert236/matchday/common/natsjetstream"
	"github.com/burakmert236/matchday/common/store"
	"github.com/burakmert236/matchday/internal/events"
	"github.com/burakmert236/matchday/internal/events/publisher"
	"github.com/burakmert236/matchday/internal/repository"
	"github.com/burakmert236/matchday/internal/service"
)

type App struct {
	cfg        *config.Config
	logger     *logger.Logger
	store      store.Store
	natsClient *natsjetstream.Client

	eventPublisher  *publisher.EventPublisher
	eventSubscriber *events.EventSubscriber

	tournamentRepo repository.TournamentRepository
	teamRepo       repository.TeamRepository

	Registry     service.RegistryService
	Registration service.RegistrationService
	Chat         service.ChatService
	Session      service.SessionService

	cleanup []func() error
}

func New(ctx context.Context, cfg *config.Config) (*App, *apperrors.AppError) {
	app := &App{
		cfg:     cfg,
		cleanup: make([]func() error, 0),
	}

	app.initLogger()

	if err := app.initStore(); err != nil {
		return nil, err
	}

	if err := app.initNATS(ctx); err != nil {
		return nil, err
	}

	app.initMessagePublisher()
	app.initServices()

	if err := app.initMessageSubscriber(ctx); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) initLogger() {
	if a.cfg.Server.Environment == "production" {
		a.logger = logger.New(logger.Config{
			Level:       a.cfg.Server.LogLevel,
			Format:      "json",
			ServiceName: "matchday",
		})
		return
	}
	a.logger = logger.Development("matchday")
}

func (a *App) initStore() *apperrors.AppError {
	switch a.cfg.Store.Backend {
	case "", "memory":
		a.store = store.NewMemoryStore()
		a.logger.Info("Using in-memory record store")

	case "redis":
		redisClient, err := cache.NewRedisClient(a.cfg.Redis)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeInternalServer, "failed to init redis client")
		}
		a.cleanup = append(a.cleanup, redisClient.Close)
		a.store = store.NewRedisStore(redisClient.GetClient())
		a.logger.Info("Using redis record store", "address", a.cfg.Redis.Address)

	case "dynamodb":
		dynamoClient, err := database.NewDynamoDBClient(a.cfg)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeInternalServer, "failed to init dynamodb client")
		}
		a.store = store.NewDynamoStore(dynamoClient)
		a.logger.Info("Using dynamodb record store", "table", a.cfg.DynamoDB.TableName)

	default:
		return apperrors.New(apperrors.CodeInvalidInput,
			fmt.Sprintf("unknown store backend: %s", a.cfg.Store.Backend))
	}

	return nil
}

func (a *App) initNATS(ctx context.Context) *apperrors.AppError {
	natsClient, err := natsjetstream.NewClient(&natsjetstream.Config{
		URL:           a.cfg.NATS.URL,
		MaxReconnect:  a.cfg.NATS.MaxReconnect,
		ReconnectWait: time.Duration(a.cfg.NATS.ReconnectWaitSeconds) * time.Second,
		Timeout:       time.Duration(a.cfg.NATS.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return err
	}

	a.natsClient = natsClient

	stream := jetstream.StreamConfig{
		Name:     commonevents.StoreEventsStream,
		Subjects: []string{commonevents.StoreEventsWildcard},
	}

	if _, streamErr := a.natsClient.JetStream().CreateOrUpdateStream(ctx, stream); streamErr != nil {
		a.logger.Error("Failed to create stream",
			"error", streamErr,
			"stream", stream.Name,
		)
		return apperrors.Wrap(streamErr, apperrors.CodeInternalServer, "failed to create jetstream event stream")
	}
	a.logger.Info("Stream ready", "stream", stream.Name)

	a.cleanup = append(a.cleanup, natsClient.Close)

	return nil
}

func (a *App) initMessagePublisher() {
	a.eventPublisher = publisher.NewEventPublisher(a.natsClient, a.logger)
}

func (a *App) initServices() {
	a.tournamentRepo = repository.NewTournamentRepository(a.store)
	a.teamRepo = repository.NewTeamRepository(a.store)
	chatRepo := repository.NewChatRepository(a.store)
	sessionRepo := repository.NewSessionRepository(a.store)
	selectionRepo := repository.NewSelectionRepository(a.store)

	a.Registry = service.NewRegistryService(a.tournamentRepo, selectionRepo, a.eventPublisher, a.logger)
	a.Registration = service.NewRegistrationService(a.teamRepo, a.tournamentRepo, selectionRepo, a.eventPublisher, a.logger)
	a.Chat = service.NewChatService(chatRepo, a.eventPublisher, a.logger)
	a.Session = service.NewSessionService(sessionRepo, selectionRepo, a.eventPublisher, a.logger)
}

// initMessageSubscriber wires the reload-on-notify handlers: whenever a
// collection changes, re-read it fresh from the store the way a mounted
// view would.
func (a *App) initMessageSubscriber(ctx context.Context) *apperrors.AppError {
	a.eventSubscriber = events.NewEventSubscriber(a.natsClient, a.logger)

	a.eventSubscriber.Handle(commonevents.TournamentsChanged, func(ctx context.Context, change commonevents.CollectionChanged) error {
		tournaments, err := a.tournamentRepo.List(ctx)
		if err != nil {
			return err
		}
		a.logger.Info("Tournaments reloaded", "count", len(tournaments))
		return nil
	})

	a.eventSubscriber.Handle(commonevents.TeamsChanged, func(ctx context.Context, change commonevents.CollectionChanged) error {
		teams, err := a.teamRepo.ListMine(ctx)
		if err != nil {
			return err
		}
		a.logger.Info("Teams reloaded", "count", len(teams))
		return nil
	})

	a.eventSubscriber.Handle(commonevents.MessagesChanged, func(ctx context.Context, change commonevents.CollectionChanged) error {
		a.logger.Debug("Message log changed", "key", change.Key)
		return nil
	})

	if err := a.eventSubscriber.Start(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternalServer, "failed to start event subscriber")
	}

	return nil
}

func (a *App) Start() {
	a.logger.Info("Application started successfully",
		"environment", a.cfg.Server.Environment,
		"store", a.cfg.Store.Backend,
	)
}

func (a *App) Stop() {
	a.logger.Info("Stopping application...")

	for _, cleanup := range a.cleanup {
		if err := cleanup(); err != nil {
			a.logger.Error(fmt.Sprintf("Cleanup error: %v", err))
		}
	}

	a.logger.Info("Application stopped")
}

func (a *App) Logger() *logger.Logger {
	return a.logger
}
