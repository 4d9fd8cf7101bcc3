package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	commonevents "github.com/burakmert236/matchday/common/events"
	"github.com/burakmert236/matchday/common/logger"
	"github.com/burakmert236/matchday/common/natsjetstream"
)

// ChangeHandler reacts to one collection-change notification, typically
// by re-reading the named collection from the store.
type ChangeHandler func(ctx context.Context, change commonevents.CollectionChanged) error

// EventSubscriber dispatches store change events to per-subject
// handlers. Handlers must be registered before Start; late subscribers
// do not see earlier events replayed.
type EventSubscriber struct {
	natsClient *natsjetstream.Client
	subscriber *natsjetstream.Subscriber
	handlers   map[string]ChangeHandler
	logger     *logger.Logger
}

func NewEventSubscriber(natsClient *natsjetstream.Client, logger *logger.Logger) *EventSubscriber {
	return &EventSubscriber{
		natsClient: natsClient,
		subscriber: natsjetstream.NewSubscriber(natsClient),
		handlers:   make(map[string]ChangeHandler),
		logger:     logger.With("component", "event-subscriber"),
	}
}

func (s *EventSubscriber) Handle(subject string, handler ChangeHandler) {
	s.handlers[subject] = handler
}

func (s *EventSubscriber) Start(ctx context.Context) error {
	s.logger.Info("Starting store event subscription")

	cfg := natsjetstream.ConsumerConfig{
		StreamName:    commonevents.StoreEventsStream,
		ConsumerName:  "matchday-store",
		Durable:       "matchday-store",
		FilterSubject: commonevents.StoreEventsWildcard,
		AckPolicy:     "explicit",
	}

	if err := s.subscriber.Subscribe(ctx, cfg, s.handleStoreEvent); err != nil {
		return fmt.Errorf("failed to subscribe to store events: %w", err)
	}

	s.logger.Info("Store event subscription started")
	return nil
}

func (s *EventSubscriber) handleStoreEvent(ctx context.Context, msg jetstream.Msg) error {
	subject := msg.Subject()

	var change commonevents.CollectionChanged
	if err := natsjetstream.UnmarshalJSON(msg, &change); err != nil {
		s.logger.Error("Failed to unmarshal change event", "subject", subject, "error", err)
		return fmt.Errorf("unmarshal error: %w", err)
	}

	handler, ok := s.handlers[subject]
	if !ok {
		s.logger.Debug("No handler for change event", "subject", subject)
		return nil
	}

	s.logger.Debug("Dispatching change event", "subject", subject, "key", change.Key)

	if err := handler(ctx, change); err != nil {
		s.logger.Error("Change handler failed", "subject", subject, "error", err)
		return err
	}

	return nil
}
