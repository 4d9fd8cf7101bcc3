package publisher

import (
	"context"
	"time"

	commonevents "github.com/burakmert236/matchday/common/events"
	"github.com/burakmert236/matchday/common/logger"
	"github.com/burakmert236/matchday/common/natsjetstream"
	"github.com/burakmert236/matchday/common/store"
)

// EventPublisher broadcasts collection-change notifications after
// writes. Publishing is fire-and-forget: a failed publish is logged and
// never fails the mutation that triggered it.
type EventPublisher struct {
	publisher *natsjetstream.Publisher
	logger    *logger.Logger
}

func NewEventPublisher(client *natsjetstream.Client, logger *logger.Logger) *EventPublisher {
	return &EventPublisher{
		publisher: natsjetstream.NewPublisher(client),
		logger:    logger,
	}
}

func (p *EventPublisher) PublishTournamentsChanged(ctx context.Context) {
	p.publish(ctx, commonevents.TournamentsChanged, "tournaments", store.KeyTournaments)
}

func (p *EventPublisher) PublishTeamsChanged(ctx context.Context) {
	p.publish(ctx, commonevents.TeamsChanged, "teams", store.KeyMyTeams)
}

func (p *EventPublisher) PublishMessagesChanged(ctx context.Context, teamId string) {
	p.publish(ctx, commonevents.MessagesChanged, "messages", store.TeamMessagesKey(teamId))
}

func (p *EventPublisher) PublishSessionsChanged(ctx context.Context, key string) {
	p.publish(ctx, commonevents.SessionsChanged, "sessions", key)
}

func (p *EventPublisher) publish(ctx context.Context, subject, collection, key string) {
	event := commonevents.CollectionChanged{
		Collection: collection,
		Key:        key,
		At:         time.Now().UTC(),
	}

	if err := p.publisher.PublishJSON(ctx, subject, event); err != nil {
		p.logger.Error("Failed to publish change event",
			"subject", subject,
			"key", key,
			"error", err,
		)
		return
	}

	p.logger.Debug("Published change event", "subject", subject, "key", key)
}
