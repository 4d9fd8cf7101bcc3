package service

import "context"

// ChangePublisher is the fire-and-forget notification surface the
// services broadcast on after every write. Implementations log their
// own failures; callers never branch on the outcome.
type ChangePublisher interface {
	PublishTournamentsChanged(ctx context.Context)
	PublishTeamsChanged(ctx context.Context)
	PublishMessagesChanged(ctx context.Context, teamId string)
	PublishSessionsChanged(ctx context.Context, key string)
}
