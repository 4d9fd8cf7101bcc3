package service

import (
	"context"

	"github.com/burakmert236/matchday/common/logger"
	"github.com/burakmert236/matchday/common/store"
	"github.com/burakmert236/matchday/internal/repository"
)

// fakePublisher records change notifications instead of touching NATS.
type fakePublisher struct {
	tournaments int
	teams       int
	messages    []string
	sessions    []string
}

func (f *fakePublisher) PublishTournamentsChanged(ctx context.Context) { f.tournaments++ }
func (f *fakePublisher) PublishTeamsChanged(ctx context.Context)       { f.teams++ }
func (f *fakePublisher) PublishMessagesChanged(ctx context.Context, teamId string) {
	f.messages = append(f.messages, teamId)
}
func (f *fakePublisher) PublishSessionsChanged(ctx context.Context, key string) {
	f.sessions = append(f.sessions, key)
}

type testEnv struct {
	store        *store.MemoryStore
	pub          *fakePublisher
	registry     RegistryService
	registration RegistrationService
	chat         ChatService
	session      SessionService
}

func newTestEnv() *testEnv {
	s := store.NewMemoryStore()
	pub := &fakePublisher{}
	log := logger.New(logger.Config{Level: "error", ServiceName: "test"})

	tournamentRepo := repository.NewTournamentRepository(s)
	teamRepo := repository.NewTeamRepository(s)
	chatRepo := repository.NewChatRepository(s)
	sessionRepo := repository.NewSessionRepository(s)
	selectionRepo := repository.NewSelectionRepository(s)

	return &testEnv{
		store:        s,
		pub:          pub,
		registry:     NewRegistryService(tournamentRepo, selectionRepo, pub, log),
		registration: NewRegistrationService(teamRepo, tournamentRepo, selectionRepo, pub, log),
		chat:         NewChatService(chatRepo, pub, log),
		session:      NewSessionService(sessionRepo, selectionRepo, pub, log),
	}
}
