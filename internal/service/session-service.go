package service

import (
	"context"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/logger"
	"github.com/burakmert236/matchday/common/models"
	"github.com/burakmert236/matchday/common/store"
	matchdayerrors "github.com/burakmert236/matchday/internal/errors"
	"github.com/burakmert236/matchday/internal/repository"
)

// SessionService manages the organizer/player presence records and the
// transient screen-to-screen selections. There is no real
// authentication: signing in just writes the profile record whose
// presence gates access.
type SessionService interface {
	SignUpOrganizer(ctx context.Context, name, email, password, confirmPassword string) *apperrors.AppError
	SignInOrganizer(ctx context.Context, name, email string) *apperrors.AppError
	CurrentOrganizer(ctx context.Context) (*models.Organizer, *apperrors.AppError)
	SignOutOrganizer(ctx context.Context) *apperrors.AppError

	SignUpPlayer(ctx context.Context, name, email, password, confirmPassword string) *apperrors.AppError
	SignInPlayer(ctx context.Context, name, email string) *apperrors.AppError
	CurrentPlayer(ctx context.Context) (*models.PlayerProfile, *apperrors.AppError)
	SignOutPlayer(ctx context.Context) *apperrors.AppError

	StashEditTournament(ctx context.Context, tournament models.Tournament) *apperrors.AppError
	EditTournament(ctx context.Context) (*models.Tournament, *apperrors.AppError)

	SelectTournament(ctx context.Context, tournament models.Tournament) *apperrors.AppError
	SelectedTournament(ctx context.Context) (*models.Tournament, *apperrors.AppError)

	OpenTeamChat(ctx context.Context, team models.Team) *apperrors.AppError
	CurrentTeam(ctx context.Context) (*models.Team, *apperrors.AppError)
}

type sessionService struct {
	sessionRepo    repository.SessionRepository
	selectionRepo  repository.SelectionRepository
	eventPublisher ChangePublisher
	logger         *logger.Logger
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	selectionRepo repository.SelectionRepository,
	eventPublisher ChangePublisher,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		selectionRepo:  selectionRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *sessionService) SignUpOrganizer(ctx context.Context, name, email, password, confirmPassword string) *apperrors.AppError {
	if password != confirmPassword {
		return matchdayerrors.PasswordMismatchError()
	}
	return s.SignInOrganizer(ctx, name, email)
}

func (s *sessionService) SignInOrganizer(ctx context.Context, name, email string) *apperrors.AppError {
	if err := s.sessionRepo.SaveOrganizer(ctx, models.Organizer{Name: name, Email: email}); err != nil {
		return err
	}

	s.logger.Info("Organizer signed in", "email", email)
	s.eventPublisher.PublishSessionsChanged(ctx, store.KeyOrganizer)

	return nil
}

func (s *sessionService) CurrentOrganizer(ctx context.Context) (*models.Organizer, *apperrors.AppError) {
	return s.sessionRepo.Organizer(ctx)
}

func (s *sessionService) SignOutOrganizer(ctx context.Context) *apperrors.AppError {
	if err := s.sessionRepo.ClearOrganizer(ctx); err != nil {
		return err
	}

	s.logger.Info("Organizer signed out")
	s.eventPublisher.PublishSessionsChanged(ctx, store.KeyOrganizer)

	return nil
}

func (s *sessionService) SignUpPlayer(ctx context.Context, name, email, password, confirmPassword string) *apperrors.AppError {
	if password != confirmPassword {
		return matchdayerrors.PasswordMismatchError()
	}
	return s.SignInPlayer(ctx, name, email)
}

func (s *sessionService) SignInPlayer(ctx context.Context, name, email string) *apperrors.AppError {
	if err := s.sessionRepo.SavePlayer(ctx, models.PlayerProfile{Name: name, Email: email}); err != nil {
		return err
	}

	s.logger.Info("Player signed in", "email", email)
	s.eventPublisher.PublishSessionsChanged(ctx, store.KeyPlayer)

	return nil
}

func (s *sessionService) CurrentPlayer(ctx context.Context) (*models.PlayerProfile, *apperrors.AppError) {
	return s.sessionRepo.Player(ctx)
}

func (s *sessionService) SignOutPlayer(ctx context.Context) *apperrors.AppError {
	if err := s.sessionRepo.ClearPlayer(ctx); err != nil {
		return err
	}

	s.logger.Info("Player signed out")
	s.eventPublisher.PublishSessionsChanged(ctx, store.KeyPlayer)

	return nil
}

func (s *sessionService) StashEditTournament(ctx context.Context, tournament models.Tournament) *apperrors.AppError {
	return s.selectionRepo.StashEditTournament(ctx, tournament)
}

func (s *sessionService) EditTournament(ctx context.Context) (*models.Tournament, *apperrors.AppError) {
	return s.selectionRepo.EditTournament(ctx)
}

func (s *sessionService) SelectTournament(ctx context.Context, tournament models.Tournament) *apperrors.AppError {
	return s.selectionRepo.StashSelectedTournament(ctx, tournament)
}

func (s *sessionService) SelectedTournament(ctx context.Context) (*models.Tournament, *apperrors.AppError) {
	return s.selectionRepo.SelectedTournament(ctx)
}

func (s *sessionService) OpenTeamChat(ctx context.Context, team models.Team) *apperrors.AppError {
	return s.selectionRepo.StashCurrentTeam(ctx, team)
}

func (s *sessionService) CurrentTeam(ctx context.Context) (*models.Team, *apperrors.AppError) {
	return s.selectionRepo.CurrentTeam(ctx)
}
