package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/logger"
	"github.com/burakmert236/matchday/common/models"
	matchdayerrors "github.com/burakmert236/matchday/internal/errors"
	"github.com/burakmert236/matchday/internal/repository"
)

// TeamDraft carries the player-entered registration form. Players with
// blank names are empty form slots and are dropped on save; nothing
// else is validated at this layer.
type TeamDraft struct {
	Name    string
	Captain string
	Phone   string
	Email   string
	Players []models.Player
}

type RegistrationService interface {
	RegisterTeam(ctx context.Context, tournamentId string, draft TeamDraft) (*models.Team, *apperrors.AppError)
	SetRegistrationStatus(ctx context.Context, tournamentId, teamId string, status models.RegistrationStatus) *apperrors.AppError
	MyTeams(ctx context.Context) ([]models.Team, *apperrors.AppError)
}

type registrationService struct {
	teamRepo       repository.TeamRepository
	tournamentRepo repository.TournamentRepository
	selectionRepo  repository.SelectionRepository
	eventPublisher ChangePublisher
	logger         *logger.Logger
}

func NewRegistrationService(
	teamRepo repository.TeamRepository,
	tournamentRepo repository.TournamentRepository,
	selectionRepo repository.SelectionRepository,
	eventPublisher ChangePublisher,
	logger *logger.Logger,
) RegistrationService {
	return &registrationService{
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		selectionRepo:  selectionRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *registrationService) RegisterTeam(ctx context.Context, tournamentId string, draft TeamDraft) (*models.Team, *apperrors.AppError) {
	tournament, err := s.tournamentRepo.GetById(ctx, tournamentId)
	if err != nil {
		return nil, err
	}

	team := models.Team{
		Id:             uuid.New().String(),
		Name:           draft.Name,
		Captain:        draft.Captain,
		Phone:          draft.Phone,
		Email:          draft.Email,
		Players:        namedPlayers(draft.Players),
		PaymentStatus:  models.PaymentPending,
		TournamentId:   tournament.Id,
		TournamentName: tournament.Name,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.teamRepo.AppendToTournament(ctx, tournamentId, team); err != nil {
		return nil, err
	}

	// Registering consumes the player's tournament selection.
	if err := s.selectionRepo.ClearSelectedTournament(ctx); err != nil {
		s.logger.Warn("Failed to clear tournament selection", "tournament_id", tournamentId, "error", err)
	}

	s.logger.Info("Team registered",
		"team_id", team.Id,
		"team", team.Name,
		"tournament_id", tournamentId,
		"players", len(team.Players),
	)
	s.eventPublisher.PublishTournamentsChanged(ctx)
	s.eventPublisher.PublishTeamsChanged(ctx)

	return &team, nil
}

// SetRegistrationStatus decides a pending registration. Decisions are
// terminal: reapplying the current status is a no-op, switching a
// decided registration is a conflict.
func (s *registrationService) SetRegistrationStatus(ctx context.Context, tournamentId, teamId string, status models.RegistrationStatus) *apperrors.AppError {
	if !status.Decided() {
		return matchdayerrors.InvalidRegistrationStatusError(status)
	}

	team, err := s.teamRepo.GetRegistered(ctx, tournamentId, teamId)
	if err != nil {
		return err
	}

	if team.RegistrationStatus == status {
		return nil
	}
	if team.RegistrationStatus.Decided() {
		return matchdayerrors.RegistrationDecidedError(team.RegistrationStatus)
	}

	if err := s.teamRepo.SetRegistrationStatus(ctx, tournamentId, teamId, status); err != nil {
		return err
	}

	s.logger.Info("Registration decided",
		"team_id", teamId,
		"tournament_id", tournamentId,
		"status", string(status),
	)
	s.eventPublisher.PublishTournamentsChanged(ctx)
	s.eventPublisher.PublishTeamsChanged(ctx)

	return nil
}

func (s *registrationService) MyTeams(ctx context.Context) ([]models.Team, *apperrors.AppError) {
	return s.teamRepo.ListMine(ctx)
}

func namedPlayers(players []models.Player) []models.Player {
	named := make([]models.Player, 0, len(players))
	for _, p := range players {
		if p.Name != "" {
			named = append(named, p)
		}
	}
	return named
}
