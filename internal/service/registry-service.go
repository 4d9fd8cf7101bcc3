package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/logger"
	"github.com/burakmert236/matchday/common/models"
	"github.com/burakmert236/matchday/internal/repository"
)

// TournamentDraft carries the organizer-editable fields of a
// tournament. Identity, lifecycle and registration state are owned by
// the registry and never come from a form.
type TournamentDraft struct {
	Name          string
	OrganizerName string
	Phone         string
	Email         string
	BannerUrl     string

	Venue          string
	VenueType      string
	GoogleMapsLink string

	StartDate            string
	EndDate              string
	RegistrationDeadline string

	TournamentType string
	GameLevel      string
	AgeGroup       string
	GenderCategory string

	MaxTeams          int
	MinPlayersPerTeam int
	MaxPlayersPerTeam int

	PrizePool     string
	RunnerUpPrize string
	EntryFee      string
	QrCodeUrl     string

	Rules       string
	RefereeInfo string

	SponsorshipAvailable bool
	LiveUpdates          bool
	TeamChat             bool
}

type RegistryService interface {
	CreateTournament(ctx context.Context, draft TournamentDraft) (*models.Tournament, *apperrors.AppError)
	UpdateTournament(ctx context.Context, tournamentId string, draft TournamentDraft) (*models.Tournament, *apperrors.AppError)
	DeleteTournament(ctx context.Context, tournamentId string) *apperrors.AppError
	ListTournaments(ctx context.Context) ([]models.Tournament, *apperrors.AppError)
	OpenTournaments(ctx context.Context) ([]models.Tournament, *apperrors.AppError)
	GetTournament(ctx context.Context, tournamentId string) (*models.Tournament, *apperrors.AppError)
}

type registryService struct {
	tournamentRepo repository.TournamentRepository
	selectionRepo  repository.SelectionRepository
	eventPublisher ChangePublisher
	logger         *logger.Logger
}

func NewRegistryService(
	tournamentRepo repository.TournamentRepository,
	selectionRepo repository.SelectionRepository,
	eventPublisher ChangePublisher,
	logger *logger.Logger,
) RegistryService {
	return &registryService{
		tournamentRepo: tournamentRepo,
		selectionRepo:  selectionRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *registryService) CreateTournament(ctx context.Context, draft TournamentDraft) (*models.Tournament, *apperrors.AppError) {
	tournament := &models.Tournament{
		Id:              uuid.New().String(),
		Status:          models.StatusOpen,
		RegisteredTeams: 0,
		Teams:           []models.Team{},
		CreatedAt:       time.Now().UTC(),
	}
	applyDraft(tournament, draft)

	if err := s.tournamentRepo.Upsert(ctx, tournament); err != nil {
		return nil, err
	}

	s.logger.Info("Tournament created", "tournament_id", tournament.Id, "name", tournament.Name)
	s.eventPublisher.PublishTournamentsChanged(ctx)

	return tournament, nil
}

// UpdateTournament replaces the editable fields of an existing record.
// Embedded teams, the derived counter and the lifecycle status are
// always carried forward from the stored record.
func (s *registryService) UpdateTournament(ctx context.Context, tournamentId string, draft TournamentDraft) (*models.Tournament, *apperrors.AppError) {
	tournament, err := s.tournamentRepo.GetById(ctx, tournamentId)
	if err != nil {
		return nil, err
	}

	applyDraft(tournament, draft)
	tournament.UpdatedAt = time.Now().UTC()

	if err := s.tournamentRepo.Upsert(ctx, tournament); err != nil {
		return nil, err
	}

	// The edit flow stashes the record under editTournament before the
	// form opens; saving consumes the stash.
	if err := s.selectionRepo.ClearEditTournament(ctx); err != nil {
		s.logger.Warn("Failed to clear edit selection", "tournament_id", tournamentId, "error", err)
	}

	s.logger.Info("Tournament updated", "tournament_id", tournamentId)
	s.eventPublisher.PublishTournamentsChanged(ctx)

	return tournament, nil
}

// DeleteTournament removes the record outright. Associated myTeams
// entries and chat logs are left behind; orphaned relations are
// accepted.
func (s *registryService) DeleteTournament(ctx context.Context, tournamentId string) *apperrors.AppError {
	if err := s.tournamentRepo.Remove(ctx, tournamentId); err != nil {
		return err
	}

	s.logger.Info("Tournament deleted", "tournament_id", tournamentId)
	s.eventPublisher.PublishTournamentsChanged(ctx)

	return nil
}

func (s *registryService) ListTournaments(ctx context.Context) ([]models.Tournament, *apperrors.AppError) {
	return s.tournamentRepo.List(ctx)
}

// OpenTournaments is the player-facing listing: only tournaments still
// accepting registrations.
func (s *registryService) OpenTournaments(ctx context.Context) ([]models.Tournament, *apperrors.AppError) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	open := make([]models.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if t.Status == models.StatusOpen {
			open = append(open, t)
		}
	}

	return open, nil
}

func (s *registryService) GetTournament(ctx context.Context, tournamentId string) (*models.Tournament, *apperrors.AppError) {
	return s.tournamentRepo.GetById(ctx, tournamentId)
}

func applyDraft(tournament *models.Tournament, draft TournamentDraft) {
	tournament.Name = draft.Name
	tournament.OrganizerName = draft.OrganizerName
	tournament.Phone = draft.Phone
	tournament.Email = draft.Email
	tournament.BannerUrl = draft.BannerUrl
	tournament.Venue = draft.Venue
	tournament.VenueType = draft.VenueType
	tournament.GoogleMapsLink = draft.GoogleMapsLink
	tournament.StartDate = draft.StartDate
	tournament.EndDate = draft.EndDate
	tournament.RegistrationDeadline = draft.RegistrationDeadline
	tournament.TournamentType = draft.TournamentType
	tournament.GameLevel = draft.GameLevel
	tournament.AgeGroup = draft.AgeGroup
	tournament.GenderCategory = draft.GenderCategory
	tournament.MaxTeams = draft.MaxTeams
	tournament.MinPlayersPerTeam = draft.MinPlayersPerTeam
	tournament.MaxPlayersPerTeam = draft.MaxPlayersPerTeam
	tournament.PrizePool = draft.PrizePool
	tournament.RunnerUpPrize = draft.RunnerUpPrize
	tournament.EntryFee = draft.EntryFee
	tournament.QrCodeUrl = draft.QrCodeUrl
	tournament.Rules = draft.Rules
	tournament.RefereeInfo = draft.RefereeInfo
	tournament.SponsorshipAvailable = draft.SponsorshipAvailable
	tournament.LiveUpdates = draft.LiveUpdates
	tournament.TeamChat = draft.TeamChat
}
