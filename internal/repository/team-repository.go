package repository

import (
	"context"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/models"
	"github.com/burakmert236/matchday/common/store"
	matchdayerrors "github.com/burakmert236/matchday/internal/errors"
)

// TeamRepository owns the dual-collection mirroring contract: every team
// lives embedded in its tournament AND as a flat record in `myTeams`.
// Both writes happen in one place, through a single multi-key store
// write, so no other code path can let the two copies drift.
type TeamRepository interface {
	ListMine(ctx context.Context) ([]models.Team, *apperrors.AppError)
	AppendToTournament(ctx context.Context, tournamentId string, team models.Team) *apperrors.AppError
	GetRegistered(ctx context.Context, tournamentId, teamId string) (*models.Team, *apperrors.AppError)
	SetRegistrationStatus(ctx context.Context, tournamentId, teamId string, status models.RegistrationStatus) *apperrors.AppError
}

type teamRepo struct {
	store store.Store
}

func NewTeamRepository(s store.Store) TeamRepository {
	return &teamRepo{store: s}
}

func (r *teamRepo) ListMine(ctx context.Context) ([]models.Team, *apperrors.AppError) {
	var teams []models.Team
	found, err := r.store.Get(ctx, store.KeyMyTeams, &teams)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load my teams")
	}
	if !found {
		return []models.Team{}, nil
	}
	return teams, nil
}

func (r *teamRepo) AppendToTournament(ctx context.Context, tournamentId string, team models.Team) *apperrors.AppError {
	tournaments, appErr := r.loadTournaments(ctx)
	if appErr != nil {
		return appErr
	}

	target := -1
	for i := range tournaments {
		if tournaments[i].Id == tournamentId {
			target = i
			break
		}
	}
	if target < 0 {
		return matchdayerrors.TournamentNotFoundError(tournamentId)
	}

	tournaments[target].Teams = append(tournaments[target].Teams, team)
	tournaments[target].SyncTeamCount()

	mine, appErr := r.ListMine(ctx)
	if appErr != nil {
		return appErr
	}
	mine = append(mine, team)

	return r.writeBoth(ctx, tournaments, mine)
}

func (r *teamRepo) GetRegistered(ctx context.Context, tournamentId, teamId string) (*models.Team, *apperrors.AppError) {
	tournaments, appErr := r.loadTournaments(ctx)
	if appErr != nil {
		return nil, appErr
	}

	for i := range tournaments {
		if tournaments[i].Id != tournamentId {
			continue
		}
		if team := tournaments[i].TeamById(teamId); team != nil {
			return team, nil
		}
		return nil, matchdayerrors.TeamNotFoundError(teamId)
	}

	return nil, matchdayerrors.TournamentNotFoundError(tournamentId)
}

func (r *teamRepo) SetRegistrationStatus(ctx context.Context, tournamentId, teamId string, status models.RegistrationStatus) *apperrors.AppError {
	tournaments, appErr := r.loadTournaments(ctx)
	if appErr != nil {
		return appErr
	}

	updated := false
	for i := range tournaments {
		if tournaments[i].Id != tournamentId {
			continue
		}
		if team := tournaments[i].TeamById(teamId); team != nil {
			team.RegistrationStatus = status
			updated = true
		}
		break
	}
	if !updated {
		return matchdayerrors.TeamNotFoundError(teamId)
	}

	// The mirror is matched on team id alone. Team ids are uuids, so a
	// collision across tournaments cannot occur.
	mine, appErr := r.ListMine(ctx)
	if appErr != nil {
		return appErr
	}
	for i := range mine {
		if mine[i].Id == teamId {
			mine[i].RegistrationStatus = status
		}
	}

	return r.writeBoth(ctx, tournaments, mine)
}

func (r *teamRepo) loadTournaments(ctx context.Context) ([]models.Tournament, *apperrors.AppError) {
	var tournaments []models.Tournament
	found, err := r.store.Get(ctx, store.KeyTournaments, &tournaments)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load tournaments")
	}
	if !found {
		return []models.Tournament{}, nil
	}
	return tournaments, nil
}

// writeBoth overwrites the tournaments collection and the myTeams mirror
// as one logical write, tournaments first.
func (r *teamRepo) writeBoth(ctx context.Context, tournaments []models.Tournament, mine []models.Team) *apperrors.AppError {
	err := r.store.SetMulti(ctx, []store.Entry{
		{Key: store.KeyTournaments, Value: tournaments},
		{Key: store.KeyMyTeams, Value: mine},
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to save team collections")
	}
	return nil
}
