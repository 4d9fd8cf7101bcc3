package repository

import (
	"context"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/models"
	"github.com/burakmert236/matchday/common/store"
	matchdayerrors "github.com/burakmert236/matchday/internal/errors"
)

// TournamentRepository exposes per-record operations over the
// `tournaments` collection. The whole collection is serialized back to
// the store on every mutation; record-level granularity exists only in
// this API, not in the persisted layout.
type TournamentRepository interface {
	List(ctx context.Context) ([]models.Tournament, *apperrors.AppError)
	GetById(ctx context.Context, tournamentId string) (*models.Tournament, *apperrors.AppError)
	Upsert(ctx context.Context, tournament *models.Tournament) *apperrors.AppError
	Remove(ctx context.Context, tournamentId string) *apperrors.AppError
}

type tournamentRepo struct {
	store store.Store
}

func NewTournamentRepository(s store.Store) TournamentRepository {
	return &tournamentRepo{store: s}
}

func (r *tournamentRepo) List(ctx context.Context) ([]models.Tournament, *apperrors.AppError) {
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

func (r *tournamentRepo) GetById(ctx context.Context, tournamentId string) (*models.Tournament, *apperrors.AppError) {
	tournaments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tournaments {
		if tournaments[i].Id == tournamentId {
			return &tournaments[i], nil
		}
	}

	return nil, matchdayerrors.TournamentNotFoundError(tournamentId)
}

func (r *tournamentRepo) Upsert(ctx context.Context, tournament *models.Tournament) *apperrors.AppError {
	tournament.SyncTeamCount()

	tournaments, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range tournaments {
		if tournaments[i].Id == tournament.Id {
			tournaments[i] = *tournament
			replaced = true
			break
		}
	}
	if !replaced {
		tournaments = append(tournaments, *tournament)
	}

	if err := r.store.Set(ctx, store.KeyTournaments, tournaments); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to save tournaments")
	}

	return nil
}

func (r *tournamentRepo) Remove(ctx context.Context, tournamentId string) *apperrors.AppError {
	tournaments, err := r.List(ctx)
	if err != nil {
		return err
	}

	remaining := make([]models.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if t.Id != tournamentId {
			remaining = append(remaining, t)
		}
	}

	if len(remaining) == len(tournaments) {
		return matchdayerrors.TournamentNotFoundError(tournamentId)
	}

	if err := r.store.Set(ctx, store.KeyTournaments, remaining); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to save tournaments")
	}

	return nil
}
