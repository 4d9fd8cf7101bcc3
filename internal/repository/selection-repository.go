package repository

import (
	"context"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/models"
	"github.com/burakmert236/matchday/common/store"
	matchdayerrors "github.com/burakmert236/matchday/internal/errors"
)

// SelectionRepository holds the transient hand-off records one screen
// stashes for the next: the tournament being edited, the tournament a
// player is registering against, and the team whose chat is open.
// Stashes are cleared by the flow that consumes them, not on read.
type SelectionRepository interface {
	StashEditTournament(ctx context.Context, tournament models.Tournament) *apperrors.AppError
	EditTournament(ctx context.Context) (*models.Tournament, *apperrors.AppError)
	ClearEditTournament(ctx context.Context) *apperrors.AppError

	StashSelectedTournament(ctx context.Context, tournament models.Tournament) *apperrors.AppError
	SelectedTournament(ctx context.Context) (*models.Tournament, *apperrors.AppError)
	ClearSelectedTournament(ctx context.Context) *apperrors.AppError

	StashCurrentTeam(ctx context.Context, team models.Team) *apperrors.AppError
	CurrentTeam(ctx context.Context) (*models.Team, *apperrors.AppError)
}

type selectionRepo struct {
	store store.Store
}

func NewSelectionRepository(s store.Store) SelectionRepository {
	return &selectionRepo{store: s}
}

func (r *selectionRepo) StashEditTournament(ctx context.Context, tournament models.Tournament) *apperrors.AppError {
	return r.stash(ctx, store.KeyEditTournament, tournament)
}

func (r *selectionRepo) EditTournament(ctx context.Context) (*models.Tournament, *apperrors.AppError) {
	var tournament models.Tournament
	if appErr := r.load(ctx, store.KeyEditTournament, "tournament to edit", &tournament); appErr != nil {
		return nil, appErr
	}
	return &tournament, nil
}

func (r *selectionRepo) ClearEditTournament(ctx context.Context) *apperrors.AppError {
	return r.clear(ctx, store.KeyEditTournament)
}

func (r *selectionRepo) StashSelectedTournament(ctx context.Context, tournament models.Tournament) *apperrors.AppError {
	return r.stash(ctx, store.KeySelectedTournament, tournament)
}

func (r *selectionRepo) SelectedTournament(ctx context.Context) (*models.Tournament, *apperrors.AppError) {
	var tournament models.Tournament
	if appErr := r.load(ctx, store.KeySelectedTournament, "tournament", &tournament); appErr != nil {
		return nil, appErr
	}
	return &tournament, nil
}

func (r *selectionRepo) ClearSelectedTournament(ctx context.Context) *apperrors.AppError {
	return r.clear(ctx, store.KeySelectedTournament)
}

func (r *selectionRepo) StashCurrentTeam(ctx context.Context, team models.Team) *apperrors.AppError {
	return r.stash(ctx, store.KeyCurrentTeam, team)
}

func (r *selectionRepo) CurrentTeam(ctx context.Context) (*models.Team, *apperrors.AppError) {
	var team models.Team
	if appErr := r.load(ctx, store.KeyCurrentTeam, "team", &team); appErr != nil {
		return nil, appErr
	}
	return &team, nil
}

func (r *selectionRepo) stash(ctx context.Context, key string, value interface{}) *apperrors.AppError {
	if err := r.store.Set(ctx, key, value); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to stash "+key)
	}
	return nil
}

func (r *selectionRepo) load(ctx context.Context, key, kind string, dest interface{}) *apperrors.AppError {
	found, err := r.store.Get(ctx, key, dest)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load "+key)
	}
	if !found {
		return matchdayerrors.NoSelectionError(kind)
	}
	return nil
}

func (r *selectionRepo) clear(ctx context.Context, key string) *apperrors.AppError {
	if err := r.store.Remove(ctx, key); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to clear "+key)
	}
	return nil
}
