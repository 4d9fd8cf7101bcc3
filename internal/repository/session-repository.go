package repository

import (
	"context"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/models"
	"github.com/burakmert236/matchday/common/store"
	matchdayerrors "github.com/burakmert236/matchday/internal/errors"
)

// SessionRepository stores the organizer/player presence records. These
// are local flags, not credentials: a stored record is what grants tab
// access.
type SessionRepository interface {
	SaveOrganizer(ctx context.Context, organizer models.Organizer) *apperrors.AppError
	Organizer(ctx context.Context) (*models.Organizer, *apperrors.AppError)
	ClearOrganizer(ctx context.Context) *apperrors.AppError

	SavePlayer(ctx context.Context, player models.PlayerProfile) *apperrors.AppError
	Player(ctx context.Context) (*models.PlayerProfile, *apperrors.AppError)
	ClearPlayer(ctx context.Context) *apperrors.AppError
}

type sessionRepo struct {
	store store.Store
}

func NewSessionRepository(s store.Store) SessionRepository {
	return &sessionRepo{store: s}
}

func (r *sessionRepo) SaveOrganizer(ctx context.Context, organizer models.Organizer) *apperrors.AppError {
	if err := r.store.Set(ctx, store.KeyOrganizer, organizer); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to save organizer session")
	}
	return nil
}

func (r *sessionRepo) Organizer(ctx context.Context) (*models.Organizer, *apperrors.AppError) {
	var organizer models.Organizer
	found, err := r.store.Get(ctx, store.KeyOrganizer, &organizer)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load organizer session")
	}
	if !found {
		return nil, matchdayerrors.NoSessionError("organizer")
	}
	return &organizer, nil
}

func (r *sessionRepo) ClearOrganizer(ctx context.Context) *apperrors.AppError {
	if err := r.store.Remove(ctx, store.KeyOrganizer); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to clear organizer session")
	}
	return nil
}

func (r *sessionRepo) SavePlayer(ctx context.Context, player models.PlayerProfile) *apperrors.AppError {
	if err := r.store.Set(ctx, store.KeyPlayer, player); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to save player session")
	}
	return nil
}

func (r *sessionRepo) Player(ctx context.Context) (*models.PlayerProfile, *apperrors.AppError) {
	var player models.PlayerProfile
	found, err := r.store.Get(ctx, store.KeyPlayer, &player)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load player session")
	}
	if !found {
		return nil, matchdayerrors.NoSessionError("player")
	}
	return &player, nil
}

func (r *sessionRepo) ClearPlayer(ctx context.Context) *apperrors.AppError {
	if err := r.store.Remove(ctx, store.KeyPlayer); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to clear player session")
	}
	return nil
}
