package repository

import (
	"context"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/models"
	"github.com/burakmert236/matchday/common/store"
)

// ChatRepository keeps one append-only message log per team id.
type ChatRepository interface {
	Messages(ctx context.Context, teamId string) ([]models.ChatMessage, *apperrors.AppError)
	Append(ctx context.Context, teamId string, message models.ChatMessage) *apperrors.AppError
}

type chatRepo struct {
	store store.Store
}

func NewChatRepository(s store.Store) ChatRepository {
	return &chatRepo{store: s}
}

func (r *chatRepo) Messages(ctx context.Context, teamId string) ([]models.ChatMessage, *apperrors.AppError) {
	var messages []models.ChatMessage
	found, err := r.store.Get(ctx, store.TeamMessagesKey(teamId), &messages)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to load team messages")
	}
	if !found {
		return []models.ChatMessage{}, nil
	}
	return messages, nil
}

func (r *chatRepo) Append(ctx context.Context, teamId string, message models.ChatMessage) *apperrors.AppError {
	messages, appErr := r.Messages(ctx, teamId)
	if appErr != nil {
		return appErr
	}

	messages = append(messages, message)

	if err := r.store.Set(ctx, store.TeamMessagesKey(teamId), messages); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to save team messages")
	}

	return nil
}
