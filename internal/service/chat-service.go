package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/logger"
	"github.com/burakmert236/matchday/common/models"
	matchdayerrors "github.com/burakmert236/matchday/internal/errors"
	"github.com/burakmert236/matchday/internal/repository"
)

type ChatService interface {
	PostMessage(ctx context.Context, teamId, text, sender string) (*models.ChatMessage, *apperrors.AppError)
	Messages(ctx context.Context, teamId string) ([]models.ChatMessage, *apperrors.AppError)
}

type chatService struct {
	chatRepo       repository.ChatRepository
	eventPublisher ChangePublisher
	logger         *logger.Logger
}

func NewChatService(
	chatRepo repository.ChatRepository,
	eventPublisher ChangePublisher,
	logger *logger.Logger,
) ChatService {
	return &chatService{
		chatRepo:       chatRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *chatService) PostMessage(ctx context.Context, teamId, text, sender string) (*models.ChatMessage, *apperrors.AppError) {
	if strings.TrimSpace(text) == "" {
		return nil, matchdayerrors.EmptyMessageError()
	}

	message := models.ChatMessage{
		Id:        uuid.New().String(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now().UTC(),
	}

	if err := s.chatRepo.Append(ctx, teamId, message); err != nil {
		return nil, err
	}

	s.logger.Debug("Message posted", "team_id", teamId, "message_id", message.Id)
	s.eventPublisher.PublishMessagesChanged(ctx, teamId)

	return &message, nil
}

func (s *chatService) Messages(ctx context.Context, teamId string) ([]models.ChatMessage, *apperrors.AppError) {
	return s.chatRepo.Messages(ctx, teamId)
}
