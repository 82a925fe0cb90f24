package services

import (
	"context"

	"myHomeBack/internal/models"
	"myHomeBack/internal/repositories"
)

type MessageService struct {
	MessageRepo *repositories.MessageRepository
}

func (s *MessageService) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	return s.MessageRepo.CreateMessage(ctx, message)
}

func (s *MessageService) GetMessagesForChat(ctx context.Context, chatID, page, pageSize int) ([]models.Message, error) {
	return s.MessageRepo.GetMessagesForChat(ctx, chatID, page, pageSize)
}

func (s *MessageService) DeleteMessage(ctx context.Context, id int) error {
	return s.MessageRepo.DeleteMessage(ctx, id)
}
