package app

import (
	"context"
	"fmt"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/hillcrest-schools/school-portal/internal/pkg/sanitize"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/google/uuid"
)

// messageService implements the MessageService interface
type messageService struct {
	repository messages.MessageRepository
	logger     logger.Logger
}

// NewMessageService creates a new instance of MessageService
func NewMessageService(repository messages.MessageRepository, logger logger.Logger) (messages.MessageService, error) {
	return &messageService{
		repository: repository,
		logger:     logger,
	}, nil
}

// Create strips markup from the message and stores it as unread
func (s *messageService) Create(ctx context.Context, message *messages.Message) (*messages.Message, error) {
	if message == nil {
		return nil, validators.Invalidf("message is required")
	}

	sanitize.Fields(&message.Name, &message.Subject, &message.Body)
	message.ID = uuid.NewString()
	message.Status = messages.StatusUnread
	message.CreatedAt = time.Now().UTC()

	if err := message.Validate(); err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	s.logger.Info("Contact message received", "message_id", message.ID)
	return message, nil
}

// List retrieves messages considering a query filter when set
func (s *messageService) List(ctx context.Context, query *messages.MessageQuery) ([]*messages.Message, error) {
	if query == nil {
		query = messages.NewMessageQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := s.repository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return list, nil
}

// UpdateStatus marks a message read, unread or archived
func (s *messageService) UpdateStatus(ctx context.Context, id, status string) (*messages.Message, error) {
	if !messages.IsValidStatus(status) {
		return nil, validators.Invalidf("unknown message status %q", status)
	}

	if err := s.repository.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update message %s: %w", id, err)
	}

	message, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", id, err)
	}
	return message, nil
}

// DeleteByID deletes a message by ID
func (s *messageService) DeleteByID(ctx context.Context, id string) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete message %s: %w", id, err)
	}
	s.logger.Info("Contact message deleted", "message_id", id)
	return nil
}
