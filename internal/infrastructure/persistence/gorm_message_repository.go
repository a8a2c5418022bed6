package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence/models"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"gorm.io/gorm"
)

type gormMessageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMessageRepository creates a new GORM-based MessageRepository implementation
func NewGormMessageRepository(db *gorm.DB, logger logger.Logger) (messages.MessageRepository, error) {
	return &gormMessageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMessageRepository) Create(ctx context.Context, message *messages.Message) error {
	if err := message.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MessageModel{}
	model.FromDomain(message)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	r.logger.Info("created message", "message_id", message.ID)
	return nil
}

func (r *gormMessageRepository) List(ctx context.Context, query *messages.MessageQuery) ([]*messages.Message, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.MessageModel{})
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	var modelList []*models.MessageModel
	if err := applyPage(dbQuery, query.SortBy, "created_at", query.Page).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	domainList := make([]*messages.Message, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormMessageRepository) GetByID(ctx context.Context, id string) (*messages.Message, error) {
	var model models.MessageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("message %s: %w", id, messages.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMessageRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if !messages.IsValidStatus(status) {
		return validators.Invalidf("unknown message status '%s'", status)
	}

	result := r.db.WithContext(ctx).Model(&models.MessageModel{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("message %s: %w", id, messages.ErrNotFound)
	}

	r.logger.Info("updated message status", "message_id", id, "status", status)
	return nil
}

func (r *gormMessageRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MessageModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("message %s: %w", id, messages.ErrNotFound)
	}

	r.logger.Info("deleted message", "message_id", id)
	return nil
}
