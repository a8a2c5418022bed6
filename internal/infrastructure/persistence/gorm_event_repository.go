package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence/models"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEventRepository creates a new GORM-based EventRepository implementation
func NewGormEventRepository(db *gorm.DB, logger logger.Logger) (events.EventRepository, error) {
	return &gormEventRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEventRepository) Create(ctx context.Context, event *events.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EventModel{}
	model.FromDomain(event)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	r.logger.Info("created event", "event_id", event.ID, "title", event.Title)
	return nil
}

func (r *gormEventRepository) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.EventModel{})

	if query.Upcoming {
		// an event is upcoming until it has ended; events without an end date until they start
		dbQuery = dbQuery.Where("(ends_at IS NOT NULL AND ends_at >= ?) OR (ends_at IS NULL AND starts_at >= ?)", query.Now, query.Now)
	}
	if query.IsTicketed != nil {
		dbQuery = dbQuery.Where("is_ticketed = ?", *query.IsTicketed)
	}

	sortBy := query.SortBy
	page := query.Page
	if sortBy == "" && query.Upcoming && page.SortOrder == "" {
		sortBy, page.SortOrder = "starts_at", "asc"
	}

	var modelList []*models.EventModel
	if err := applyPage(dbQuery, sortBy, "starts_at", page).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	domainList := make([]*events.Event, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormEventRepository) GetByID(ctx context.Context, id string) (*events.Event, error) {
	var model models.EventModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event %s: %w", id, events.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEventRepository) Update(ctx context.Context, event *events.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EventModel{}
	model.FromDomain(event)

	result := r.db.WithContext(ctx).Model(&models.EventModel{}).Where("id = ?", event.ID).Select("*").Omit("id", "created_at").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("event %s: %w", event.ID, events.ErrNotFound)
	}

	r.logger.Info("updated event", "event_id", event.ID)
	return nil
}

func (r *gormEventRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.EventModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("event %s: %w", id, events.ErrNotFound)
	}

	r.logger.Info("deleted event", "event_id", id)
	return nil
}
