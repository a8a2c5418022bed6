package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence/models"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTicketRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTicketRepository creates a new GORM-based TicketRepository implementation
func NewGormTicketRepository(db *gorm.DB, logger logger.Logger) (events.TicketRepository, error) {
	return &gormTicketRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTicketRepository) Create(ctx context.Context, ticket *events.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TicketModel{}
	model.FromDomain(ticket)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	r.logger.Info("created ticket", "ticket_id", ticket.ID, "event_id", ticket.EventID, "merchant_reference", ticket.MerchantReference)
	return nil
}

func (r *gormTicketRepository) List(ctx context.Context, query *events.TicketQuery) ([]*events.Ticket, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.TicketModel{})

	if query.EventID != "" {
		dbQuery = dbQuery.Where("event_id = ?", query.EventID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.BuyerEmail != "" {
		dbQuery = dbQuery.Where("buyer_email = ?", query.BuyerEmail)
	}

	var modelList []*models.TicketModel
	if err := applyPage(dbQuery, query.SortBy, "created_at", query.Page).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tickets: %w", err)
	}

	domainList := make([]*events.Ticket, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTicketRepository) GetByID(ctx context.Context, id string) (*events.Ticket, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormTicketRepository) GetByOrderTrackingID(ctx context.Context, orderTrackingID string) (*events.Ticket, error) {
	return r.first(ctx, "order_tracking_id = ?", orderTrackingID)
}

func (r *gormTicketRepository) GetByMerchantReference(ctx context.Context, merchantReference string) (*events.Ticket, error) {
	return r.first(ctx, "merchant_reference = ?", merchantReference)
}

func (r *gormTicketRepository) first(ctx context.Context, condition string, value string) (*events.Ticket, error) {
	if value == "" {
		return nil, events.ErrTicketNotFound
	}

	var model models.TicketModel
	if err := r.db.WithContext(ctx).Where(condition, value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ticket %s: %w", value, events.ErrTicketNotFound)
		}
		return nil, fmt.Errorf("failed to fetch ticket: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTicketRepository) CountReserved(ctx context.Context, eventID string) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("event_id = ? AND status IN ?", eventID, []string{payments.StatusPending, payments.StatusCompleted}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count reserved tickets: %w", err)
	}
	return int(total), nil
}

func (r *gormTicketRepository) UpdatePayment(ctx context.Context, id string, update payments.PaymentUpdate) error {
	columns := paymentColumns("status", update)
	columns["updated_at"] = time.Now().UTC()

	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket %s: %w", id, events.ErrTicketNotFound)
	}

	r.logger.Info("updated ticket payment", "ticket_id", id, "status", update.Status)
	return nil
}
