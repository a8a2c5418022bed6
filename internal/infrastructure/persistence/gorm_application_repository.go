package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence/models"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"gorm.io/gorm"
)

type gormApplicationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormApplicationRepository creates a new GORM-based ApplicationRepository implementation
func NewGormApplicationRepository(db *gorm.DB, logger logger.Logger) (admissions.ApplicationRepository, error) {
	return &gormApplicationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormApplicationRepository) Create(ctx context.Context, application *admissions.Application) error {
	if err := application.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ApplicationModel{}
	model.FromDomain(application)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	r.logger.Info("created application", "application_id", application.ID)
	return nil
}

func (r *gormApplicationRepository) List(ctx context.Context, query *admissions.ApplicationQuery) ([]*admissions.Application, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ApplicationModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.PaymentStatus != "" {
		dbQuery = dbQuery.Where("payment_status = ?", query.PaymentStatus)
	}
	if query.Campus != "" {
		dbQuery = dbQuery.Where("campus = ?", query.Campus)
	}
	if query.Grade != "" {
		dbQuery = dbQuery.Where("grade_applying_for = ?", query.Grade)
	}

	var modelList []*models.ApplicationModel
	if err := applyPage(dbQuery, query.SortBy, "created_at", query.Page).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	domainList := make([]*admissions.Application, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormApplicationRepository) GetByID(ctx context.Context, id string) (*admissions.Application, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormApplicationRepository) GetByOrderTrackingID(ctx context.Context, orderTrackingID string) (*admissions.Application, error) {
	return r.first(ctx, "order_tracking_id = ?", orderTrackingID)
}

func (r *gormApplicationRepository) GetByMerchantReference(ctx context.Context, merchantReference string) (*admissions.Application, error) {
	return r.first(ctx, "merchant_reference = ?", merchantReference)
}

func (r *gormApplicationRepository) first(ctx context.Context, condition string, value string) (*admissions.Application, error) {
	if value == "" {
		return nil, admissions.ErrNotFound
	}

	var model models.ApplicationModel
	if err := r.db.WithContext(ctx).Where(condition, value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application %s: %w", value, admissions.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormApplicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if !admissions.IsValidStatus(status) {
		return validators.Invalidf("unknown application status '%s'", status)
	}

	result := r.db.WithContext(ctx).Model(&models.ApplicationModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application %s: %w", id, admissions.ErrNotFound)
	}

	r.logger.Info("updated application status", "application_id", id, "status", status)
	return nil
}

func (r *gormApplicationRepository) UpdatePayment(ctx context.Context, id string, update payments.PaymentUpdate) error {
	columns := paymentColumns("payment_status", update)
	columns["updated_at"] = time.Now().UTC()

	result := r.db.WithContext(ctx).Model(&models.ApplicationModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to update application payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application %s: %w", id, admissions.ErrNotFound)
	}

	r.logger.Info("updated application payment", "application_id", id, "payment_status", update.Status)
	return nil
}

func (r *gormApplicationRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ApplicationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application %s: %w", id, admissions.ErrNotFound)
	}

	r.logger.Info("deleted application", "application_id", id)
	return nil
}
