package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence/models"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormJobApplicationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormJobApplicationRepository creates a new GORM-based JobApplicationRepository implementation
func NewGormJobApplicationRepository(db *gorm.DB, logger logger.Logger) (careers.JobApplicationRepository, error) {
	return &gormJobApplicationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormJobApplicationRepository) Create(ctx context.Context, application *careers.JobApplication) error {
	if err := application.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.JobApplicationModel{}
	model.FromDomain(application)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create job application: %w", err)
	}

	r.logger.Info("created job application", "job_application_id", application.ID, "position", application.Position)
	return nil
}

func (r *gormJobApplicationRepository) List(ctx context.Context, query *careers.JobApplicationQuery) ([]*careers.JobApplication, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.JobApplicationModel{})

	if query.Position != "" {
		dbQuery = dbQuery.Where("position LIKE ?", "%"+query.Position+"%")
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	var modelList []*models.JobApplicationModel
	if err := applyPage(dbQuery, query.SortBy, "created_at", query.Page).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch job applications: %w", err)
	}

	domainList := make([]*careers.JobApplication, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormJobApplicationRepository) GetByID(ctx context.Context, id string) (*careers.JobApplication, error) {
	var model models.JobApplicationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job application %s: %w", id, careers.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch job application: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormJobApplicationRepository) Update(ctx context.Context, application *careers.JobApplication) error {
	if err := application.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.JobApplicationModel{}
	model.FromDomain(application)

	result := r.db.WithContext(ctx).Model(&models.JobApplicationModel{}).Where("id = ?", application.ID).Select("*").Omit("id", "created_at").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update job application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job application %s: %w", application.ID, careers.ErrNotFound)
	}

	r.logger.Info("updated job application", "job_application_id", application.ID, "status", application.Status)
	return nil
}

func (r *gormJobApplicationRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.JobApplicationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job application %s: %w", id, careers.ErrNotFound)
	}

	r.logger.Info("deleted job application", "job_application_id", id)
	return nil
}
