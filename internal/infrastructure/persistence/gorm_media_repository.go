package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence/models"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormGalleryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormGalleryRepository creates a new GORM-based GalleryRepository implementation
func NewGormGalleryRepository(db *gorm.DB, logger logger.Logger) (media.GalleryRepository, error) {
	return &gormGalleryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormGalleryRepository) Create(ctx context.Context, image *media.GalleryImage) error {
	if err := image.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.GalleryImageModel{}
	model.FromDomain(image)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}

	r.logger.Info("created gallery image", "image_id", image.ID, "blob_name", image.BlobName)
	return nil
}

func (r *gormGalleryRepository) List(ctx context.Context, query *media.MediaQuery) ([]*media.GalleryImage, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.GalleryImageModel{})
	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}

	var modelList []*models.GalleryImageModel
	if err := applyPage(dbQuery, query.SortBy, "created_at", query.Page).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch gallery images: %w", err)
	}

	domainList := make([]*media.GalleryImage, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormGalleryRepository) GetByID(ctx context.Context, id string) (*media.GalleryImage, error) {
	var model models.GalleryImageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("gallery image %s: %w", id, media.ErrImageNotFound)
		}
		return nil, fmt.Errorf("failed to fetch gallery image: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormGalleryRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.GalleryImageModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete gallery image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("gallery image %s: %w", id, media.ErrImageNotFound)
	}

	r.logger.Info("deleted gallery image", "image_id", id)
	return nil
}

type gormResourceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormResourceRepository creates a new GORM-based ResourceRepository implementation
func NewGormResourceRepository(db *gorm.DB, logger logger.Logger) (media.ResourceRepository, error) {
	return &gormResourceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormResourceRepository) Create(ctx context.Context, resource *media.Resource) error {
	if err := resource.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ResourceModel{}
	model.FromDomain(resource)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	r.logger.Info("created resource", "resource_id", resource.ID, "blob_name", resource.BlobName)
	return nil
}

func (r *gormResourceRepository) List(ctx context.Context, query *media.MediaQuery) ([]*media.Resource, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ResourceModel{})
	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}

	var modelList []*models.ResourceModel
	if err := applyPage(dbQuery, query.SortBy, "created_at", query.Page).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch resources: %w", err)
	}

	domainList := make([]*media.Resource, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormResourceRepository) GetByID(ctx context.Context, id string) (*media.Resource, error) {
	var model models.ResourceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resource %s: %w", id, media.ErrResourceNotFound)
		}
		return nil, fmt.Errorf("failed to fetch resource: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormResourceRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ResourceModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("resource %s: %w", id, media.ErrResourceNotFound)
	}

	r.logger.Info("deleted resource", "resource_id", id)
	return nil
}
