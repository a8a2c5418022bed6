package app

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/pkg/httputil"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/hillcrest-schools/school-portal/internal/pkg/sanitize"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/google/uuid"
)

// Multipart fields carrying the uploaded media
const (
	ImageFormField    = "image"
	ResourceFormField = "file"
)

// galleryService implements the GalleryService interface
type galleryService struct {
	repository    media.GalleryRepository
	blobConnector media.BlobConnector
	logger        logger.Logger
}

// NewGalleryService creates a new instance of GalleryService
func NewGalleryService(repository media.GalleryRepository, blobConnector media.BlobConnector, logger logger.Logger) (media.GalleryService, error) {
	return &galleryService{
		repository:    repository,
		blobConnector: blobConnector,
		logger:        logger,
	}, nil
}

// Upload stores an image in blob storage and records it in the gallery
func (s *galleryService) Upload(ctx context.Context, form *multipart.Form) (*media.GalleryImage, error) {
	file, err := readUpload(form, ImageFormField)
	if err != nil {
		return nil, err
	}
	if !media.IsImage(file.ContentType) {
		return nil, validators.Invalidf("'%s' is not an image (%s)", file.FileName, file.ContentType)
	}

	blobName := fmt.Sprintf("%s/%s%s", media.GalleryBlobPrefix, uuid.NewString(), file.Extension)
	image := &media.GalleryImage{
		ID:          uuid.NewString(),
		Title:       sanitize.Text(httputil.FormValue(form, "title")),
		Caption:     sanitize.Text(httputil.FormValue(form, "caption")),
		Category:    sanitize.Text(httputil.FormValue(form, "category")),
		BlobName:    blobName,
		URL:         s.blobConnector.URL(blobName),
		ContentType: file.ContentType,
		Size:        file.Size,
		CreatedAt:   time.Now().UTC(),
	}
	if image.Title == "" {
		image.Title = sanitize.Text(file.FileName)
	}
	if err := image.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.blobConnector.Upload(ctx, file.Data, blobName, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	image.URL = stored.URL

	if err := s.repository.Create(ctx, image); err != nil {
		removeOrphanedBlob(ctx, s.blobConnector, s.logger, blobName)
		return nil, fmt.Errorf("failed to create gallery image: %w", err)
	}

	s.logger.Info("Gallery image uploaded", "image_id", image.ID, "blob", blobName)
	return image, nil
}

// List retrieves gallery images considering a query filter when set
func (s *galleryService) List(ctx context.Context, query *media.MediaQuery) ([]*media.GalleryImage, error) {
	if query == nil {
		query = media.NewMediaQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	images, err := s.repository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

// DeleteByID removes the image row and its blob
func (s *galleryService) DeleteByID(ctx context.Context, id string) error {
	image, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get gallery image %s: %w", id, err)
	}

	if err := s.blobConnector.Delete(ctx, image.BlobName); err != nil {
		return fmt.Errorf("failed to delete blob of gallery image %s: %w", id, err)
	}

	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete gallery image %s: %w", id, err)
	}

	s.logger.Info("Gallery image deleted", "image_id", id)
	return nil
}

// resourceService implements the ResourceService interface
type resourceService struct {
	repository    media.ResourceRepository
	blobConnector media.BlobConnector
	logger        logger.Logger
}

// NewResourceService creates a new instance of ResourceService
func NewResourceService(repository media.ResourceRepository, blobConnector media.BlobConnector, logger logger.Logger) (media.ResourceService, error) {
	return &resourceService{
		repository:    repository,
		blobConnector: blobConnector,
		logger:        logger,
	}, nil
}

// Upload stores a downloadable file in blob storage and records it as a resource
func (s *resourceService) Upload(ctx context.Context, form *multipart.Form) (*media.Resource, error) {
	file, err := readUpload(form, ResourceFormField)
	if err != nil {
		return nil, err
	}

	blobName := fmt.Sprintf("%s/%s%s", media.ResourceBlobPrefix, uuid.NewString(), file.Extension)
	resource := &media.Resource{
		ID:          uuid.NewString(),
		Title:       sanitize.Text(httputil.FormValue(form, "title")),
		Description: sanitize.Text(httputil.FormValue(form, "description")),
		Category:    sanitize.Text(httputil.FormValue(form, "category")),
		BlobName:    blobName,
		URL:         s.blobConnector.URL(blobName),
		FileName:    sanitize.Text(file.FileName),
		ContentType: file.ContentType,
		Size:        file.Size,
		CreatedAt:   time.Now().UTC(),
	}
	if resource.Title == "" {
		resource.Title = resource.FileName
	}
	if err := resource.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.blobConnector.Upload(ctx, file.Data, blobName, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload resource: %w", err)
	}
	resource.URL = stored.URL

	if err := s.repository.Create(ctx, resource); err != nil {
		removeOrphanedBlob(ctx, s.blobConnector, s.logger, blobName)
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	s.logger.Info("Resource uploaded", "resource_id", resource.ID, "blob", blobName)
	return resource, nil
}

// List retrieves resources considering a query filter when set
func (s *resourceService) List(ctx context.Context, query *media.MediaQuery) ([]*media.Resource, error) {
	if query == nil {
		query = media.NewMediaQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resources, err := s.repository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// DeleteByID removes the resource row and its blob
func (s *resourceService) DeleteByID(ctx context.Context, id string) error {
	resource, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get resource %s: %w", id, err)
	}

	if err := s.blobConnector.Delete(ctx, resource.BlobName); err != nil {
		return fmt.Errorf("failed to delete blob of resource %s: %w", id, err)
	}

	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete resource %s: %w", id, err)
	}

	s.logger.Info("Resource deleted", "resource_id", id)
	return nil
}

// readUpload reads the file under field, turning client mistakes into validation errors
func readUpload(form *multipart.Form, field string) (*httputil.UploadedFile, error) {
	fh, err := httputil.FormFile(form, field)
	if err != nil {
		return nil, validators.Invalid(err)
	}

	file, err := httputil.ReadFile(fh, httputil.MaxUploadSize)
	if err != nil {
		if errors.Is(err, httputil.ErrFileTooLarge) || errors.Is(err, httputil.ErrEmptyFile) {
			return nil, validators.Invalid(err)
		}
		return nil, err
	}
	return file, nil
}

func removeOrphanedBlob(ctx context.Context, blobConnector media.BlobConnector, log logger.Logger, blobName string) {
	if err := blobConnector.Delete(ctx, blobName); err != nil {
		log.Error("Failed to remove orphaned blob", "blob", blobName, "error", err)
	}
}
