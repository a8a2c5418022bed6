// Package media models gallery images and downloadable resources kept in blob storage.
package media

import (
	"errors"
	"strings"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/listing"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
)

// Blob name prefixes
const (
	GalleryBlobPrefix  = "gallery"
	ResourceBlobPrefix = "resources"
)

var (
	// ErrImageNotFound is returned when a gallery image does not exist
	ErrImageNotFound = errors.New("gallery image not found")
	// ErrResourceNotFound is returned when a resource does not exist
	ErrResourceNotFound = errors.New("resource not found")
)

// StoredObject describes a blob written to storage
type StoredObject struct {
	BlobName    string
	URL         string
	ContentType string
	Size        int64
}

// GalleryImage entity
type GalleryImage struct {
	ID          string    `validate:"required,uuid4"`
	Title       string    `validate:"required,min=1,max=200"`
	Caption     string    `validate:"max=1000"`
	Category    string    `validate:"max=100"`
	BlobName    string    `validate:"required,max=255"`
	URL         string    `validate:"required,url"`
	ContentType string    `validate:"required,startswith=image/"`
	Size        int64     `validate:"required,min=1"`
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating GalleryImage struct
func (g *GalleryImage) Validate() error {
	return validators.Struct(g)
}

// Resource entity
type Resource struct {
	ID          string    `validate:"required,uuid4"`
	Title       string    `validate:"required,min=1,max=200"`
	Description string    `validate:"max=2000"`
	Category    string    `validate:"max=100"`
	BlobName    string    `validate:"required,max=255"`
	URL         string    `validate:"required,url"`
	FileName    string    `validate:"required,max=255"`
	ContentType string    `validate:"required,max=100"`
	Size        int64     `validate:"required,min=1"`
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating Resource struct
func (r *Resource) Validate() error {
	return validators.Struct(r)
}

// IsImage reports whether contentType is an image MIME type
func IsImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}

// MediaQuery filters gallery and resource lists
type MediaQuery struct {
	Category string `validate:"max=100"`
	SortBy   string `validate:"omitempty,oneof=created_at title"`
	listing.Page
}

// NewMediaQuery creates a MediaQuery with default values
func NewMediaQuery() *MediaQuery {
	return &MediaQuery{}
}

// Validate for validating MediaQuery struct
func (q *MediaQuery) Validate() error {
	return validators.Struct(q)
}
