package media

import (
	"context"
	"mime/multipart"
)

// GalleryService defines gallery administration
type GalleryService interface {
	// Upload stores the "image" file of form and records it with its title, caption and category.
	Upload(ctx context.Context, form *multipart.Form) (*GalleryImage, error)
	List(ctx context.Context, query *MediaQuery) ([]*GalleryImage, error)
	// DeleteByID removes the image row and its blob.
	DeleteByID(ctx context.Context, id string) error
}

// ResourceService defines downloadable resource administration
type ResourceService interface {
	// Upload stores the "file" file of form and records it with its title, description and category.
	Upload(ctx context.Context, form *multipart.Form) (*Resource, error)
	List(ctx context.Context, query *MediaQuery) ([]*Resource, error)
	// DeleteByID removes the resource row and its blob.
	DeleteByID(ctx context.Context, id string) error
}

// GalleryRepository defines the interface for GalleryImage persistence
type GalleryRepository interface {
	Create(ctx context.Context, image *GalleryImage) error
	List(ctx context.Context, query *MediaQuery) ([]*GalleryImage, error)
	GetByID(ctx context.Context, id string) (*GalleryImage, error)
	DeleteByID(ctx context.Context, id string) error
}

// ResourceRepository defines the interface for Resource persistence
type ResourceRepository interface {
	Create(ctx context.Context, resource *Resource) error
	List(ctx context.Context, query *MediaQuery) ([]*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	DeleteByID(ctx context.Context, id string) error
}

// BlobConnector is an interface for interacting with Blob storage
type BlobConnector interface {
	// Upload writes data under blobName and returns where it is served from.
	Upload(ctx context.Context, data []byte, blobName, contentType string) (*StoredObject, error)
	// Delete removes the blob named blobName.
	Delete(ctx context.Context, blobName string) error
	// URL returns the public URL of blobName.
	URL(blobName string) string
}
