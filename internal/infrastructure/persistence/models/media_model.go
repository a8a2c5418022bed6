package models

import (
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/media"
)

// GalleryImageModel is the GORM model of the gallery_images table
type GalleryImageModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"not null;type:varchar(200)"`
	Caption     string    `gorm:"type:varchar(1000)"`
	Category    string    `gorm:"index;type:varchar(100)"`
	BlobName    string    `gorm:"not null;type:varchar(255)"`
	URL         string    `gorm:"column:url;not null;type:varchar(1024)"`
	ContentType string    `gorm:"not null;type:varchar(100)"`
	Size        int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (GalleryImageModel) TableName() string {
	return "gallery_images"
}

// ToDomain converts GORM model to domain entity
func (m *GalleryImageModel) ToDomain() *media.GalleryImage {
	return &media.GalleryImage{
		ID:          m.ID,
		Title:       m.Title,
		Caption:     m.Caption,
		Category:    m.Category,
		BlobName:    m.BlobName,
		URL:         m.URL,
		ContentType: m.ContentType,
		Size:        m.Size,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GalleryImageModel) FromDomain(g *media.GalleryImage) {
	m.ID = g.ID
	m.Title = g.Title
	m.Caption = g.Caption
	m.Category = g.Category
	m.BlobName = g.BlobName
	m.URL = g.URL
	m.ContentType = g.ContentType
	m.Size = g.Size
	m.CreatedAt = g.CreatedAt
}

// ResourceModel is the GORM model of the resources table
type ResourceModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"not null;type:varchar(200)"`
	Description string    `gorm:"type:varchar(2000)"`
	Category    string    `gorm:"index;type:varchar(100)"`
	BlobName    string    `gorm:"not null;type:varchar(255)"`
	URL         string    `gorm:"column:url;not null;type:varchar(1024)"`
	FileName    string    `gorm:"not null;type:varchar(255)"`
	ContentType string    `gorm:"not null;type:varchar(100)"`
	Size        int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ResourceModel) TableName() string {
	return "resources"
}

// ToDomain converts GORM model to domain entity
func (m *ResourceModel) ToDomain() *media.Resource {
	return &media.Resource{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		BlobName:    m.BlobName,
		URL:         m.URL,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		Size:        m.Size,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ResourceModel) FromDomain(r *media.Resource) {
	m.ID = r.ID
	m.Title = r.Title
	m.Description = r.Description
	m.Category = r.Category
	m.BlobName = r.BlobName
	m.URL = r.URL
	m.FileName = r.FileName
	m.ContentType = r.ContentType
	m.Size = r.Size
	m.CreatedAt = r.CreatedAt
}
