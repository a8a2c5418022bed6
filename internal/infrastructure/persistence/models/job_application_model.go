package models

import (
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
)

// JobApplicationModel is the GORM model of the job_applications table
type JobApplicationModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	FullName          string    `gorm:"not null;type:varchar(200)"`
	Email             string    `gorm:"not null;type:varchar(255)"`
	Phone             string    `gorm:"not null;type:varchar(32)"`
	Position          string    `gorm:"not null;index;type:varchar(200)"`
	CoverLetter       string    `gorm:"type:text"`
	CVURL             string    `gorm:"column:cv_url;not null;type:varchar(1024)"`
	CVBlobName        string    `gorm:"column:cv_blob_name;not null;type:varchar(255)"`
	ContentDocumentID string    `gorm:"type:varchar(100)"`
	Status            string    `gorm:"not null;index;type:varchar(20);default:received"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (JobApplicationModel) TableName() string {
	return "job_applications"
}

// ToDomain converts GORM model to domain entity
func (m *JobApplicationModel) ToDomain() *careers.JobApplication {
	return &careers.JobApplication{
		ID:                m.ID,
		FullName:          m.FullName,
		Email:             m.Email,
		Phone:             m.Phone,
		Position:          m.Position,
		CoverLetter:       m.CoverLetter,
		CVURL:             m.CVURL,
		CVBlobName:        m.CVBlobName,
		ContentDocumentID: m.ContentDocumentID,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *JobApplicationModel) FromDomain(j *careers.JobApplication) {
	m.ID = j.ID
	m.FullName = j.FullName
	m.Email = j.Email
	m.Phone = j.Phone
	m.Position = j.Position
	m.CoverLetter = j.CoverLetter
	m.CVURL = j.CVURL
	m.CVBlobName = j.CVBlobName
	m.ContentDocumentID = j.ContentDocumentID
	m.Status = j.Status
	m.CreatedAt = j.CreatedAt
	m.UpdatedAt = j.UpdatedAt
}
