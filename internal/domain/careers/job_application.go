// Package careers models job applications received through the careers page.
package careers

import (
	"errors"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/listing"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
)

// Job application statuses
const (
	StatusReceived    = "received"
	StatusShortlisted = "shortlisted"
	StatusInterviewed = "interviewed"
	StatusHired       = "hired"
	StatusRejected    = "rejected"
)

// ContentDocumentType is the document type mirrored into the content backend
const ContentDocumentType = "jobApplication"

// CVBlobPrefix is prepended to every stored CV blob name
const CVBlobPrefix = "careers/cv"

// AllowedCVExtensions lists the accepted CV file types
var AllowedCVExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ErrNotFound is returned when a job application does not exist
var ErrNotFound = errors.New("job application not found")

// JobApplication entity
type JobApplication struct {
	ID                string    `validate:"required,uuid4"`
	FullName          string    `validate:"required,min=1,max=200"`
	Email             string    `validate:"required,email"`
	Phone             string    `validate:"required,phone"`
	Position          string    `validate:"required,min=1,max=200"`
	CoverLetter       string    `validate:"max=10000"`
	CVURL             string    `validate:"required,url"`
	CVBlobName        string    `validate:"required,max=255"`
	ContentDocumentID string    `validate:"max=100"`
	Status            string    `validate:"required,oneof=received shortlisted interviewed hired rejected"`
	CreatedAt         time.Time `validate:"required"`
	UpdatedAt         time.Time
}

// Validate for validating JobApplication struct
func (j *JobApplication) Validate() error {
	return validators.Struct(j)
}

// ContentFields returns the document mirrored into the content backend
func (j *JobApplication) ContentFields() map[string]interface{} {
	return map[string]interface{}{
		"applicationId": j.ID,
		"fullName":      j.FullName,
		"email":         j.Email,
		"phone":         j.Phone,
		"position":      j.Position,
		"coverLetter":   j.CoverLetter,
		"cvUrl":         j.CVURL,
		"status":        j.Status,
		"submittedAt":   j.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// IsValidStatus reports whether s is a known job application status
func IsValidStatus(s string) bool {
	switch s {
	case StatusReceived, StatusShortlisted, StatusInterviewed, StatusHired, StatusRejected:
		return true
	}
	return false
}

// JobApplicationQuery filters the admin job application list
type JobApplicationQuery struct {
	Position string `validate:"max=200"`
	Status   string `validate:"omitempty,oneof=received shortlisted interviewed hired rejected"`
	SortBy   string `validate:"omitempty,oneof=created_at full_name position status"`
	listing.Page
}

// NewJobApplicationQuery creates a JobApplicationQuery with default values
func NewJobApplicationQuery() *JobApplicationQuery {
	return &JobApplicationQuery{}
}

// Validate for validating JobApplicationQuery struct
func (q *JobApplicationQuery) Validate() error {
	return validators.Struct(q)
}
