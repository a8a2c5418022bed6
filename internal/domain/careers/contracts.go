package careers

import (
	"context"
	"mime/multipart"
)

// JobApplicationService defines the careers workflows
type JobApplicationService interface {
	// Submit reads the applicant fields and the "cv" file from form, stores the CV in blob
	// storage, persists the application and mirrors it into the content backend.
	Submit(ctx context.Context, form *multipart.Form) (*JobApplication, error)
	// List retrieves job applications considering a query filter when set.
	List(ctx context.Context, query *JobApplicationQuery) ([]*JobApplication, error)
	// GetByID retrieves a job application by ID.
	GetByID(ctx context.Context, id string) (*JobApplication, error)
	// UpdateStatus changes the status of a job application.
	UpdateStatus(ctx context.Context, id, status string) (*JobApplication, error)
	// DeleteByID deletes a job application and its CV blob.
	DeleteByID(ctx context.Context, id string) error
}

// JobApplicationRepository defines the interface for JobApplication persistence
type JobApplicationRepository interface {
	Create(ctx context.Context, application *JobApplication) error
	List(ctx context.Context, query *JobApplicationQuery) ([]*JobApplication, error)
	GetByID(ctx context.Context, id string) (*JobApplication, error)
	Update(ctx context.Context, application *JobApplication) error
	DeleteByID(ctx context.Context, id string) error
}
