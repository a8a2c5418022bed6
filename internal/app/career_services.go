package app

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/domain/content"
	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/pkg/httputil"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/hillcrest-schools/school-portal/internal/pkg/sanitize"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/google/uuid"
)

// CVFormField is the multipart field carrying the CV
const CVFormField = "cv"

// jobApplicationService implements the JobApplicationService interface
type jobApplicationService struct {
	repository    careers.JobApplicationRepository
	blobConnector media.BlobConnector
	content       content.Connector
	logger        logger.Logger
}

// NewJobApplicationService creates a new instance of JobApplicationService
func NewJobApplicationService(repository careers.JobApplicationRepository, blobConnector media.BlobConnector, contentConnector content.Connector, logger logger.Logger) (careers.JobApplicationService, error) {
	return &jobApplicationService{
		repository:    repository,
		blobConnector: blobConnector,
		content:       contentConnector,
		logger:        logger,
	}, nil
}

// Submit stores the CV, persists the job application and mirrors it into the content backend
func (s *jobApplicationService) Submit(ctx context.Context, form *multipart.Form) (*careers.JobApplication, error) {
	cv, err := readUpload(form, CVFormField)
	if err != nil {
		return nil, err
	}
	if !careers.AllowedCVExtensions[cv.Extension] {
		return nil, validators.Invalidf("cv must be a pdf, doc or docx file, got '%s'", cv.FileName)
	}

	now := time.Now().UTC()
	application := &careers.JobApplication{
		ID:          uuid.NewString(),
		FullName:    httputil.FormValue(form, "full_name"),
		Email:       httputil.FormValue(form, "email"),
		Phone:       httputil.FormValue(form, "phone"),
		Position:    httputil.FormValue(form, "position"),
		CoverLetter: httputil.FormValue(form, "cover_letter"),
		Status:      careers.StatusReceived,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	sanitize.Fields(&application.FullName, &application.Position, &application.CoverLetter)

	application.CVBlobName = fmt.Sprintf("%s/%s%s", careers.CVBlobPrefix, uuid.NewString(), cv.Extension)
	application.CVURL = s.blobConnector.URL(application.CVBlobName)

	if err := application.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.blobConnector.Upload(ctx, cv.Data, application.CVBlobName, cv.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload cv: %w", err)
	}
	application.CVURL = stored.URL

	if err := s.repository.Create(ctx, application); err != nil {
		removeOrphanedBlob(ctx, s.blobConnector, s.logger, application.CVBlobName)
		return nil, fmt.Errorf("failed to create job application: %w", err)
	}

	s.logger.Info("Job application received", "job_application_id", application.ID, "position", application.Position)

	s.mirror(ctx, application)
	return application, nil
}

// mirror copies the application into the content backend. Failures are logged only.
func (s *jobApplicationService) mirror(ctx context.Context, application *careers.JobApplication) {
	if s.content == nil || !s.content.Enabled() {
		return
	}

	documentID, err := s.content.CreateDocument(ctx, careers.ContentDocumentType, application.ContentFields())
	if err != nil {
		s.logger.Warn("Failed to mirror job application to content backend", "job_application_id", application.ID, "error", err)
		return
	}

	application.ContentDocumentID = documentID
	if err := s.repository.Update(ctx, application); err != nil {
		s.logger.Warn("Failed to store content document id", "job_application_id", application.ID, "error", err)
	}
}

// List retrieves job applications considering a query filter when set
func (s *jobApplicationService) List(ctx context.Context, query *careers.JobApplicationQuery) ([]*careers.JobApplication, error) {
	if query == nil {
		query = careers.NewJobApplicationQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	applications, err := s.repository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	return applications, nil
}

// GetByID retrieves a job application by ID
func (s *jobApplicationService) GetByID(ctx context.Context, id string) (*careers.JobApplication, error) {
	application, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job application %s: %w", id, err)
	}
	return application, nil
}

// UpdateStatus changes the status of a job application
func (s *jobApplicationService) UpdateStatus(ctx context.Context, id, status string) (*careers.JobApplication, error) {
	if !careers.IsValidStatus(status) {
		return nil, validators.Invalidf("unknown job application status %q", status)
	}

	application, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job application %s: %w", id, err)
	}

	application.Status = status
	application.UpdatedAt = time.Now().UTC()
	if err := s.repository.Update(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to update job application %s: %w", id, err)
	}

	s.logger.Info("Job application status changed", "job_application_id", id, "status", status)
	return application, nil
}

// DeleteByID deletes a job application and its CV blob
func (s *jobApplicationService) DeleteByID(ctx context.Context, id string) error {
	application, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get job application %s: %w", id, err)
	}

	if err := s.blobConnector.Delete(ctx, application.CVBlobName); err != nil {
		return fmt.Errorf("failed to delete cv of job application %s: %w", id, err)
	}

	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete job application %s: %w", id, err)
	}

	s.logger.Info("Job application deleted", "job_application_id", id)
	return nil
}
