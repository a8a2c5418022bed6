//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/pkg/httputil"
	"github.com/hillcrest-schools/school-portal/internal/pkg/testutil"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testJobApplication() *careers.JobApplication {
	now := time.Now().UTC()
	return &careers.JobApplication{
		ID:         uuid.NewString(),
		FullName:   "Peter Kamau",
		Email:      "peter@example.com",
		Phone:      "+254700000001",
		Position:   "Mathematics Teacher",
		CVURL:      "https://cdn.example.com/portal/careers/cv/abc.pdf",
		CVBlobName: "careers/cv/abc.pdf",
		Status:     careers.StatusReceived,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func careerFormValues() map[string]string {
	return map[string]string{
		"full_name": "Peter Kamau",
		"email":     "peter@example.com",
		"phone":     "+254700000001",
		"position":  "Mathematics Teacher",
	}
}

func TestCareerHandler_Submit(t *testing.T) {
	tr := newTestRouter(t)
	application := testJobApplication()
	tr.jobApplications.On("Submit", mock.Anything, mock.MatchedBy(func(form *multipart.Form) bool {
		return httputil.FormValue(form, "full_name") == "Peter Kamau" && len(form.File["cv"]) == 1
	})).Return(application, nil)

	req := testutil.CreateMultipartRequest(t, http.MethodPost, BasePath+"/careers/applications", "cv", "cv.pdf", []byte("%PDF-1.4 cv"), careerFormValues())
	w := tr.serve(req, false)

	require.Equal(t, http.StatusCreated, w.Code)
	var response JobApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, application.ID, response.ID)
	assert.Equal(t, application.CVURL, response.CVURL)
}

func TestCareerHandler_Submit_Errors(t *testing.T) {
	t.Run("not multipart", func(t *testing.T) {
		tr := newTestRouter(t)

		w := tr.serve(jsonRequest(t, http.MethodPost, "/careers/applications", careerFormValues()), false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		tr.jobApplications.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("rejected file type", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.jobApplications.On("Submit", mock.Anything, mock.Anything).
			Return(nil, validators.Invalidf("cv must be one of .pdf, .doc, .docx"))

		req := testutil.CreateMultipartRequest(t, http.MethodPost, BasePath+"/careers/applications", "cv", "cv.exe", []byte("MZ"), careerFormValues())
		w := tr.serve(req, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized body", func(t *testing.T) {
		tr := newTestRouter(t)

		content := make([]byte, httputil.MaxUploadSize+2*multipartSlack)
		req := testutil.CreateMultipartRequest(t, http.MethodPost, BasePath+"/careers/applications", "cv", "cv.pdf", content, careerFormValues())
		w := tr.serve(req, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		tr.jobApplications.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})
}

func TestCareerHandler_Admin(t *testing.T) {
	tr := newTestRouter(t)
	application := testJobApplication()
	tr.jobApplications.On("List", mock.Anything, mock.MatchedBy(func(q *careers.JobApplicationQuery) bool {
		return q.Position == "Librarian" && q.Status == careers.StatusShortlisted
	})).Return([]*careers.JobApplication{application}, nil)
	tr.jobApplications.On("GetByID", mock.Anything, application.ID).Return(application, nil)
	tr.jobApplications.On("GetByID", mock.Anything, "missing").Return(nil, careers.ErrNotFound)
	tr.jobApplications.On("UpdateStatus", mock.Anything, application.ID, careers.StatusHired).Return(application, nil)
	tr.jobApplications.On("DeleteByID", mock.Anything, application.ID).Return(nil)

	w := tr.serve(jsonRequest(t, http.MethodGet, "/careers/applications?position=Librarian&status=shortlisted", nil), true)
	require.Equal(t, http.StatusOK, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodGet, "/careers/applications/"+application.ID, nil), true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodGet, "/careers/applications/missing", nil), true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodPatch, "/careers/applications/"+application.ID+"/status", StatusUpdateRequest{Status: careers.StatusHired}), true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodDelete, "/careers/applications/"+application.ID, nil), true)
	assert.Equal(t, http.StatusNoContent, w.Code)

	tr.jobApplications.AssertExpectations(t)
}
