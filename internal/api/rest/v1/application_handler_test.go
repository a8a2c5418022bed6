//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validApplicationRequest() ApplicationRequest {
	return ApplicationRequest{
		StudentFirstName: "Amani",
		StudentLastName:  "Otieno",
		DateOfBirth:      "2016-03-14",
		GradeApplyingFor: "Grade 4",
		Campus:           "Karen",
		ParentName:       "Grace Otieno",
		ParentEmail:      "grace@example.com",
		ParentPhone:      "+254712345678",
	}
}

func testApplication() *admissions.Application {
	now := time.Now().UTC()
	return &admissions.Application{
		ID:                uuid.NewString(),
		StudentFirstName:  "Amani",
		StudentLastName:   "Otieno",
		DateOfBirth:       "2016-03-14",
		GradeApplyingFor:  "Grade 4",
		Campus:            "Karen",
		ParentName:        "Grace Otieno",
		ParentEmail:       "grace@example.com",
		ParentPhone:       "+254712345678",
		Status:            admissions.StatusSubmitted,
		PaymentStatus:     payments.StatusPending,
		Amount:            decimal.NewFromInt(2500),
		Currency:          "KES",
		MerchantReference: "APP-0001",
		OrderTrackingID:   "trk-app-1",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestApplicationHandler_Submit(t *testing.T) {
	tr := newTestRouter(t)
	application := testApplication()
	tr.applications.On("Submit", mock.Anything, mock.MatchedBy(func(a *admissions.Application) bool {
		return a.StudentFirstName == "Amani" && a.ParentEmail == "grace@example.com"
	})).Return(&admissions.SubmitResult{
		Application:     application,
		RedirectURL:     "https://pay.example.com/checkout/trk-app-1",
		OrderTrackingID: "trk-app-1",
	}, nil)

	w := tr.serve(jsonRequest(t, http.MethodPost, "/applications", validApplicationRequest()), false)

	require.Equal(t, http.StatusCreated, w.Code)
	var response SubmitApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, application.ID, response.Application.ID)
	assert.Equal(t, "https://pay.example.com/checkout/trk-app-1", response.RedirectURL)
	assert.Equal(t, "trk-app-1", response.OrderTrackingID)
	assert.True(t, decimal.NewFromInt(2500).Equal(response.Application.Amount))
	assert.Contains(t, w.Body.String(), `"amount":"2500"`)
}

func TestApplicationHandler_Submit_Errors(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		tr := newTestRouter(t)
		request := validApplicationRequest()
		request.ParentEmail = ""

		w := tr.serve(jsonRequest(t, http.MethodPost, "/applications", request), false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		tr.applications.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("service validation", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.applications.On("Submit", mock.Anything, mock.Anything).
			Return(nil, validators.Invalidf("Field: ParentEmail, Tag: email"))

		w := tr.serve(jsonRequest(t, http.MethodPost, "/applications", validApplicationRequest()), false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Message, "Tag: email")
	})

	t.Run("gateway failure", func(t *testing.T) {
		tr := newTestRouter(t)
		tr.applications.On("Submit", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("failed to submit order: %w", errors.New("gateway returned 502")))

		w := tr.serve(jsonRequest(t, http.MethodPost, "/applications", validApplicationRequest()), false)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "error submitting application", decodeError(t, w).Message)
	})
}

func TestApplicationHandler_List(t *testing.T) {
	tr := newTestRouter(t)
	tr.applications.On("List", mock.Anything, mock.MatchedBy(func(q *admissions.ApplicationQuery) bool {
		return q.Status == admissions.StatusSubmitted && q.PaymentStatus == payments.StatusCompleted &&
			q.Campus == "Karen" && q.Grade == "Grade 4" && q.Limit == 10 && q.Offset == 20
	})).Return([]*admissions.Application{testApplication()}, nil)

	req := jsonRequest(t, http.MethodGet, "/applications?status=submitted&payment_status=completed&campus=Karen&grade=Grade+4&limit=10&offset=20", nil)
	w := tr.serve(req, true)

	require.Equal(t, http.StatusOK, w.Code)
	var response []ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)
}

func TestApplicationHandler_List_BadQuery(t *testing.T) {
	tr := newTestRouter(t)

	w := tr.serve(jsonRequest(t, http.MethodGet, "/applications?limit=ten", nil), true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	tr.applications.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestApplicationHandler_GetByID(t *testing.T) {
	tr := newTestRouter(t)
	application := testApplication()
	tr.applications.On("GetByID", mock.Anything, application.ID).Return(application, nil)
	tr.applications.On("GetByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("failed to get application missing: %w", admissions.ErrNotFound))

	w := tr.serve(jsonRequest(t, http.MethodGet, "/applications/"+application.ID, nil), true)
	require.Equal(t, http.StatusOK, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodGet, "/applications/missing", nil), true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplicationHandler_UpdateStatus(t *testing.T) {
	tr := newTestRouter(t)
	application := testApplication()
	application.Status = admissions.StatusAccepted
	tr.applications.On("UpdateStatus", mock.Anything, application.ID, admissions.StatusAccepted).Return(application, nil)
	tr.applications.On("UpdateStatus", mock.Anything, application.ID, "expelled").
		Return(nil, validators.Invalidf("unknown status %q", "expelled"))

	w := tr.serve(jsonRequest(t, http.MethodPatch, "/applications/"+application.ID+"/status", StatusUpdateRequest{Status: admissions.StatusAccepted}), true)
	require.Equal(t, http.StatusOK, w.Code)
	var response ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, admissions.StatusAccepted, response.Status)

	w = tr.serve(jsonRequest(t, http.MethodPatch, "/applications/"+application.ID+"/status", StatusUpdateRequest{Status: "expelled"}), true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodPatch, "/applications/"+application.ID+"/status", StatusUpdateRequest{}), true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicationHandler_DeleteByID(t *testing.T) {
	tr := newTestRouter(t)
	tr.applications.On("DeleteByID", mock.Anything, "app-1").Return(nil)
	tr.applications.On("DeleteByID", mock.Anything, "missing").Return(admissions.ErrNotFound)

	w := tr.serve(jsonRequest(t, http.MethodDelete, "/applications/app-1", nil), true)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodDelete, "/applications/missing", nil), true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
