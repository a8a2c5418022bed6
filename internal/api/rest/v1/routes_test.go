//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hillcrest-schools/school-portal/internal/domain/auth"
	"github.com/hillcrest-schools/school-portal/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminToken      = "valid-admin-token"
	testFrontendURL = "https://hillcrest.example.com/"
)

type testRouter struct {
	engine          *gin.Engine
	metrics         *metrics.Metrics
	auth            *MockAuthService
	applications    *MockApplicationService
	jobApplications *MockJobApplicationService
	events          *MockEventService
	tickets         *MockTicketService
	messages        *MockMessageService
	gallery         *MockGalleryService
	resources       *MockResourceService
	payments        *MockPaymentService
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tr := &testRouter{
		metrics:         metrics.NewMetrics(),
		auth:            new(MockAuthService),
		applications:    new(MockApplicationService),
		jobApplications: new(MockJobApplicationService),
		events:          new(MockEventService),
		tickets:         new(MockTicketService),
		messages:        new(MockMessageService),
		gallery:         new(MockGalleryService),
		resources:       new(MockResourceService),
		payments:        new(MockPaymentService),
	}
	tr.auth.On("Verify", adminToken).Return(&auth.Principal{Subject: "admin", Role: auth.RoleAdmin}, nil).Maybe()
	tr.auth.On("Verify", mock.Anything).Return(nil, auth.ErrInvalidToken).Maybe()

	tr.engine = gin.New()
	SetupRoutes(tr.engine, &Services{
		Auth:            tr.auth,
		Applications:    tr.applications,
		JobApplications: tr.jobApplications,
		Events:          tr.events,
		Tickets:         tr.tickets,
		Messages:        tr.messages,
		Gallery:         tr.gallery,
		Resources:       tr.resources,
		Payments:        tr.payments,
	}, testFrontendURL, tr.metrics)
	return tr
}

// serve runs req through the router, authenticated as admin when admin is set
func (tr *testRouter) serve(req *http.Request, admin bool) *httptest.ResponseRecorder {
	if admin {
		req.Header.Set("Authorization", "Bearer "+adminToken)
	}
	w := httptest.NewRecorder()
	tr.engine.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req, err := http.NewRequest(method, BasePath+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestSetupRoutes_Health(t *testing.T) {
	tr := newTestRouter(t)

	w := tr.serve(httptest.NewRequest(http.MethodGet, "/health", nil), false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestSetupRoutes_Metrics(t *testing.T) {
	tr := newTestRouter(t)

	tr.serve(httptest.NewRequest(http.MethodGet, "/health", nil), false)
	w := tr.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil), false)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{code="200",method="GET",route="/health"} 1`)
}

// TestSetupRoutes_AdminRoutesRequireToken verifies that every admin route rejects anonymous and forged requests
func TestSetupRoutes_AdminRoutesRequireToken(t *testing.T) {
	tr := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/applications"},
		{http.MethodGet, "/applications/abc"},
		{http.MethodPatch, "/applications/abc/status"},
		{http.MethodDelete, "/applications/abc"},
		{http.MethodGet, "/careers/applications"},
		{http.MethodDelete, "/careers/applications/abc"},
		{http.MethodPost, "/events"},
		{http.MethodPut, "/events/abc"},
		{http.MethodDelete, "/events/abc"},
		{http.MethodGet, "/tickets"},
		{http.MethodGet, "/messages"},
		{http.MethodDelete, "/messages/abc"},
		{http.MethodPost, "/gallery"},
		{http.MethodDelete, "/gallery/abc"},
		{http.MethodPost, "/resources"},
		{http.MethodDelete, "/resources/abc"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := tr.serve(httptest.NewRequest(route.method, BasePath+route.path, nil), false)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			req := httptest.NewRequest(route.method, BasePath+route.path, nil)
			req.Header.Set("Authorization", "Bearer forged")
			w = tr.serve(req, false)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, auth.ErrInvalidToken.Error(), decodeError(t, w).Message)
		})
	}

	tr.applications.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	tr.events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSetupRoutes_PublicRoutesRegistered(t *testing.T) {
	tr := newTestRouter(t)
	tr.events.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	tr.gallery.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	tr.resources.On("List", mock.Anything, mock.Anything).Return(nil, nil)

	for _, path := range []string{"/events", "/gallery", "/resources"} {
		w := tr.serve(httptest.NewRequest(http.MethodGet, BasePath+path, nil), false)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, "[]", w.Body.String(), path)
	}
}
