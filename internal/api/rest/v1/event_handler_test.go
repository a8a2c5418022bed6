//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testEvent() *events.Event {
	now := time.Now().UTC()
	return &events.Event{
		ID:          uuid.NewString(),
		Title:       "Founders Day Gala",
		Location:    "Main Hall",
		StartsAt:    now.Add(72 * time.Hour),
		IsTicketed:  true,
		TicketPrice: decimal.RequireFromString("1500.50"),
		Currency:    "KES",
		Capacity:    300,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestEventHandler_Create(t *testing.T) {
	tr := newTestRouter(t)
	event := testEvent()
	tr.events.On("Create", mock.Anything, mock.MatchedBy(func(e *events.Event) bool {
		return e.ID == "" && e.Title == "Founders Day Gala" && e.TicketPrice.Equal(decimal.RequireFromString("1500.50"))
	})).Return(event, nil)

	body := `{"title":"Founders Day Gala","starts_at":"2026-11-01T15:00:00Z","is_ticketed":true,"ticket_price":"1500.50","currency":"KES","capacity":300}`
	w := tr.serve(jsonRequest(t, http.MethodPost, "/events", body), true)

	require.Equal(t, http.StatusCreated, w.Code)
	var response EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, event.ID, response.ID)
	assert.Contains(t, w.Body.String(), `"ticket_price":"1500.5"`)
}

func TestEventHandler_Create_Invalid(t *testing.T) {
	tr := newTestRouter(t)
	tr.events.On("Create", mock.Anything, mock.Anything).
		Return(nil, validators.Invalidf("ticketed event requires a ticket_price greater than zero"))

	w := tr.serve(jsonRequest(t, http.MethodPost, "/events", `{"title":"Sports Day"}`), true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodPost, "/events", `{"title":"Sports Day","starts_at":"2026-11-01T08:00:00Z","is_ticketed":true}`), true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "ticket_price")
}

func TestEventHandler_List(t *testing.T) {
	tr := newTestRouter(t)
	tr.events.On("List", mock.Anything, mock.MatchedBy(func(q *events.EventQuery) bool {
		return q.Upcoming && q.IsTicketed != nil && !*q.IsTicketed
	})).Return([]*events.Event{testEvent()}, nil)

	w := tr.serve(jsonRequest(t, http.MethodGet, "/events?upcoming=true&is_ticketed=false", nil), false)
	require.Equal(t, http.StatusOK, w.Code)
	var response []EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 1)

	w = tr.serve(jsonRequest(t, http.MethodGet, "/events?upcoming=soon", nil), false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_UpdateAndDelete(t *testing.T) {
	tr := newTestRouter(t)
	event := testEvent()
	tr.events.On("Update", mock.Anything, mock.MatchedBy(func(e *events.Event) bool {
		return e.ID == event.ID
	})).Return(event, nil)
	tr.events.On("Update", mock.Anything, mock.MatchedBy(func(e *events.Event) bool {
		return e.ID == "missing"
	})).Return(nil, events.ErrNotFound)
	tr.events.On("DeleteByID", mock.Anything, event.ID).Return(nil)
	tr.events.On("GetByID", mock.Anything, "missing").Return(nil, events.ErrNotFound)

	body := `{"title":"Founders Day Gala","starts_at":"2026-11-01T15:00:00Z"}`
	w := tr.serve(jsonRequest(t, http.MethodPut, "/events/"+event.ID, body), true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodPut, "/events/missing", body), true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodDelete, "/events/"+event.ID, nil), true)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodGet, "/events/missing", nil), false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
