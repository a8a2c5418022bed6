//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/messages"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMessage() *messages.Message {
	return &messages.Message{
		ID:        uuid.NewString(),
		Name:      "Wanjiru",
		Email:     "wanjiru@example.com",
		Subject:   "Admissions",
		Body:      "When does the next intake start?",
		Status:    messages.StatusUnread,
		CreatedAt: time.Now().UTC(),
	}
}

func TestMessageHandler_Create(t *testing.T) {
	tr := newTestRouter(t)
	message := testMessage()
	tr.messages.On("Create", mock.Anything, mock.MatchedBy(func(m *messages.Message) bool {
		return m.Body == "When does the next intake start?" && m.Subject == "Admissions"
	})).Return(message, nil)

	w := tr.serve(jsonRequest(t, http.MethodPost, "/messages", MessageRequest{
		Name:    "Wanjiru",
		Email:   "wanjiru@example.com",
		Subject: "Admissions",
		Message: "When does the next intake start?",
	}), false)

	require.Equal(t, http.StatusCreated, w.Code)
	var response MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, message.ID, response.ID)
	assert.Equal(t, message.Body, response.Message)
	assert.Equal(t, messages.StatusUnread, response.Status)
}

func TestMessageHandler_Create_MissingMessage(t *testing.T) {
	tr := newTestRouter(t)

	w := tr.serve(jsonRequest(t, http.MethodPost, "/messages", MessageRequest{Name: "Wanjiru", Email: "wanjiru@example.com", Subject: "Hi"}), false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	tr.messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageHandler_Admin(t *testing.T) {
	tr := newTestRouter(t)
	message := testMessage()
	read := *message
	read.Status = messages.StatusRead
	tr.messages.On("List", mock.Anything, mock.MatchedBy(func(q *messages.MessageQuery) bool {
		return q.Status == messages.StatusUnread && q.SortOrder == "asc"
	})).Return([]*messages.Message{message}, nil)
	tr.messages.On("UpdateStatus", mock.Anything, message.ID, messages.StatusRead).Return(&read, nil)
	tr.messages.On("UpdateStatus", mock.Anything, "missing", messages.StatusRead).Return(nil, messages.ErrNotFound)
	tr.messages.On("DeleteByID", mock.Anything, message.ID).Return(nil)

	w := tr.serve(jsonRequest(t, http.MethodGet, "/messages?status=unread&sortOrder=asc", nil), true)
	require.Equal(t, http.StatusOK, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodPatch, "/messages/"+message.ID+"/status", StatusUpdateRequest{Status: messages.StatusRead}), true)
	require.Equal(t, http.StatusOK, w.Code)
	var response MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, messages.StatusRead, response.Status)

	w = tr.serve(jsonRequest(t, http.MethodPatch, "/messages/missing/status", StatusUpdateRequest{Status: messages.StatusRead}), true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = tr.serve(jsonRequest(t, http.MethodDelete, "/messages/"+message.ID, nil), true)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
