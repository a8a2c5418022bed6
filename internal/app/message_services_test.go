//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/pkg/testutil"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Create_StripsMarkup(t *testing.T) {
	repo := new(MockMessageRepository)
	service, err := NewMessageService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*messages.Message")).Return(nil)

	message, err := service.Create(ctx, &messages.Message{
		Name:    "Wanjiru",
		Email:   "wanjiru@example.com",
		Subject: "<a href=\"http://spam.example.com\">Admissions</a>",
		Body:    "When is the open day? <img src=x onerror=alert(1)>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Admissions", message.Subject)
	assert.Equal(t, "When is the open day?", message.Body)
	assert.Equal(t, messages.StatusUnread, message.Status)
	assert.NotEmpty(t, message.ID)
	repo.AssertExpectations(t)
}

func TestMessageService_Create_BodyOnlyMarkup(t *testing.T) {
	repo := new(MockMessageRepository)
	service, err := NewMessageService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = service.Create(context.Background(), &messages.Message{
		Name:    "Bot",
		Email:   "bot@example.com",
		Subject: "Hi",
		Body:    "<script>alert(1)</script>",
	})
	require.ErrorIs(t, err, validators.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageService_UpdateStatus(t *testing.T) {
	repo := new(MockMessageRepository)
	service, err := NewMessageService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = service.UpdateStatus(ctx, "msg-1", "spam")
	require.ErrorIs(t, err, validators.ErrValidation)

	repo.On("UpdateStatus", ctx, "msg-1", messages.StatusRead).Return(nil)
	repo.On("GetByID", ctx, "msg-1").Return(&messages.Message{ID: "msg-1", Status: messages.StatusRead}, nil)
	message, err := service.UpdateStatus(ctx, "msg-1", messages.StatusRead)
	require.NoError(t, err)
	assert.Equal(t, messages.StatusRead, message.Status)

	repo.On("UpdateStatus", ctx, "missing", messages.StatusArchived).Return(messages.ErrNotFound)
	_, err = service.UpdateStatus(ctx, "missing", messages.StatusArchived)
	require.ErrorIs(t, err, messages.ErrNotFound)
}
