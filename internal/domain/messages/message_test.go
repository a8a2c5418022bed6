//go:build unit
// +build unit

package messages

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Validate(t *testing.T) {
	m := &Message{
		ID:        uuid.NewString(),
		Name:      "Wanjiru",
		Email:     "wanjiru@example.com",
		Subject:   "Admissions",
		Body:      "When does the next intake start?",
		Status:    StatusUnread,
		CreatedAt: time.Now(),
	}
	require.NoError(t, m.Validate())

	m.Phone = "abc"
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Phone, Tag: phone")

	m.Phone = ""
	m.Body = ""
	err = m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Body, Tag: required")
}

func TestMessageQuery_Validate(t *testing.T) {
	q := NewMessageQuery()
	q.Status = StatusArchived
	assert.NoError(t, q.Validate())

	q.Status = "deleted"
	assert.Error(t, q.Validate())

	assert.True(t, IsValidStatus(StatusRead))
	assert.False(t, IsValidStatus("spam"))
}
