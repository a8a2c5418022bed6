// Package messages models contact form messages.
package messages

import (
	"errors"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/listing"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
)

// Message statuses
const (
	StatusUnread   = "unread"
	StatusRead     = "read"
	StatusArchived = "archived"
)

// ErrNotFound is returned when a message does not exist
var ErrNotFound = errors.New("message not found")

// Message entity
type Message struct {
	ID        string    `validate:"required,uuid4"`
	Name      string    `validate:"required,min=1,max=200"`
	Email     string    `validate:"required,email"`
	Phone     string    `validate:"omitempty,phone"`
	Subject   string    `validate:"required,min=1,max=200"`
	Body      string    `validate:"required,min=1,max=5000"`
	Status    string    `validate:"required,oneof=unread read archived"`
	CreatedAt time.Time `validate:"required"`
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	return validators.Struct(m)
}

// IsValidStatus reports whether s is a known message status
func IsValidStatus(s string) bool {
	return s == StatusUnread || s == StatusRead || s == StatusArchived
}

// MessageQuery filters the admin inbox
type MessageQuery struct {
	Status string `validate:"omitempty,oneof=unread read archived"`
	SortBy string `validate:"omitempty,oneof=created_at name subject"`
	listing.Page
}

// NewMessageQuery creates a MessageQuery with default values
func NewMessageQuery() *MessageQuery {
	return &MessageQuery{}
}

// Validate for validating MessageQuery struct
func (q *MessageQuery) Validate() error {
	return validators.Struct(q)
}
