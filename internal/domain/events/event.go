// Package events models school events and the tickets sold for them.
package events

import (
	"errors"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/listing"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when an event does not exist
	ErrNotFound = errors.New("event not found")
	// ErrTicketNotFound is returned when a ticket does not exist
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrNotTicketed is returned when tickets are requested for a free event
	ErrNotTicketed = errors.New("event is not ticketed")
	// ErrSoldOut is returned when a purchase would exceed the event capacity
	ErrSoldOut = errors.New("not enough tickets left")
)

// Event entity
type Event struct {
	ID          string     `validate:"required,uuid4"`
	Title       string     `validate:"required,min=1,max=200"`
	Description string     `validate:"max=5000"`
	Location    string     `validate:"max=200"`
	StartsAt    time.Time  `validate:"required"`
	EndsAt      *time.Time `validate:"omitempty"`
	ImageURL    string     `validate:"omitempty,url"`
	IsTicketed  bool
	TicketPrice decimal.Decimal `validate:"gte=0"`
	Currency    string          `validate:"omitempty,currency"`
	Capacity    int             `validate:"gte=0"`
	CreatedAt   time.Time       `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating Event struct
func (e *Event) Validate() error {
	if err := validators.Struct(e); err != nil {
		return err
	}
	if e.EndsAt != nil && e.EndsAt.Before(e.StartsAt) {
		return validators.Invalidf("ends_at must not precede starts_at")
	}
	if e.IsTicketed {
		if !e.TicketPrice.IsPositive() {
			return validators.Invalidf("ticketed event requires a ticket_price greater than zero")
		}
		if e.Currency == "" {
			return validators.Invalidf("ticketed event requires a currency")
		}
	}
	return nil
}

// EventQuery filters the event list
type EventQuery struct {
	Upcoming   bool
	IsTicketed *bool
	// Now anchors the Upcoming filter; the service sets it
	Now    time.Time
	SortBy string `validate:"omitempty,oneof=starts_at created_at title"`
	listing.Page
}

// NewEventQuery creates an EventQuery with default values
func NewEventQuery() *EventQuery {
	return &EventQuery{}
}

// Validate for validating EventQuery struct
func (q *EventQuery) Validate() error {
	return validators.Struct(q)
}
