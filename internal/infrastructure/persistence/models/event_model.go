package models

import (
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/shopspring/decimal"
)

// EventModel is the GORM model of the events table
type EventModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"not null;type:varchar(200)"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(200)"`
	StartsAt    time.Time `gorm:"not null;index"`
	EndsAt      *time.Time
	ImageURL    string          `gorm:"type:varchar(1024)"`
	IsTicketed  bool            `gorm:"not null;index;default:false"`
	TicketPrice decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Currency    string          `gorm:"type:varchar(3)"`
	Capacity    int             `gorm:"not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts GORM model to domain entity
func (m *EventModel) ToDomain() *events.Event {
	return &events.Event{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		StartsAt:    m.StartsAt,
		EndsAt:      m.EndsAt,
		ImageURL:    m.ImageURL,
		IsTicketed:  m.IsTicketed,
		TicketPrice: m.TicketPrice,
		Currency:    m.Currency,
		Capacity:    m.Capacity,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EventModel) FromDomain(e *events.Event) {
	m.ID = e.ID
	m.Title = e.Title
	m.Description = e.Description
	m.Location = e.Location
	m.StartsAt = e.StartsAt
	m.EndsAt = e.EndsAt
	m.ImageURL = e.ImageURL
	m.IsTicketed = e.IsTicketed
	m.TicketPrice = e.TicketPrice
	m.Currency = e.Currency
	m.Capacity = e.Capacity
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}
