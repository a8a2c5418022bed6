package models

import (
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/shopspring/decimal"
)

// TicketModel is the GORM model of the tickets table
type TicketModel struct {
	ID                string          `gorm:"primaryKey;type:uuid"`
	EventID           string          `gorm:"not null;index;type:uuid"`
	BuyerName         string          `gorm:"not null;type:varchar(200)"`
	BuyerEmail        string          `gorm:"not null;index;type:varchar(255)"`
	BuyerPhone        string          `gorm:"not null;type:varchar(32)"`
	Quantity          int             `gorm:"not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency          string          `gorm:"not null;type:varchar(3)"`
	Status            string          `gorm:"not null;index;type:varchar(20);default:pending"`
	MerchantReference string          `gorm:"not null;uniqueIndex;type:varchar(64)"`
	OrderTrackingID   string          `gorm:"index;type:varchar(100)"`
	PaymentMethod     string          `gorm:"type:varchar(100)"`
	ConfirmationCode  string          `gorm:"type:varchar(100)"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return "tickets"
}

// ToDomain converts GORM model to domain entity
func (m *TicketModel) ToDomain() *events.Ticket {
	return &events.Ticket{
		ID:                m.ID,
		EventID:           m.EventID,
		BuyerName:         m.BuyerName,
		BuyerEmail:        m.BuyerEmail,
		BuyerPhone:        m.BuyerPhone,
		Quantity:          m.Quantity,
		Amount:            m.Amount,
		Currency:          m.Currency,
		Status:            m.Status,
		MerchantReference: m.MerchantReference,
		OrderTrackingID:   m.OrderTrackingID,
		PaymentMethod:     m.PaymentMethod,
		ConfirmationCode:  m.ConfirmationCode,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TicketModel) FromDomain(t *events.Ticket) {
	m.ID = t.ID
	m.EventID = t.EventID
	m.BuyerName = t.BuyerName
	m.BuyerEmail = t.BuyerEmail
	m.BuyerPhone = t.BuyerPhone
	m.Quantity = t.Quantity
	m.Amount = t.Amount
	m.Currency = t.Currency
	m.Status = t.Status
	m.MerchantReference = t.MerchantReference
	m.OrderTrackingID = t.OrderTrackingID
	m.PaymentMethod = t.PaymentMethod
	m.ConfirmationCode = t.ConfirmationCode
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}
