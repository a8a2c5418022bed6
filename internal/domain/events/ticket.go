package events

import (
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/listing"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// MaxTicketsPerOrder caps the quantity of one purchase
const MaxTicketsPerOrder = 20

// Ticket entity
type Ticket struct {
	ID                string          `validate:"required,uuid4"`
	EventID           string          `validate:"required,uuid4"`
	BuyerName         string          `validate:"required,min=1,max=200"`
	BuyerEmail        string          `validate:"required,email"`
	BuyerPhone        string          `validate:"required,phone"`
	Quantity          int             `validate:"required,min=1,max=20"`
	Amount            decimal.Decimal `validate:"gt=0"`
	Currency          string          `validate:"required,currency"`
	Status            string          `validate:"required,oneof=pending completed failed reversed invalid"`
	MerchantReference string          `validate:"required,max=64"`
	OrderTrackingID   string          `validate:"max=100"`
	PaymentMethod     string          `validate:"max=100"`
	ConfirmationCode  string          `validate:"max=100"`
	CreatedAt         time.Time       `validate:"required"`
	UpdatedAt         time.Time
}

// Validate for validating Ticket struct
func (t *Ticket) Validate() error {
	return validators.Struct(t)
}

// TicketRequest is a public ticket purchase
type TicketRequest struct {
	EventID    string `validate:"required,uuid4"`
	BuyerName  string `validate:"required,min=1,max=200"`
	BuyerEmail string `validate:"required,email"`
	BuyerPhone string `validate:"required,phone"`
	Quantity   int    `validate:"required,min=1,max=20"`
}

// Validate for validating TicketRequest struct
func (r *TicketRequest) Validate() error {
	return validators.Struct(r)
}

// PurchaseResult is returned after a ticket order was submitted
type PurchaseResult struct {
	Ticket          *Ticket
	RedirectURL     string
	OrderTrackingID string
}

// TicketQuery filters the admin ticket list
type TicketQuery struct {
	EventID    string `validate:"omitempty,uuid4"`
	Status     string `validate:"omitempty,oneof=pending completed failed reversed invalid"`
	BuyerEmail string `validate:"omitempty,email"`
	SortBy     string `validate:"omitempty,oneof=created_at buyer_name amount status"`
	listing.Page
}

// NewTicketQuery creates a TicketQuery with default values
func NewTicketQuery() *TicketQuery {
	return &TicketQuery{}
}

// Validate for validating TicketQuery struct
func (q *TicketQuery) Validate() error {
	return validators.Struct(q)
}
