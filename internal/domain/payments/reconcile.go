package payments

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no ticket or application matches a notification
var ErrNotFound = errors.New("no payment record matches the order")

// ErrMissingTrackingID is returned when a notification carries no order tracking id
var ErrMissingTrackingID = errors.New("order tracking id is required")

// Notification is an IPN or callback received from the gateway
type Notification struct {
	OrderTrackingID        string `form:"OrderTrackingId" json:"OrderTrackingId"`
	OrderMerchantReference string `form:"OrderMerchantReference" json:"OrderMerchantReference"`
	OrderNotificationType  string `form:"OrderNotificationType" json:"OrderNotificationType"`
}

// Acknowledgement is the body the gateway expects in reply to an IPN
type Acknowledgement struct {
	OrderNotificationType  string `json:"orderNotificationType"`
	OrderTrackingID        string `json:"orderTrackingId"`
	OrderMerchantReference string `json:"orderMerchantReference"`
	Status                 int    `json:"status"`
}

// Ack builds the acknowledgement for n carrying status (200 or 500)
func (n Notification) Ack(status int) Acknowledgement {
	return Acknowledgement{
		OrderNotificationType:  n.OrderNotificationType,
		OrderTrackingID:        n.OrderTrackingID,
		OrderMerchantReference: n.OrderMerchantReference,
		Status:                 status,
	}
}

// PaymentUpdate is written onto the matched ticket or application
type PaymentUpdate struct {
	Status           string
	OrderTrackingID  string
	PaymentMethod    string
	ConfirmationCode string
}

// ReconcileResult describes the record a reconciliation touched
type ReconcileResult struct {
	Target            string          `json:"target"`
	RecordID          string          `json:"record_id"`
	Status            string          `json:"status"`
	GatewayStatus     string          `json:"gateway_status"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	MerchantReference string          `json:"merchant_reference"`
	OrderTrackingID   string          `json:"order_tracking_id"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	ConfirmationCode  string          `json:"confirmation_code,omitempty"`
}
