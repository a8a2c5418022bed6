package payments

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Merchant reference prefixes identify which table an order belongs to
const (
	TicketReferencePrefix      = "TKT-"
	ApplicationReferencePrefix = "APP-"
)

// Reconciliation targets
const (
	TargetTicket      = "ticket"
	TargetApplication = "application"
)

// NotificationTypeIPNChange is the notification type sent by the gateway on a status change
const NotificationTypeIPNChange = "IPNCHANGE"

// NewMerchantReference returns a unique merchant reference starting with prefix
func NewMerchantReference(prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// TargetForReference returns the target a merchant reference points at, or "" if unknown
func TargetForReference(ref string) string {
	switch {
	case strings.HasPrefix(ref, TicketReferencePrefix):
		return TargetTicket
	case strings.HasPrefix(ref, ApplicationReferencePrefix):
		return TargetApplication
	default:
		return ""
	}
}

// BillingAddress identifies the payer of an order
type BillingAddress struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
}

// OrderRequest is an order submitted to the gateway
type OrderRequest struct {
	MerchantReference string
	Amount            decimal.Decimal
	Currency          string
	Description       string
	Billing           BillingAddress
}

// OrderResponse is the gateway's answer to an order submission
type OrderResponse struct {
	OrderTrackingID   string
	MerchantReference string
	RedirectURL       string
}

// TransactionStatus is the gateway's view of one order
type TransactionStatus struct {
	OrderTrackingID   string
	MerchantReference string
	StatusCode        int
	HasStatusCode     bool
	StatusDescription string
	PaymentMethod     string
	ConfirmationCode  string
	Amount            decimal.Decimal
	Currency          string
	Message           string
}

// SplitName splits a full name into first and last name for the billing address
func SplitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
