package payments

import (
	"strings"
)

// Local payment statuses stored in tickets.status and applications.payment_status
const (
	StatusPending     = "pending"
	StatusCompleted   = "completed"
	StatusFailed      = "failed"
	StatusReversed    = "reversed"
	StatusInvalid     = "invalid"
	StatusNotRequired = "not_required"
)

// Gateway status codes reported by GetTransactionStatus
const (
	GatewayCodeInvalid   = 0
	GatewayCodeCompleted = 1
	GatewayCodeFailed    = 2
	GatewayCodeReversed  = 3
)

// Statuses lists every local payment status
var Statuses = []string{StatusPending, StatusCompleted, StatusFailed, StatusReversed, StatusInvalid, StatusNotRequired}

// IsValidStatus reports whether s is a known local payment status
func IsValidStatus(s string) bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// MapStatus translates a gateway transaction status into a local payment status.
// A recognised description wins over the status code.
func MapStatus(ts *TransactionStatus) string {
	if ts == nil {
		return StatusPending
	}

	switch strings.ToLower(strings.TrimSpace(ts.StatusDescription)) {
	case "completed":
		return StatusCompleted
	case "failed":
		return StatusFailed
	case "reversed":
		return StatusReversed
	case "invalid":
		return StatusInvalid
	}

	if !ts.HasStatusCode {
		return StatusPending
	}

	switch ts.StatusCode {
	case GatewayCodeCompleted:
		return StatusCompleted
	case GatewayCodeFailed:
		return StatusFailed
	case GatewayCodeReversed:
		return StatusReversed
	case GatewayCodeInvalid:
		return StatusInvalid
	default:
		return StatusPending
	}
}

// IsFinal reports whether no further gateway transition is expected for status
func IsFinal(status string) bool {
	switch status {
	case StatusCompleted, StatusFailed, StatusReversed, StatusInvalid, StatusNotRequired:
		return true
	default:
		return false
	}
}
