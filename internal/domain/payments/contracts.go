package payments

import (
	"context"
	"time"
)

// PaymentService reconciles gateway notifications with local records.
type PaymentService interface {
	// Reconcile asks the gateway for the status of orderTrackingID and writes it onto the
	// matching ticket or application. merchantReference is only used when no record
	// carries the tracking id.
	Reconcile(ctx context.Context, orderTrackingID, merchantReference string) (*ReconcileResult, error)

	// RegisterIPN registers url as the notification endpoint and returns the ipn id.
	RegisterIPN(ctx context.Context, url string) (string, error)
}

// Gateway is the payment gateway REST API.
type Gateway interface {
	// SubmitOrder creates an order and returns the hosted checkout redirect URL.
	SubmitOrder(ctx context.Context, order *OrderRequest) (*OrderResponse, error)
	// GetTransactionStatus returns the current status of an order.
	GetTransactionStatus(ctx context.Context, orderTrackingID string) (*TransactionStatus, error)
	// RegisterIPN registers a notification URL and returns its ipn id.
	RegisterIPN(ctx context.Context, url string) (string, error)
}

// TokenStore caches the gateway bearer token between requests
type TokenStore interface {
	// Get returns the cached token, or ok=false when none is valid.
	Get(ctx context.Context) (token string, ok bool, err error)
	// Set caches token until expiresAt.
	Set(ctx context.Context, token string, expiresAt time.Time) error
	// Clear drops the cached token so the next Get misses.
	Clear(ctx context.Context) error
}
