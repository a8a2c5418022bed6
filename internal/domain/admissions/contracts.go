package admissions

import (
	"context"

	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
)

// SubmitResult is returned after a public application submission
type SubmitResult struct {
	Application     *Application
	RedirectURL     string
	OrderTrackingID string
}

// ApplicationService defines the admission workflows
type ApplicationService interface {
	// Submit stores a new application. When an application fee is configured it also
	// submits a gateway order and returns the checkout redirect URL.
	Submit(ctx context.Context, application *Application) (*SubmitResult, error)
	// List retrieves applications considering a query filter when set.
	List(ctx context.Context, query *ApplicationQuery) ([]*Application, error)
	// GetByID retrieves an application by ID.
	GetByID(ctx context.Context, id string) (*Application, error)
	// UpdateStatus changes the review status of an application.
	UpdateStatus(ctx context.Context, id, status string) (*Application, error)
	// DeleteByID deletes an application by ID.
	DeleteByID(ctx context.Context, id string) error
}

// ApplicationRepository defines the interface for Application persistence
type ApplicationRepository interface {
	Create(ctx context.Context, application *Application) error
	List(ctx context.Context, query *ApplicationQuery) ([]*Application, error)
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByOrderTrackingID(ctx context.Context, orderTrackingID string) (*Application, error)
	GetByMerchantReference(ctx context.Context, merchantReference string) (*Application, error)
	// UpdateStatus writes only the review status, leaving the payment columns to UpdatePayment.
	UpdateStatus(ctx context.Context, id, status string) error
	// UpdatePayment writes the non-empty fields of update onto the application's payment columns.
	UpdatePayment(ctx context.Context, id string, update payments.PaymentUpdate) error
	DeleteByID(ctx context.Context, id string) error
}
