package app

import (
	"context"
	"fmt"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/hillcrest-schools/school-portal/internal/pkg/sanitize"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// applicationService implements the ApplicationService interface
type applicationService struct {
	repository admissions.ApplicationRepository
	gateway    payments.Gateway
	fee        decimal.Decimal
	currency   string
	logger     logger.Logger
}

// NewApplicationService creates a new instance of ApplicationService.
// A zero fee marks every application as not requiring payment.
func NewApplicationService(repository admissions.ApplicationRepository, gateway payments.Gateway, fee decimal.Decimal, currency string, logger logger.Logger) (admissions.ApplicationService, error) {
	if fee.IsNegative() {
		return nil, fmt.Errorf("application fee must not be negative")
	}
	if fee.IsPositive() && gateway == nil {
		return nil, fmt.Errorf("a payment gateway is required when an application fee is set")
	}

	return &applicationService{
		repository: repository,
		gateway:    gateway,
		fee:        fee,
		currency:   currency,
		logger:     logger,
	}, nil
}

// Submit stores a new application and, when a fee is due, submits a gateway order for it
func (s *applicationService) Submit(ctx context.Context, application *admissions.Application) (*admissions.SubmitResult, error) {
	if application == nil {
		return nil, validators.Invalidf("application is required")
	}

	sanitize.Fields(
		&application.StudentFirstName, &application.StudentLastName, &application.GradeApplyingFor,
		&application.Campus, &application.PreviousSchool, &application.ParentName,
		&application.Address, &application.Notes,
	)

	now := time.Now().UTC()
	application.ID = uuid.NewString()
	application.Status = admissions.StatusSubmitted
	application.CreatedAt = now
	application.UpdatedAt = now
	application.OrderTrackingID = ""
	application.PaymentMethod = ""
	application.ConfirmationCode = ""

	feeDue := s.fee.IsPositive()
	if feeDue {
		application.PaymentStatus = payments.StatusPending
		application.Amount = s.fee
		application.Currency = s.currency
		application.MerchantReference = payments.NewMerchantReference(payments.ApplicationReferencePrefix)
	} else {
		application.PaymentStatus = payments.StatusNotRequired
		application.Amount = decimal.Zero
		application.Currency = ""
		application.MerchantReference = ""
	}

	if err := application.Validate(); err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.logger.Info("Application submitted", "application_id", application.ID, "payment_status", application.PaymentStatus)

	result := &admissions.SubmitResult{Application: application}
	if !feeDue {
		return result, nil
	}

	firstName, lastName := payments.SplitName(application.ParentName)
	order, err := s.gateway.SubmitOrder(ctx, &payments.OrderRequest{
		MerchantReference: application.MerchantReference,
		Amount:            application.Amount,
		Currency:          application.Currency,
		Description:       fmt.Sprintf("Application fee for %s", application.StudentName()),
		Billing: payments.BillingAddress{
			Email:     application.ParentEmail,
			Phone:     application.ParentPhone,
			FirstName: firstName,
			LastName:  lastName,
		},
	})
	if err != nil {
		s.logger.Error("Gateway order failed, application stays pending", "application_id", application.ID, "error", err)
		return nil, fmt.Errorf("failed to submit application fee order: %w", err)
	}

	if err := s.repository.UpdatePayment(ctx, application.ID, payments.PaymentUpdate{OrderTrackingID: order.OrderTrackingID}); err != nil {
		return nil, fmt.Errorf("failed to store order tracking id: %w", err)
	}
	application.OrderTrackingID = order.OrderTrackingID

	result.RedirectURL = order.RedirectURL
	result.OrderTrackingID = order.OrderTrackingID
	return result, nil
}

// List retrieves applications considering a query filter when set
func (s *applicationService) List(ctx context.Context, query *admissions.ApplicationQuery) ([]*admissions.Application, error) {
	if query == nil {
		query = admissions.NewApplicationQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	applications, err := s.repository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// GetByID retrieves an application by ID
func (s *applicationService) GetByID(ctx context.Context, id string) (*admissions.Application, error) {
	application, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application %s: %w", id, err)
	}
	return application, nil
}

// UpdateStatus changes the review status of an application
func (s *applicationService) UpdateStatus(ctx context.Context, id, status string) (*admissions.Application, error) {
	if !admissions.IsValidStatus(status) {
		return nil, validators.Invalidf("unknown application status %q", status)
	}

	if err := s.repository.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update application %s: %w", id, err)
	}

	application, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application %s: %w", id, err)
	}

	s.logger.Info("Application status changed", "application_id", id, "status", status)
	return application, nil
}

// DeleteByID deletes an application by ID
func (s *applicationService) DeleteByID(ctx context.Context, id string) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete application %s: %w", id, err)
	}
	s.logger.Info("Application deleted", "application_id", id)
	return nil
}
