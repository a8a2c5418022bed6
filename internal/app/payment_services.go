package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/hillcrest-schools/school-portal/internal/pkg/metrics"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
)

// paymentService implements the PaymentService interface
type paymentService struct {
	gateway      payments.Gateway
	tickets      events.TicketRepository
	applications admissions.ApplicationRepository
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(gateway payments.Gateway, tickets events.TicketRepository, applications admissions.ApplicationRepository, m *metrics.Metrics, logger logger.Logger) (payments.PaymentService, error) {
	if gateway == nil {
		return nil, fmt.Errorf("payment gateway is required")
	}
	return &paymentService{
		gateway:      gateway,
		tickets:      tickets,
		applications: applications,
		metrics:      m,
		logger:       logger,
	}, nil
}

// Reconcile fetches the gateway status of orderTrackingID and writes it onto the matching ticket or application.
// Records are matched by tracking id first, tickets before applications, then by the merchant reference prefix.
func (s *paymentService) Reconcile(ctx context.Context, orderTrackingID, merchantReference string) (*payments.ReconcileResult, error) {
	if orderTrackingID == "" {
		return nil, validators.Invalid(payments.ErrMissingTrackingID)
	}

	status, err := s.gateway.GetTransactionStatus(ctx, orderTrackingID)
	if err != nil {
		s.observe("unknown", "gateway_error")
		return nil, fmt.Errorf("failed to get transaction status of %s: %w", orderTrackingID, err)
	}

	localStatus := payments.MapStatus(status)
	if merchantReference == "" {
		merchantReference = status.MerchantReference
	}

	result, err := s.locate(ctx, orderTrackingID, merchantReference)
	if err != nil {
		if errors.Is(err, payments.ErrNotFound) {
			s.observe("none", "not_found")
			s.logger.Warn("No payment record matches notification", "order_tracking_id", orderTrackingID, "merchant_reference", merchantReference)
		}
		return nil, err
	}

	update := payments.PaymentUpdate{
		Status:           localStatus,
		OrderTrackingID:  orderTrackingID,
		PaymentMethod:    status.PaymentMethod,
		ConfirmationCode: status.ConfirmationCode,
	}

	switch result.Target {
	case payments.TargetTicket:
		err = s.tickets.UpdatePayment(ctx, result.RecordID, update)
	case payments.TargetApplication:
		err = s.applications.UpdatePayment(ctx, result.RecordID, update)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s %s: %w", result.Target, result.RecordID, err)
	}

	if payments.IsFinal(result.Status) && result.Status != localStatus {
		s.logger.Warn("Overwriting final payment status",
			"target", result.Target,
			"record_id", result.RecordID,
			"previous_status", result.Status,
			"status", localStatus)
	}

	result.Status = localStatus
	result.GatewayStatus = status.StatusDescription
	result.OrderTrackingID = orderTrackingID
	if status.PaymentMethod != "" {
		result.PaymentMethod = status.PaymentMethod
	}
	if status.ConfirmationCode != "" {
		result.ConfirmationCode = status.ConfirmationCode
	}
	if result.Amount.IsZero() && !status.Amount.IsZero() {
		result.Amount = status.Amount
		result.Currency = status.Currency
	}

	s.observe(result.Target, localStatus)
	s.logger.Info("Payment reconciled",
		"target", result.Target,
		"record_id", result.RecordID,
		"status", localStatus,
		"gateway_status", status.StatusDescription,
		"order_tracking_id", orderTrackingID)

	return result, nil
}

// locate finds the record an order belongs to and returns it as a partially filled result
// carrying the record's current payment status
func (s *paymentService) locate(ctx context.Context, orderTrackingID, merchantReference string) (*payments.ReconcileResult, error) {
	ticket, err := s.tickets.GetByOrderTrackingID(ctx, orderTrackingID)
	if err == nil {
		return ticketResult(ticket), nil
	}
	if !errors.Is(err, events.ErrTicketNotFound) {
		return nil, fmt.Errorf("failed to look up ticket by tracking id: %w", err)
	}

	application, err := s.applications.GetByOrderTrackingID(ctx, orderTrackingID)
	if err == nil {
		return applicationResult(application), nil
	}
	if !errors.Is(err, admissions.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up application by tracking id: %w", err)
	}

	switch payments.TargetForReference(merchantReference) {
	case payments.TargetTicket:
		ticket, err := s.tickets.GetByMerchantReference(ctx, merchantReference)
		if err == nil {
			return ticketResult(ticket), nil
		}
		if !errors.Is(err, events.ErrTicketNotFound) {
			return nil, fmt.Errorf("failed to look up ticket by merchant reference: %w", err)
		}
	case payments.TargetApplication:
		application, err := s.applications.GetByMerchantReference(ctx, merchantReference)
		if err == nil {
			return applicationResult(application), nil
		}
		if !errors.Is(err, admissions.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up application by merchant reference: %w", err)
		}
	}

	return nil, fmt.Errorf("order %s (reference %q): %w", orderTrackingID, merchantReference, payments.ErrNotFound)
}

// RegisterIPN registers url as the gateway notification endpoint
func (s *paymentService) RegisterIPN(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", validators.Invalidf("ipn url is required")
	}
	ipnID, err := s.gateway.RegisterIPN(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to register ipn url: %w", err)
	}
	return ipnID, nil
}

func (s *paymentService) observe(target, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Reconciliations.WithLabelValues(target, status).Inc()
}

func ticketResult(ticket *events.Ticket) *payments.ReconcileResult {
	return &payments.ReconcileResult{
		Target:            payments.TargetTicket,
		RecordID:          ticket.ID,
		Status:            ticket.Status,
		Amount:            ticket.Amount,
		Currency:          ticket.Currency,
		MerchantReference: ticket.MerchantReference,
		PaymentMethod:     ticket.PaymentMethod,
		ConfirmationCode:  ticket.ConfirmationCode,
	}
}

func applicationResult(application *admissions.Application) *payments.ReconcileResult {
	return &payments.ReconcileResult{
		Target:            payments.TargetApplication,
		RecordID:          application.ID,
		Status:            application.PaymentStatus,
		Amount:            application.Amount,
		Currency:          application.Currency,
		MerchantReference: application.MerchantReference,
		PaymentMethod:     application.PaymentMethod,
		ConfirmationCode:  application.ConfirmationCode,
	}
}
