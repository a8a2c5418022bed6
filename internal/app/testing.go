//go:build integration
// +build integration

package app

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/infrastructure/persistence"
	"github.com/hillcrest-schools/school-portal/internal/pkg/metrics"
	"github.com/hillcrest-schools/school-portal/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestApplicationFee is charged by the application service built in SetupTestServices
var TestApplicationFee = decimal.NewFromInt(2500)

// stubGateway records submitted orders and answers status queries from a fixed table
type stubGateway struct {
	mu        sync.Mutex
	orders    map[string]*payments.OrderRequest
	statuses  map[string]*payments.TransactionStatus
	next      int
	submitErr error
}

func newStubGateway() *stubGateway {
	return &stubGateway{
		orders:   map[string]*payments.OrderRequest{},
		statuses: map[string]*payments.TransactionStatus{},
	}
}

func (g *stubGateway) SubmitOrder(_ context.Context, order *payments.OrderRequest) (*payments.OrderResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.submitErr != nil {
		return nil, g.submitErr
	}

	g.next++
	trackingID := fmt.Sprintf("trk-%d", g.next)
	g.orders[trackingID] = order
	g.statuses[trackingID] = &payments.TransactionStatus{
		OrderTrackingID:   trackingID,
		MerchantReference: order.MerchantReference,
		Amount:            order.Amount,
		Currency:          order.Currency,
	}
	return &payments.OrderResponse{
		OrderTrackingID:   trackingID,
		MerchantReference: order.MerchantReference,
		RedirectURL:       "https://pay.example.com/?OrderTrackingId=" + trackingID,
	}, nil
}

func (g *stubGateway) GetTransactionStatus(_ context.Context, orderTrackingID string) (*payments.TransactionStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	status, ok := g.statuses[orderTrackingID]
	if !ok {
		return nil, fmt.Errorf("unknown order tracking id %s", orderTrackingID)
	}
	copied := *status
	return &copied, nil
}

func (g *stubGateway) RegisterIPN(_ context.Context, _ string) (string, error) {
	return "ipn-test", nil
}

// FailOrders makes SubmitOrder return err until it is called again with nil
func (g *stubGateway) FailOrders(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.submitErr = err
}

// Settle makes the gateway report code for orderTrackingID from now on
func (g *stubGateway) Settle(orderTrackingID string, code int, description, method, confirmation string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	status, ok := g.statuses[orderTrackingID]
	if !ok {
		status = &payments.TransactionStatus{OrderTrackingID: orderTrackingID}
		g.statuses[orderTrackingID] = status
	}
	status.StatusCode = code
	status.HasStatusCode = true
	status.StatusDescription = description
	status.PaymentMethod = method
	status.ConfirmationCode = confirmation
}

// TestServices holds the application services and dependencies for integration tests
type TestServices struct {
	ApplicationService admissions.ApplicationService
	EventService       events.EventService
	TicketService      events.TicketService
	MessageService     messages.MessageService
	PaymentService     payments.PaymentService

	Gateway   *stubGateway
	Metrics   *metrics.Metrics
	DBContext *persistence.TestContext
}

// SetupTestServices wires the services onto a migrated database and a stub gateway
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	gateway := newStubGateway()
	m := metrics.NewMetrics()

	applicationService, err := NewApplicationService(dbContext.ApplicationRepo, gateway, TestApplicationFee, "KES", logger)
	require.NoError(t, err, "Failed to create application service")

	eventService, err := NewEventService(dbContext.EventRepo, logger)
	require.NoError(t, err, "Failed to create event service")

	ticketService, err := NewTicketService(dbContext.TicketRepo, dbContext.EventRepo, gateway, logger)
	require.NoError(t, err, "Failed to create ticket service")

	messageService, err := NewMessageService(dbContext.MessageRepo, logger)
	require.NoError(t, err, "Failed to create message service")

	paymentService, err := NewPaymentService(gateway, dbContext.TicketRepo, dbContext.ApplicationRepo, m, logger)
	require.NoError(t, err, "Failed to create payment service")

	return &TestServices{
		ApplicationService: applicationService,
		EventService:       eventService,
		TicketService:      ticketService,
		MessageService:     messageService,
		PaymentService:     paymentService,
		Gateway:            gateway,
		Metrics:            m,
		DBContext:          dbContext,
	}
}
