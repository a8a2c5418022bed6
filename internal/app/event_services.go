package app

import (
	"context"
	"fmt"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/hillcrest-schools/school-portal/internal/pkg/sanitize"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// eventService implements the EventService interface
type eventService struct {
	repository events.EventRepository
	now        func() time.Time
	logger     logger.Logger
}

// NewEventService creates a new instance of EventService
func NewEventService(repository events.EventRepository, logger logger.Logger) (events.EventService, error) {
	return &eventService{
		repository: repository,
		now:        time.Now,
		logger:     logger,
	}, nil
}

// Create validates and stores a new event
func (s *eventService) Create(ctx context.Context, event *events.Event) (*events.Event, error) {
	if event == nil {
		return nil, validators.Invalidf("event is required")
	}

	now := s.now().UTC()
	event.ID = uuid.NewString()
	event.CreatedAt = now
	event.UpdatedAt = now
	normalizeEvent(event)

	if err := event.Validate(); err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("Event created", "event_id", event.ID, "title", event.Title, "ticketed", event.IsTicketed)
	return event, nil
}

// List retrieves events considering a query filter when set
func (s *eventService) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, error) {
	if query == nil {
		query = events.NewEventQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	query.Now = s.now().UTC()

	list, err := s.repository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return list, nil
}

// GetByID retrieves an event by ID
func (s *eventService) GetByID(ctx context.Context, id string) (*events.Event, error) {
	event, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", id, err)
	}
	return event, nil
}

// Update replaces the editable fields of an existing event
func (s *eventService) Update(ctx context.Context, event *events.Event) (*events.Event, error) {
	if event == nil {
		return nil, validators.Invalidf("event is required")
	}

	existing, err := s.repository.GetByID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", event.ID, err)
	}

	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = s.now().UTC()
	normalizeEvent(event)

	if err := event.Validate(); err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event %s: %w", event.ID, err)
	}

	s.logger.Info("Event updated", "event_id", event.ID)
	return event, nil
}

// DeleteByID deletes an event by ID
func (s *eventService) DeleteByID(ctx context.Context, id string) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	s.logger.Info("Event deleted", "event_id", id)
	return nil
}

// normalizeEvent stores times in UTC and clears the price of free events
func normalizeEvent(event *events.Event) {
	sanitize.Fields(&event.Title, &event.Description, &event.Location)
	event.StartsAt = event.StartsAt.UTC()
	if event.EndsAt != nil {
		endsAt := event.EndsAt.UTC()
		event.EndsAt = &endsAt
	}
	if !event.IsTicketed {
		event.TicketPrice = decimal.Zero
		event.Currency = ""
	}
}

// ticketService implements the TicketService interface
type ticketService struct {
	tickets events.TicketRepository
	events  events.EventRepository
	gateway payments.Gateway
	logger  logger.Logger
}

// NewTicketService creates a new instance of TicketService
func NewTicketService(tickets events.TicketRepository, eventRepository events.EventRepository, gateway payments.Gateway, logger logger.Logger) (events.TicketService, error) {
	if gateway == nil {
		return nil, fmt.Errorf("a payment gateway is required to sell tickets")
	}
	return &ticketService{
		tickets: tickets,
		events:  eventRepository,
		gateway: gateway,
		logger:  logger,
	}, nil
}

// Purchase creates a pending ticket and submits its order to the gateway
func (s *ticketService) Purchase(ctx context.Context, request *events.TicketRequest) (*events.PurchaseResult, error) {
	if request == nil {
		return nil, validators.Invalidf("ticket request is required")
	}
	sanitize.Fields(&request.BuyerName)
	if err := request.Validate(); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, request.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", request.EventID, err)
	}
	if !event.IsTicketed {
		return nil, fmt.Errorf("%w: %w", validators.ErrValidation, events.ErrNotTicketed)
	}

	if event.Capacity > 0 {
		reserved, err := s.tickets.CountReserved(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count tickets of event %s: %w", event.ID, err)
		}
		if reserved+request.Quantity > event.Capacity {
			return nil, fmt.Errorf("%w: %d of %d left", events.ErrSoldOut, max(event.Capacity-reserved, 0), event.Capacity)
		}
	}

	now := time.Now().UTC()
	ticket := &events.Ticket{
		ID:                uuid.NewString(),
		EventID:           event.ID,
		BuyerName:         request.BuyerName,
		BuyerEmail:        request.BuyerEmail,
		BuyerPhone:        request.BuyerPhone,
		Quantity:          request.Quantity,
		Amount:            event.TicketPrice.Mul(decimal.NewFromInt(int64(request.Quantity))),
		Currency:          event.Currency,
		Status:            payments.StatusPending,
		MerchantReference: payments.NewMerchantReference(payments.TicketReferencePrefix),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := ticket.Validate(); err != nil {
		return nil, err
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	firstName, lastName := payments.SplitName(ticket.BuyerName)
	order, err := s.gateway.SubmitOrder(ctx, &payments.OrderRequest{
		MerchantReference: ticket.MerchantReference,
		Amount:            ticket.Amount,
		Currency:          ticket.Currency,
		Description:       fmt.Sprintf("%d x %s", ticket.Quantity, event.Title),
		Billing: payments.BillingAddress{
			Email:     ticket.BuyerEmail,
			Phone:     ticket.BuyerPhone,
			FirstName: firstName,
			LastName:  lastName,
		},
	})
	if err != nil {
		// the gateway never saw this reference, so no notification can settle the ticket
		if failErr := s.tickets.UpdatePayment(ctx, ticket.ID, payments.PaymentUpdate{Status: payments.StatusFailed}); failErr != nil {
			s.logger.Error("Failed to release ticket after gateway error", "ticket_id", ticket.ID, "error", failErr)
		}
		s.logger.Error("Gateway order failed", "ticket_id", ticket.ID, "error", err)
		return nil, fmt.Errorf("failed to submit ticket order: %w", err)
	}

	if err := s.tickets.UpdatePayment(ctx, ticket.ID, payments.PaymentUpdate{OrderTrackingID: order.OrderTrackingID}); err != nil {
		return nil, fmt.Errorf("failed to store order tracking id: %w", err)
	}
	ticket.OrderTrackingID = order.OrderTrackingID

	s.logger.Info("Ticket order submitted", "ticket_id", ticket.ID, "event_id", event.ID, "quantity", ticket.Quantity, "amount", ticket.Amount.String())

	return &events.PurchaseResult{
		Ticket:          ticket,
		RedirectURL:     order.RedirectURL,
		OrderTrackingID: order.OrderTrackingID,
	}, nil
}

// GetByID retrieves a ticket by ID
func (s *ticketService) GetByID(ctx context.Context, id string) (*events.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket %s: %w", id, err)
	}
	return ticket, nil
}

// List retrieves tickets considering a query filter when set
func (s *ticketService) List(ctx context.Context, query *events.TicketQuery) ([]*events.Ticket, error) {
	if query == nil {
		query = events.NewTicketQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tickets, err := s.tickets.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}
