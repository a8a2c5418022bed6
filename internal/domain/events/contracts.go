package events

import (
	"context"

	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
)

// EventService defines event administration and listing
type EventService interface {
	Create(ctx context.Context, event *Event) (*Event, error)
	List(ctx context.Context, query *EventQuery) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	// Update replaces the editable fields of the event with ID event.ID.
	Update(ctx context.Context, event *Event) (*Event, error)
	DeleteByID(ctx context.Context, id string) error
}

// TicketService defines ticket sales
type TicketService interface {
	// Purchase creates a pending ticket priced at ticket_price × quantity and submits the order to the gateway.
	Purchase(ctx context.Context, request *TicketRequest) (*PurchaseResult, error)
	GetByID(ctx context.Context, id string) (*Ticket, error)
	List(ctx context.Context, query *TicketQuery) ([]*Ticket, error)
}

// EventRepository defines the interface for Event persistence
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context, query *EventQuery) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, event *Event) error
	DeleteByID(ctx context.Context, id string) error
}

// TicketRepository defines the interface for Ticket persistence
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	List(ctx context.Context, query *TicketQuery) ([]*Ticket, error)
	GetByID(ctx context.Context, id string) (*Ticket, error)
	GetByOrderTrackingID(ctx context.Context, orderTrackingID string) (*Ticket, error)
	GetByMerchantReference(ctx context.Context, merchantReference string) (*Ticket, error)
	// CountReserved sums the quantity of pending and completed tickets of an event.
	CountReserved(ctx context.Context, eventID string) (int, error)
	// UpdatePayment writes the non-empty fields of update onto the ticket.
	UpdatePayment(ctx context.Context, id string, update payments.PaymentUpdate) error
}
