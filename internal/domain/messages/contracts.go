package messages

import "context"

// MessageService defines the contact inbox
type MessageService interface {
	// Create strips markup from the message and stores it as unread.
	Create(ctx context.Context, message *Message) (*Message, error)
	List(ctx context.Context, query *MessageQuery) ([]*Message, error)
	UpdateStatus(ctx context.Context, id, status string) (*Message, error)
	DeleteByID(ctx context.Context, id string) error
}

// MessageRepository defines the interface for Message persistence
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	List(ctx context.Context, query *MessageQuery) ([]*Message, error)
	GetByID(ctx context.Context, id string) (*Message, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteByID(ctx context.Context, id string) error
}
