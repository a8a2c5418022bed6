//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"

	"github.com/stretchr/testify/mock"
)

// MockApplicationRepository is a mock implementation of ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *admissions.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) List(ctx context.Context, query *admissions.ApplicationQuery) ([]*admissions.Application, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*admissions.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id string) (*admissions.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admissions.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByOrderTrackingID(ctx context.Context, orderTrackingID string) (*admissions.Application, error) {
	args := m.Called(ctx, orderTrackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admissions.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByMerchantReference(ctx context.Context, merchantReference string) (*admissions.Application, error) {
	args := m.Called(ctx, merchantReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admissions.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockApplicationRepository) UpdatePayment(ctx context.Context, id string, update payments.PaymentUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockApplicationRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockJobApplicationRepository is a mock implementation of JobApplicationRepository
type MockJobApplicationRepository struct {
	mock.Mock
}

func (m *MockJobApplicationRepository) Create(ctx context.Context, application *careers.JobApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockJobApplicationRepository) List(ctx context.Context, query *careers.JobApplicationQuery) ([]*careers.JobApplication, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*careers.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) GetByID(ctx context.Context, id string) (*careers.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*careers.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) Update(ctx context.Context, application *careers.JobApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockJobApplicationRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*events.Event), args.Error(1)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*events.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *events.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) List(ctx context.Context, query *events.TicketQuery) ([]*events.Ticket, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*events.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id string) (*events.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetByOrderTrackingID(ctx context.Context, orderTrackingID string) (*events.Ticket, error) {
	args := m.Called(ctx, orderTrackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetByMerchantReference(ctx context.Context, merchantReference string) (*events.Ticket, error) {
	args := m.Called(ctx, merchantReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Ticket), args.Error(1)
}

func (m *MockTicketRepository) CountReserved(ctx context.Context, eventID string) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockTicketRepository) UpdatePayment(ctx context.Context, id string, update payments.PaymentUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *messages.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) List(ctx context.Context, query *messages.MessageQuery) ([]*messages.Message, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*messages.Message), args.Error(1)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id string) (*messages.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.Message), args.Error(1)
}

func (m *MockMessageRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockMessageRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGalleryRepository is a mock implementation of GalleryRepository
type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Create(ctx context.Context, image *media.GalleryImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockGalleryRepository) List(ctx context.Context, query *media.MediaQuery) ([]*media.GalleryImage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*media.GalleryImage), args.Error(1)
}

func (m *MockGalleryRepository) GetByID(ctx context.Context, id string) (*media.GalleryImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.GalleryImage), args.Error(1)
}

func (m *MockGalleryRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResourceRepository is a mock implementation of ResourceRepository
type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) Create(ctx context.Context, resource *media.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) List(ctx context.Context, query *media.MediaQuery) ([]*media.Resource, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*media.Resource), args.Error(1)
}

func (m *MockResourceRepository) GetByID(ctx context.Context, id string) (*media.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Resource), args.Error(1)
}

func (m *MockResourceRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBlobConnector is a mock implementation of BlobConnector
type MockBlobConnector struct {
	mock.Mock
}

func (m *MockBlobConnector) Upload(ctx context.Context, data []byte, blobName, contentType string) (*media.StoredObject, error) {
	args := m.Called(ctx, data, blobName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.StoredObject), args.Error(1)
}

func (m *MockBlobConnector) Delete(ctx context.Context, blobName string) error {
	args := m.Called(ctx, blobName)
	return args.Error(0)
}

func (m *MockBlobConnector) URL(blobName string) string {
	args := m.Called(blobName)
	return args.String(0)
}

// MockGateway is a mock implementation of the payment Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SubmitOrder(ctx context.Context, order *payments.OrderRequest) (*payments.OrderResponse, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.OrderResponse), args.Error(1)
}

func (m *MockGateway) GetTransactionStatus(ctx context.Context, orderTrackingID string) (*payments.TransactionStatus, error) {
	args := m.Called(ctx, orderTrackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.TransactionStatus), args.Error(1)
}

func (m *MockGateway) RegisterIPN(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}

// MockContentConnector is a mock implementation of the content Connector
type MockContentConnector struct {
	mock.Mock
}

func (m *MockContentConnector) CreateDocument(ctx context.Context, docType string, fields map[string]interface{}) (string, error) {
	args := m.Called(ctx, docType, fields)
	return args.String(0), args.Error(1)
}

func (m *MockContentConnector) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}
