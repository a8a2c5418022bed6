//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/auth"
	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, credentials *auth.Credentials) (*auth.Token, error) {
	args := m.Called(ctx, credentials)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Token), args.Error(1)
}

func (m *MockAuthService) Verify(token string) (*auth.Principal, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Principal), args.Error(1)
}

// MockApplicationService is a mock implementation of ApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, application *admissions.Application) (*admissions.SubmitResult, error) {
	args := m.Called(ctx, application)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admissions.SubmitResult), args.Error(1)
}

func (m *MockApplicationService) List(ctx context.Context, query *admissions.ApplicationQuery) ([]*admissions.Application, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*admissions.Application), args.Error(1)
}

func (m *MockApplicationService) GetByID(ctx context.Context, id string) (*admissions.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admissions.Application), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, id, status string) (*admissions.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admissions.Application), args.Error(1)
}

func (m *MockApplicationService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockJobApplicationService is a mock implementation of JobApplicationService
type MockJobApplicationService struct {
	mock.Mock
}

func (m *MockJobApplicationService) Submit(ctx context.Context, form *multipart.Form) (*careers.JobApplication, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*careers.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) List(ctx context.Context, query *careers.JobApplicationQuery) ([]*careers.JobApplication, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*careers.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) GetByID(ctx context.Context, id string) (*careers.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*careers.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) UpdateStatus(ctx context.Context, id, status string) (*careers.JobApplication, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*careers.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Create(ctx context.Context, event *events.Event) (*events.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*events.Event), args.Error(1)
}

func (m *MockEventService) GetByID(ctx context.Context, id string) (*events.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, event *events.Event) (*events.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTicketService is a mock implementation of TicketService
type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) Purchase(ctx context.Context, request *events.TicketRequest) (*events.PurchaseResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.PurchaseResult), args.Error(1)
}

func (m *MockTicketService) GetByID(ctx context.Context, id string) (*events.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Ticket), args.Error(1)
}

func (m *MockTicketService) List(ctx context.Context, query *events.TicketQuery) ([]*events.Ticket, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*events.Ticket), args.Error(1)
}

// MockMessageService is a mock implementation of MessageService
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Create(ctx context.Context, message *messages.Message) (*messages.Message, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.Message), args.Error(1)
}

func (m *MockMessageService) List(ctx context.Context, query *messages.MessageQuery) ([]*messages.Message, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*messages.Message), args.Error(1)
}

func (m *MockMessageService) UpdateStatus(ctx context.Context, id, status string) (*messages.Message, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.Message), args.Error(1)
}

func (m *MockMessageService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGalleryService is a mock implementation of GalleryService
type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) Upload(ctx context.Context, form *multipart.Form) (*media.GalleryImage, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) List(ctx context.Context, query *media.MediaQuery) ([]*media.GalleryImage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*media.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResourceService is a mock implementation of ResourceService
type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) Upload(ctx context.Context, form *multipart.Form) (*media.Resource, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Resource), args.Error(1)
}

func (m *MockResourceService) List(ctx context.Context, query *media.MediaQuery) ([]*media.Resource, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*media.Resource), args.Error(1)
}

func (m *MockResourceService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentService is a mock implementation of PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Reconcile(ctx context.Context, orderTrackingID, merchantReference string) (*payments.ReconcileResult, error) {
	args := m.Called(ctx, orderTrackingID, merchantReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.ReconcileResult), args.Error(1)
}

func (m *MockPaymentService) RegisterIPN(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}
