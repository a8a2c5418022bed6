package v1

import (
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/auth"
	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/shopspring/decimal"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a plain informational message
type InfoResponse struct {
	Message string `json:"message"`
}

// LoginRequest holds admin credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validators.Struct(r)
}

// LoginResponse carries an issued access token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StatusUpdateRequest changes the status of an application, job application or message
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

// Validate for validating StatusUpdateRequest struct
func (r *StatusUpdateRequest) Validate() error {
	return validators.Struct(r)
}

// ApplicationRequest is the public admission form
type ApplicationRequest struct {
	StudentFirstName string `json:"student_first_name" validate:"required"`
	StudentLastName  string `json:"student_last_name" validate:"required"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"`
	GradeApplyingFor string `json:"grade_applying_for" validate:"required"`
	Campus           string `json:"campus" validate:"required"`
	PreviousSchool   string `json:"previous_school"`
	ParentName       string `json:"parent_name" validate:"required"`
	ParentEmail      string `json:"parent_email" validate:"required"`
	ParentPhone      string `json:"parent_phone" validate:"required"`
	Address          string `json:"address"`
	Notes            string `json:"notes"`
}

// Validate for validating ApplicationRequest struct
func (r *ApplicationRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain converts the request into an application entity
func (r *ApplicationRequest) ToDomain() *admissions.Application {
	return &admissions.Application{
		StudentFirstName: r.StudentFirstName,
		StudentLastName:  r.StudentLastName,
		DateOfBirth:      r.DateOfBirth,
		GradeApplyingFor: r.GradeApplyingFor,
		Campus:           r.Campus,
		PreviousSchool:   r.PreviousSchool,
		ParentName:       r.ParentName,
		ParentEmail:      r.ParentEmail,
		ParentPhone:      r.ParentPhone,
		Address:          r.Address,
		Notes:            r.Notes,
	}
}

// ApplicationResponse represents an admission application
type ApplicationResponse struct {
	ID                string          `json:"id"`
	StudentFirstName  string          `json:"student_first_name"`
	StudentLastName   string          `json:"student_last_name"`
	DateOfBirth       string          `json:"date_of_birth"`
	GradeApplyingFor  string          `json:"grade_applying_for"`
	Campus            string          `json:"campus"`
	PreviousSchool    string          `json:"previous_school,omitempty"`
	ParentName        string          `json:"parent_name"`
	ParentEmail       string          `json:"parent_email"`
	ParentPhone       string          `json:"parent_phone"`
	Address           string          `json:"address,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency,omitempty"`
	MerchantReference string          `json:"merchant_reference,omitempty"`
	OrderTrackingID   string          `json:"order_tracking_id,omitempty"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	ConfirmationCode  string          `json:"confirmation_code,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NewApplicationResponse converts an application entity
func NewApplicationResponse(a *admissions.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                a.ID,
		StudentFirstName:  a.StudentFirstName,
		StudentLastName:   a.StudentLastName,
		DateOfBirth:       a.DateOfBirth,
		GradeApplyingFor:  a.GradeApplyingFor,
		Campus:            a.Campus,
		PreviousSchool:    a.PreviousSchool,
		ParentName:        a.ParentName,
		ParentEmail:       a.ParentEmail,
		ParentPhone:       a.ParentPhone,
		Address:           a.Address,
		Notes:             a.Notes,
		Status:            a.Status,
		PaymentStatus:     a.PaymentStatus,
		Amount:            a.Amount,
		Currency:          a.Currency,
		MerchantReference: a.MerchantReference,
		OrderTrackingID:   a.OrderTrackingID,
		PaymentMethod:     a.PaymentMethod,
		ConfirmationCode:  a.ConfirmationCode,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// SubmitApplicationResponse is returned after a public application submission
type SubmitApplicationResponse struct {
	Application     ApplicationResponse `json:"application"`
	RedirectURL     string              `json:"redirect_url,omitempty"`
	OrderTrackingID string              `json:"order_tracking_id,omitempty"`
}

// JobApplicationResponse represents a job application
type JobApplicationResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Position    string    `json:"position"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	CVURL       string    `json:"cv_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewJobApplicationResponse converts a job application entity
func NewJobApplicationResponse(j *careers.JobApplication) JobApplicationResponse {
	return JobApplicationResponse{
		ID:          j.ID,
		FullName:    j.FullName,
		Email:       j.Email,
		Phone:       j.Phone,
		Position:    j.Position,
		CoverLetter: j.CoverLetter,
		CVURL:       j.CVURL,
		Status:      j.Status,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// EventRequest creates or replaces an event
type EventRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	StartsAt    time.Time       `json:"starts_at" validate:"required"`
	EndsAt      *time.Time      `json:"ends_at"`
	ImageURL    string          `json:"image_url"`
	IsTicketed  bool            `json:"is_ticketed"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	Currency    string          `json:"currency"`
	Capacity    int             `json:"capacity"`
}

// Validate for validating EventRequest struct
func (r *EventRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain converts the request into an event entity with the given id
func (r *EventRequest) ToDomain(id string) *events.Event {
	return &events.Event{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		ImageURL:    r.ImageURL,
		IsTicketed:  r.IsTicketed,
		TicketPrice: r.TicketPrice,
		Currency:    r.Currency,
		Capacity:    r.Capacity,
	}
}

// EventResponse represents an event
type EventResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	StartsAt    time.Time       `json:"starts_at"`
	EndsAt      *time.Time      `json:"ends_at,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsTicketed  bool            `json:"is_ticketed"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	Currency    string          `json:"currency,omitempty"`
	Capacity    int             `json:"capacity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewEventResponse converts an event entity
func NewEventResponse(e *events.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		ImageURL:    e.ImageURL,
		IsTicketed:  e.IsTicketed,
		TicketPrice: e.TicketPrice,
		Currency:    e.Currency,
		Capacity:    e.Capacity,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// TicketRequest is a public ticket purchase
type TicketRequest struct {
	EventID    string `json:"event_id" validate:"required"`
	BuyerName  string `json:"buyer_name" validate:"required"`
	BuyerEmail string `json:"buyer_email" validate:"required"`
	BuyerPhone string `json:"buyer_phone" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required"`
}

// Validate for validating TicketRequest struct
func (r *TicketRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain converts the request into a ticket purchase
func (r *TicketRequest) ToDomain() *events.TicketRequest {
	return &events.TicketRequest{
		EventID:    r.EventID,
		BuyerName:  r.BuyerName,
		BuyerEmail: r.BuyerEmail,
		BuyerPhone: r.BuyerPhone,
		Quantity:   r.Quantity,
	}
}

// TicketResponse represents a ticket order
type TicketResponse struct {
	ID                string          `json:"id"`
	EventID           string          `json:"event_id"`
	BuyerName         string          `json:"buyer_name"`
	BuyerEmail        string          `json:"buyer_email"`
	BuyerPhone        string          `json:"buyer_phone"`
	Quantity          int             `json:"quantity"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Status            string          `json:"status"`
	MerchantReference string          `json:"merchant_reference"`
	OrderTrackingID   string          `json:"order_tracking_id,omitempty"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	ConfirmationCode  string          `json:"confirmation_code,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NewTicketResponse converts a ticket entity
func NewTicketResponse(t *events.Ticket) TicketResponse {
	return TicketResponse{
		ID:                t.ID,
		EventID:           t.EventID,
		BuyerName:         t.BuyerName,
		BuyerEmail:        t.BuyerEmail,
		BuyerPhone:        t.BuyerPhone,
		Quantity:          t.Quantity,
		Amount:            t.Amount,
		Currency:          t.Currency,
		Status:            t.Status,
		MerchantReference: t.MerchantReference,
		OrderTrackingID:   t.OrderTrackingID,
		PaymentMethod:     t.PaymentMethod,
		ConfirmationCode:  t.ConfirmationCode,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// PurchaseResponse is returned after a ticket order was submitted
type PurchaseResponse struct {
	Ticket          TicketResponse `json:"ticket"`
	RedirectURL     string         `json:"redirect_url"`
	OrderTrackingID string         `json:"order_tracking_id"`
}

// MessageRequest is the public contact form
type MessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Validate for validating MessageRequest struct
func (r *MessageRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain converts the request into a message entity
func (r *MessageRequest) ToDomain() *messages.Message {
	return &messages.Message{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Body:    r.Message,
	}
}

// MessageResponse represents a contact message
type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessageResponse converts a message entity
func NewMessageResponse(m *messages.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Body,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

// GalleryImageResponse represents a gallery image
type GalleryImageResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Caption     string    `json:"caption,omitempty"`
	Category    string    `json:"category,omitempty"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGalleryImageResponse converts a gallery image entity
func NewGalleryImageResponse(g *media.GalleryImage) GalleryImageResponse {
	return GalleryImageResponse{
		ID:          g.ID,
		Title:       g.Title,
		Caption:     g.Caption,
		Category:    g.Category,
		URL:         g.URL,
		ContentType: g.ContentType,
		Size:        g.Size,
		CreatedAt:   g.CreatedAt,
	}
}

// ResourceResponse represents a downloadable resource
type ResourceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	URL         string    `json:"url"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewResourceResponse converts a resource entity
func NewResourceResponse(r *media.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		URL:         r.URL,
		FileName:    r.FileName,
		ContentType: r.ContentType,
		Size:        r.Size,
		CreatedAt:   r.CreatedAt,
	}
}

// credentials converts the request into auth credentials
func (r *LoginRequest) credentials() *auth.Credentials {
	return &auth.Credentials{Username: r.Username, Password: r.Password}
}
