// Package admissions models admission applications submitted by parents.
package admissions

import (
	"errors"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/listing"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Application review statuses
const (
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under_review"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
	StatusWaitlisted  = "waitlisted"
)

// ErrNotFound is returned when an application does not exist
var ErrNotFound = errors.New("application not found")

// Application entity
type Application struct {
	ID                string `validate:"required,uuid4"`
	StudentFirstName  string `validate:"required,min=1,max=100"`
	StudentLastName   string `validate:"required,min=1,max=100"`
	DateOfBirth       string `validate:"required,datetime=2006-01-02"`
	GradeApplyingFor  string `validate:"required,max=50"`
	Campus            string `validate:"required,max=100"`
	PreviousSchool    string `validate:"max=200"`
	ParentName        string `validate:"required,min=1,max=200"`
	ParentEmail       string `validate:"required,email"`
	ParentPhone       string `validate:"required,phone"`
	Address           string `validate:"max=500"`
	Notes             string `validate:"max=2000"`
	Status            string `validate:"required,oneof=submitted under_review accepted rejected waitlisted"`
	PaymentStatus     string `validate:"required,oneof=pending completed failed reversed invalid not_required"`
	Amount            decimal.Decimal
	Currency          string    `validate:"omitempty,currency"`
	MerchantReference string    `validate:"max=64"`
	OrderTrackingID   string    `validate:"max=100"`
	PaymentMethod     string    `validate:"max=100"`
	ConfirmationCode  string    `validate:"max=100"`
	CreatedAt         time.Time `validate:"required"`
	UpdatedAt         time.Time
}

// Validate for validating Application struct
func (a *Application) Validate() error {
	return validators.Struct(a)
}

// StudentName returns the student's full name
func (a *Application) StudentName() string {
	return a.StudentFirstName + " " + a.StudentLastName
}

// IsValidStatus reports whether s is a known review status
func IsValidStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusAccepted, StatusRejected, StatusWaitlisted:
		return true
	}
	return false
}

// ApplicationQuery filters the admin application list
type ApplicationQuery struct {
	Status        string `validate:"omitempty,oneof=submitted under_review accepted rejected waitlisted"`
	PaymentStatus string `validate:"omitempty,oneof=pending completed failed reversed invalid not_required"`
	Campus        string `validate:"max=100"`
	Grade         string `validate:"max=50"`
	SortBy        string `validate:"omitempty,oneof=created_at student_last_name grade_applying_for status"`
	listing.Page
}

// NewApplicationQuery creates an ApplicationQuery with default values
func NewApplicationQuery() *ApplicationQuery {
	return &ApplicationQuery{}
}

// Validate for validating ApplicationQuery struct
func (q *ApplicationQuery) Validate() error {
	return validators.Struct(q)
}
