package models

import (
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/shopspring/decimal"
)

// ApplicationModel is the GORM model of the applications table
type ApplicationModel struct {
	ID                string          `gorm:"primaryKey;type:uuid"`
	StudentFirstName  string          `gorm:"not null;type:varchar(100)"`
	StudentLastName   string          `gorm:"not null;type:varchar(100)"`
	DateOfBirth       string          `gorm:"not null;type:varchar(10)"`
	GradeApplyingFor  string          `gorm:"not null;index;type:varchar(50)"`
	Campus            string          `gorm:"not null;index;type:varchar(100)"`
	PreviousSchool    string          `gorm:"type:varchar(200)"`
	ParentName        string          `gorm:"not null;type:varchar(200)"`
	ParentEmail       string          `gorm:"not null;type:varchar(255)"`
	ParentPhone       string          `gorm:"not null;type:varchar(32)"`
	Address           string          `gorm:"type:varchar(500)"`
	Notes             string          `gorm:"type:text"`
	Status            string          `gorm:"not null;index;type:varchar(20);default:submitted"`
	PaymentStatus     string          `gorm:"not null;index;type:varchar(20);default:not_required"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Currency          string          `gorm:"type:varchar(3)"`
	MerchantReference string          `gorm:"index;type:varchar(64)"`
	OrderTrackingID   string          `gorm:"index;type:varchar(100)"`
	PaymentMethod     string          `gorm:"type:varchar(100)"`
	ConfirmationCode  string          `gorm:"type:varchar(100)"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (ApplicationModel) TableName() string {
	return "applications"
}

// ToDomain converts GORM model to domain entity
func (m *ApplicationModel) ToDomain() *admissions.Application {
	return &admissions.Application{
		ID:                m.ID,
		StudentFirstName:  m.StudentFirstName,
		StudentLastName:   m.StudentLastName,
		DateOfBirth:       m.DateOfBirth,
		GradeApplyingFor:  m.GradeApplyingFor,
		Campus:            m.Campus,
		PreviousSchool:    m.PreviousSchool,
		ParentName:        m.ParentName,
		ParentEmail:       m.ParentEmail,
		ParentPhone:       m.ParentPhone,
		Address:           m.Address,
		Notes:             m.Notes,
		Status:            m.Status,
		PaymentStatus:     m.PaymentStatus,
		Amount:            m.Amount,
		Currency:          m.Currency,
		MerchantReference: m.MerchantReference,
		OrderTrackingID:   m.OrderTrackingID,
		PaymentMethod:     m.PaymentMethod,
		ConfirmationCode:  m.ConfirmationCode,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ApplicationModel) FromDomain(a *admissions.Application) {
	m.ID = a.ID
	m.StudentFirstName = a.StudentFirstName
	m.StudentLastName = a.StudentLastName
	m.DateOfBirth = a.DateOfBirth
	m.GradeApplyingFor = a.GradeApplyingFor
	m.Campus = a.Campus
	m.PreviousSchool = a.PreviousSchool
	m.ParentName = a.ParentName
	m.ParentEmail = a.ParentEmail
	m.ParentPhone = a.ParentPhone
	m.Address = a.Address
	m.Notes = a.Notes
	m.Status = a.Status
	m.PaymentStatus = a.PaymentStatus
	m.Amount = a.Amount
	m.Currency = a.Currency
	m.MerchantReference = a.MerchantReference
	m.OrderTrackingID = a.OrderTrackingID
	m.PaymentMethod = a.PaymentMethod
	m.ConfirmationCode = a.ConfirmationCode
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}
