package models

import (
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
)

// MessageModel is the GORM model of the messages table
type MessageModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"not null;type:varchar(200)"`
	Email     string    `gorm:"not null;type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(32)"`
	Subject   string    `gorm:"not null;type:varchar(200)"`
	Body      string    `gorm:"not null;type:text"`
	Status    string    `gorm:"not null;index;type:varchar(20);default:unread"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MessageModel) TableName() string {
	return "messages"
}

// ToDomain converts GORM model to domain entity
func (m *MessageModel) ToDomain() *messages.Message {
	return &messages.Message{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Body:      m.Body,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MessageModel) FromDomain(msg *messages.Message) {
	m.ID = msg.ID
	m.Name = msg.Name
	m.Email = msg.Email
	m.Phone = msg.Phone
	m.Subject = msg.Subject
	m.Body = msg.Body
	m.Status = msg.Status
	m.CreatedAt = msg.CreatedAt
}
