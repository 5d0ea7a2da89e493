package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment status constants
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
	PaymentStatusOverdue = "Overdue"
	PaymentStatusFailed  = "Failed"
)

// Payment method constants
const (
	PaymentMethodCheck      = "Check"
	PaymentMethodCreditCard = "Credit Card"
	PaymentMethodTransfer   = "Bank Transfer"
	PaymentMethodCash       = "Cash"
	PaymentMethodMoneyOrder = "Money Order"
)

// Payment represents a payment made against a case
type Payment struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID   string  `gorm:"type:uuid;not null;index" json:"case_id"`
	Case     Case    `gorm:"foreignKey:CaseID" json:"case,omitempty"`
	ClientID string  `gorm:"type:uuid;not null;index" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"-"`

	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"not null" json:"payment_method"`
	Status        string    `gorm:"not null;default:Pending;index" json:"status"`
	InvoiceNumber string    `gorm:"index" json:"invoice_number"`
	Description   string    `gorm:"type:text" json:"description"`
	PaymentDate   time.Time `gorm:"not null;index" json:"payment_date"`
}

// BeforeCreate hook to generate UUID
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}
