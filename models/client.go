package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client type constants
const (
	ClientTypeIndividual  = "Individual"
	ClientTypeCorporation = "Corporation"
	ClientTypeNonProfit   = "Non-Profit"
	ClientTypeGovernment  = "Government"
)

// Client status constants
const (
	ClientStatusActive    = "Active"
	ClientStatusInactive  = "Inactive"
	ClientStatusSuspended = "Suspended"
)

// Client represents a person or organization the firm holds records for
type Client struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName        string     `gorm:"not null" json:"first_name"`
	LastName         string     `gorm:"not null" json:"last_name"`
	OrganizationName string     `json:"organization_name,omitempty"` // Set for non-individual clients
	Email            string     `gorm:"index" json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	ClientType       string     `gorm:"not null;default:Individual;index" json:"client_type"`
	Status           string     `gorm:"not null;default:Active;index" json:"status"`
	RegistrationDate time.Time  `gorm:"not null" json:"registration_date"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`

	// Relationships
	Cases []Case `gorm:"foreignKey:ClientID" json:"cases,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// FullName returns the display name for the client. Organizations use
// their organization name, individuals "First Last".
func (c *Client) FullName() string {
	if c.ClientType != ClientTypeIndividual && c.OrganizationName != "" {
		return c.OrganizationName
	}
	return c.FirstName + " " + c.LastName
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "clients"
}
