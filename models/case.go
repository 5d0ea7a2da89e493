package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status constants
const (
	CaseStatusOpen        = "Open"
	CaseStatusClosed      = "Closed"
	CaseStatusOnHold      = "On Hold"
	CaseStatusUnderReview = "Under Review"
	CaseStatusSettled     = "Settled"
)

// Case priority constants
const (
	CasePriorityLow      = "Low"
	CasePriorityMedium   = "Medium"
	CasePriorityHigh     = "High"
	CasePriorityCritical = "Critical"
)

// CaseTypes is the closed set of practice areas a case can belong to
var CaseTypes = []string{
	"Personal Injury", "Corporate Law", "Criminal Defense", "Family Law",
	"Real Estate", "Employment Law", "Immigration", "Intellectual Property",
	"Tax Law", "Environmental Law", "Contract Dispute", "Bankruptcy",
}

// Case represents a legal case
type Case struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Client relationship
	ClientID string `gorm:"type:uuid;not null;index" json:"client_id"`
	Client   Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	// Case identification
	ReferenceNumber string `gorm:"not null;uniqueIndex" json:"reference_number"`
	CaseType        string `gorm:"not null;index" json:"case_type"`
	Description     string `gorm:"type:text" json:"description"`

	// Status and lifecycle
	Status         string  `gorm:"not null;default:Open;index" json:"status"`
	Priority       string  `gorm:"not null;default:Medium" json:"priority"`
	AssignedLawyer string  `json:"assigned_lawyer"`
	EstimatedValue float64 `gorm:"not null;default:0" json:"estimated_value"`

	// Relationships
	Files    []PhysicalFile `gorm:"foreignKey:CaseID" json:"files,omitempty"`
	Payments []Payment      `gorm:"foreignKey:CaseID" json:"payments,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// IsValidCaseType reports whether t is one of the enumerated practice areas
func IsValidCaseType(t string) bool {
	for _, ct := range CaseTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}
