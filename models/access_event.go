package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Access type constants
const (
	AccessTypeView     = "view"
	AccessTypeSearch   = "search"
	AccessTypeDownload = "download"
)

// AccessEvent is an immutable record of someone consulting a physical
// file. Rows are append-only and never updated or deleted.
type AccessEvent struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_access_created_at" json:"created_at"`

	FileID string        `gorm:"type:uuid;not null;index:idx_access_file" json:"file_id"`
	File   *PhysicalFile `gorm:"foreignKey:FileID" json:"-"`

	// Actor identification, denormalized for historical accuracy
	UserName string `gorm:"not null" json:"user_name"`
	UserRole string `gorm:"not null" json:"user_role"`

	AccessType      string    `gorm:"not null;index" json:"access_type"`
	AccessTimestamp time.Time `gorm:"not null;index" json:"access_timestamp"`

	// Request metadata
	IPAddress       string `json:"ip_address,omitempty"`
	UserAgent       string `json:"user_agent,omitempty"`
	SessionDuration *int   `json:"session_duration,omitempty"` // seconds
}

// BeforeCreate hook to generate UUID
func (a *AccessEvent) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for AccessEvent model
func (AccessEvent) TableName() string {
	return "access_events"
}
