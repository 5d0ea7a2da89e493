package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Storage status constants
const (
	StorageStatusActive        = "Active"
	StorageStatusArchived      = "Archived"
	StorageStatusPendingReview = "Pending Review"
	StorageStatusDestruction   = "Scheduled for Destruction"
)

// Confidentiality level constants, ordered from least to most restricted
const (
	ConfidentialityPublic       = "Public"
	ConfidentialityInternal     = "Internal"
	ConfidentialityConfidential = "Confidential"
	ConfidentialityHighest      = "Highly Confidential"
)

// ConfidentialityRank maps each level to its position in the ordering.
// Unknown levels rank below Public so malformed rows never outrank real ones.
var ConfidentialityRank = map[string]int{
	ConfidentialityPublic:       1,
	ConfidentialityInternal:     2,
	ConfidentialityConfidential: 3,
	ConfidentialityHighest:      4,
}

// PhysicalFile represents a paper file stored in a warehouse
type PhysicalFile struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Case relationship (client derived through the case)
	CaseID   string  `gorm:"type:uuid;not null;index" json:"case_id"`
	Case     Case    `gorm:"foreignKey:CaseID" json:"case,omitempty"`
	ClientID string  `gorm:"type:uuid;not null;index" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"-"`

	// File identification
	ReferenceNumber  string `gorm:"not null;uniqueIndex" json:"reference_number"`
	FileType         string `gorm:"not null;index" json:"file_type"`
	DocumentCategory string `gorm:"index" json:"document_category"`
	FileDescription  string `gorm:"type:text" json:"file_description"`

	// Physical location
	WarehouseLocation string `gorm:"not null;index" json:"warehouse_location"`
	ShelfNumber       string `json:"shelf_number"`
	BoxNumber         string `json:"box_number"`
	FileSize          string `json:"file_size"`

	// Lifecycle
	StorageStatus        string     `gorm:"not null;default:Active;index" json:"storage_status"`
	ConfidentialityLevel string     `gorm:"not null;default:Internal;index" json:"confidentiality_level"`
	RetentionDate        *time.Time `json:"retention_date,omitempty"`
	LastAccessed         time.Time  `gorm:"index" json:"last_accessed"`
	LastModified         time.Time  `json:"last_modified"`

	// Keywords stored as a comma-separated list (sqlite has no array type)
	Keywords string `gorm:"type:text" json:"keywords"`
}

// BeforeCreate hook to generate UUID
func (f *PhysicalFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

// KeywordList splits the stored keyword string into individual keywords
func (f *PhysicalFile) KeywordList() []string {
	if f.Keywords == "" {
		return nil
	}
	parts := strings.Split(f.Keywords, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// SetKeywords stores the given keywords as the file's keyword string
func (f *PhysicalFile) SetKeywords(keywords []string) {
	f.Keywords = strings.Join(keywords, ",")
}

// TableName specifies the table name for PhysicalFile model
func (PhysicalFile) TableName() string {
	return "physical_files"
}
