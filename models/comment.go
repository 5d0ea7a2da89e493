package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment entity type constants (polymorphic target kinds)
const (
	CommentEntityFile    = "file"
	CommentEntityClient  = "client"
	CommentEntityCase    = "case"
	CommentEntityPayment = "payment"
)

// Comment is a free-text note a staff member attached to a record.
// EntityType/EntityID reference the commented record polymorphically.
type Comment struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	EntityType string `gorm:"not null;index:idx_comment_entity" json:"entity_type"`
	EntityID   string `gorm:"type:uuid;not null;index:idx_comment_entity" json:"entity_id"`

	UserName    string `gorm:"not null" json:"user_name"`
	UserRole    string `gorm:"not null" json:"user_role"`
	CommentText string `gorm:"type:text;not null" json:"comment_text"`

	// Private comments are hidden from search unless explicitly requested
	IsPrivate bool `gorm:"not null;default:false" json:"is_private"`
}

// BeforeCreate hook to generate UUID
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Comment model
func (Comment) TableName() string {
	return "comments"
}
