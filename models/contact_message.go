package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ContactUnread = "unread"
	ContactRead   = "read"
)

type ContactMessage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100" json:"name"`
	Email   string `gorm:"size:150" json:"email"`
	Message string `gorm:"type:text" json:"message"`

	// Set when the sender was logged in, nil for anonymous submissions.
	UserID *uint  `gorm:"column:user_id;index" json:"userId,omitempty"`
	Status string `gorm:"size:20;default:unread" json:"status"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
