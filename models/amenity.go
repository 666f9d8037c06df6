package models

import (
	"time"

	"gorm.io/gorm"
)

type Amenity struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:150" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:500" json:"image"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
