package models

import (
	"time"

	"gorm.io/gorm"
)

type GalleryImage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"size:100" json:"title"`
	Image        string `gorm:"size:500" json:"image"`
	DisplayOrder int    `gorm:"column:display_order;default:0" json:"displayOrder"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
