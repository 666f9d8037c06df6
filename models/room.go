package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room classes offered on the public site.
var RoomTypes = []string{
	"Deluxe Room",
	"Premier Room",
	"Executive Suite",
	"Business Suite",
	"Standard Room",
}

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber  string  `gorm:"column:room_number;uniqueIndex;size:50" json:"roomNumber"`
	Name        string  `gorm:"size:150" json:"name"`
	Type        string  `gorm:"size:50" json:"type"`
	Price       float64 `json:"price"`
	Size        string  `gorm:"size:50" json:"size"`
	Capacity    int     `json:"capacity"`
	MaxGuests   int     `gorm:"column:max_guests" json:"maxGuests"`
	Description string  `gorm:"type:text" json:"description"`

	Features datatypes.JSON `json:"features"`
	Images   datatypes.JSON `json:"images"`

	Available   bool `gorm:"default:true" json:"available"`
	Maintenance bool `gorm:"default:false" json:"maintenance"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Bookable reports whether the room may accept new reservations.
func (r *Room) Bookable() bool {
	return r.Available && !r.Maintenance
}

func ValidRoomType(t string) bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}
