package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentRefunded  = "refunded"
)

// statusTransitions is the allowed booking state machine. Terminal states
// (cancelled, completed) have no outgoing edges.
var statusTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;column:user_id" json:"userId"`
	RoomID uint `gorm:"index;column:room_id" json:"roomId"`

	CheckIn  time.Time `gorm:"column:check_in;index" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out;index" json:"checkOut"`

	Guests          int     `json:"guests"`
	TotalPrice      float64 `gorm:"column:total_price" json:"totalPrice"`
	Status          string  `gorm:"size:20;default:pending" json:"status"`
	PaymentStatus   string  `gorm:"column:payment_status;size:20;default:pending" json:"paymentStatus"`
	SpecialRequests string  `gorm:"column:special_requests;size:500" json:"specialRequests,omitempty"`
	TransactionID   string  `gorm:"column:transaction_id;size:100" json:"transactionId,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Nights returns the number of nights covered by the stay, counted on
// date-truncated bounds so time-of-day never changes the result.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

func NightsBetween(checkIn, checkOut time.Time) int {
	ci := DateOnly(checkIn)
	co := DateOnly(checkOut)
	n := int(co.Sub(ci).Hours() / 24)
	if n < 0 {
		return -n
	}
	return n
}

// DateOnly zeroes the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
