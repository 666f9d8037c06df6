// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"diamond-crown-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// User-facing admission and cancellation errors. Controllers map these to
// HTTP status codes; Error() strings go straight into the JSON body.
var (
	ErrCheckInPast       = errors.New("Check-in date cannot be in the past")
	ErrInvalidDateRange  = errors.New("Check-out date must be after check-in date")
	ErrInvalidCheckIn    = errors.New("Invalid check-in date")
	ErrInvalidCheckOut   = errors.New("Invalid check-out date")
	ErrGuestsRequired    = errors.New("At least 1 guest required")
	ErrRequestTooLong    = errors.New("Special requests cannot exceed 500 characters")
	ErrRoomNotFound      = errors.New("Room not found")
	ErrRoomUnavailable   = errors.New("Room is not available for booking")
	ErrDatesUnavailable  = errors.New("Room is not available for the selected dates")
	ErrBookingNotFound   = errors.New("Booking not found")
	ErrNotBookingOwner   = errors.New("Not authorized to access this booking")
	ErrNotCancelAllowed  = errors.New("Not authorized to cancel this booking")
	ErrCancelTooLate     = errors.New("Bookings can only be cancelled at least 1 day before check-in")
	ErrAlreadyCancelled  = errors.New("Booking has already been cancelled")
	ErrCancelCompleted   = errors.New("Completed bookings cannot be cancelled")
	ErrInvalidStatus     = errors.New("Invalid booking status")
)

// CapacityError rejects a stay exceeding the room's guest limit.
type CapacityError struct {
	MaxGuests int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Room can accommodate maximum %d guests", e.MaxGuests)
}

// TransitionError rejects a booking status change the state machine forbids.
type TransitionError struct {
	From, To string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("Cannot change booking status from %s to %s", e.From, e.To)
}

// BookingService owns the booking ledger: admission, cancellation and the
// administrative listing/status operations.
type BookingService struct {
	DB *gorm.DB

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, now: time.Now}
}

type CreateBookingInput struct {
	RoomID          uint   `json:"roomId" binding:"required"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

func parseStayDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return models.DateOnly(t), nil
	}
	return time.Time{}, errors.New("unparseable date")
}

// TotalPrice computes the stay price: nightly rate times whole nights
// between the date-truncated bounds. Fixed at creation, never recomputed.
func TotalPrice(nightlyRate float64, checkIn, checkOut time.Time) float64 {
	return nightlyRate * float64(models.NightsBetween(checkIn, checkOut))
}

// CreateBooking runs the admission sequence and persists the booking.
//
// The overlap check and the insert run inside one transaction holding a
// row lock on the room, so two concurrent requests for the same room
// serialize and the second sees the first's reservation.
func (s *BookingService) CreateBooking(user *models.User, input CreateBookingInput) (*models.Booking, error) {
	checkIn, err := parseStayDate(input.CheckIn)
	if err != nil {
		return nil, ErrInvalidCheckIn
	}
	checkOut, err := parseStayDate(input.CheckOut)
	if err != nil {
		return nil, ErrInvalidCheckOut
	}

	today := models.DateOnly(s.now())
	if checkIn.Before(today) {
		return nil, ErrCheckInPast
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	if input.Guests < 1 {
		return nil, ErrGuestsRequired
	}
	if len(input.SpecialRequests) > 500 {
		return nil, ErrRequestTooLong
	}

	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// Row lock serializes admissions per room on MySQL. sqlite (tests)
		// has no FOR UPDATE; its writer lock covers the same window.
		roomQuery := tx
		if tx.Dialector.Name() == "mysql" {
			roomQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var room models.Room
		if err := roomQuery.First(&room, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("db error checking room %d: %w", input.RoomID, err)
		}

		if !room.Bookable() {
			return ErrRoomUnavailable
		}
		if input.Guests > room.MaxGuests {
			return &CapacityError{MaxGuests: room.MaxGuests}
		}

		// Inclusive-exclusive stay ranges: a stay starting on another's
		// check-out day is a back-to-back booking, not a conflict.
		var conflicts int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ?", room.ID, []string{models.BookingPending, models.BookingConfirmed}).
			Where("check_in < ? AND check_out > ?", checkOut, checkIn).
			Count(&conflicts).Error; err != nil {
			return fmt.Errorf("db error checking availability: %w", err)
		}
		if conflicts > 0 {
			return ErrDatesUnavailable
		}

		booking = models.Booking{
			UserID:          user.ID,
			RoomID:          room.ID,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Guests:          input.Guests,
			TotalPrice:      TotalPrice(room.Price, checkIn, checkOut),
			Status:          models.BookingPending,
			PaymentStatus:   models.PaymentPending,
			SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Reload with the room resolved for display.
	if err := s.DB.Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &booking, nil
}

// CancelBooking cancels a booking on behalf of its owner or an admin.
// Cancelling an already-finalized booking is rejected, never re-applied.
func (s *BookingService) CancelBooking(user *models.User, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	if booking.UserID != user.ID && !user.IsAdmin() {
		return nil, ErrNotCancelAllowed
	}

	switch booking.Status {
	case models.BookingCancelled:
		return nil, ErrAlreadyCancelled
	case models.BookingCompleted:
		return nil, ErrCancelCompleted
	}

	if booking.CheckIn.Sub(s.now()) < 24*time.Hour {
		return nil, ErrCancelTooLate
	}

	if err := s.DB.Model(&booking).Updates(map[string]interface{}{
		"status":         models.BookingCancelled,
		"payment_status": models.PaymentRefunded,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = models.BookingCancelled
	booking.PaymentStatus = models.PaymentRefunded
	return &booking, nil
}

// GetUserBookings lists the user's own bookings, newest first.
func (s *BookingService) GetUserBookings(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return bookings, nil
}

// GetBooking fetches one booking, enforcing the owner-or-admin rule.
func (s *BookingService) GetBooking(user *models.User, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	if booking.UserID != user.ID && !user.IsAdmin() {
		return nil, ErrNotBookingOwner
	}
	return &booking, nil
}

// bookingSortColumns whitelists the sortable columns for the admin listing.
var bookingSortColumns = map[string]string{
	"createdAt":  "created_at",
	"checkIn":    "check_in",
	"checkOut":   "check_out",
	"totalPrice": "total_price",
	"status":     "status",
}

type BookingPage struct {
	Bookings    []models.Booking `json:"bookings"`
	Total       int64            `json:"total"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// ListAllBookings returns the paginated, filtered admin view of the ledger.
// sort takes a whitelisted column name, "-" prefix for descending.
func (s *BookingService) ListAllBookings(page, limit int, status, sort string) (*BookingPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	order := "created_at DESC"
	if sort != "" {
		desc := strings.HasPrefix(sort, "-")
		key := strings.TrimPrefix(sort, "-")
		if col, ok := bookingSortColumns[key]; ok {
			order = col
			if desc {
				order += " DESC"
			}
		}
	}

	query := s.DB.Model(&models.Booking{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	var bookings []models.Booking
	if err := query.
		Preload("User").
		Preload("Room").
		Order(order).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	return &BookingPage{
		Bookings:    bookings,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

// UpdateBookingStatus moves a booking along the status state machine.
// A transition into cancelled also refunds the payment.
func (s *BookingService) UpdateBookingStatus(bookingID uint, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	if booking.Status != status && !models.CanTransition(booking.Status, status) {
		return nil, &TransitionError{From: booking.Status, To: status}
	}

	updates := map[string]interface{}{"status": status}
	if status == models.BookingCancelled {
		updates["payment_status"] = models.PaymentRefunded
	}
	if err := s.DB.Model(&booking).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	if err := s.DB.Preload("User").Preload("Room").First(&booking, bookingID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &booking, nil
}
