// controllers/booking_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diamond-crown-backend/middleware"
	"diamond-crown-backend/services"
	"diamond-crown-backend/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

// CreateBooking runs the admission check and persists the reservation.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide roomId, checkIn, checkOut and guests")
		return
	}

	user := middleware.CurrentUser(c)
	booking, err := ctrl.Bookings.CreateBooking(user, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"booking": booking})
}

// GetBookings lists the caller's own bookings.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	user := middleware.CurrentUser(c)
	bookings, err := ctrl.Bookings.GetUserBookings(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"count":    len(bookings),
		"bookings": bookings,
	})
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	booking, err := ctrl.Bookings.GetBooking(user, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": booking})
}

// CancelBooking handles PUT /bookings/:id, the only mutation a guest may
// perform on an existing booking.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	booking, err := ctrl.Bookings.CancelBooking(user, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Booking cancelled successfully",
		"booking": booking,
	})
}
