package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"diamond-crown-backend/services"
	"diamond-crown-backend/utils"
)

var notFoundErrors = []error{
	services.ErrRoomNotFound,
	services.ErrBookingNotFound,
	services.ErrUserNotFound,
	services.ErrAmenityNotFound,
	services.ErrImageNotFound,
	services.ErrContactNotFound,
}

var forbiddenErrors = []error{
	services.ErrNotBookingOwner,
	services.ErrNotCancelAllowed,
}

var badRequestErrors = []error{
	services.ErrCheckInPast,
	services.ErrInvalidDateRange,
	services.ErrInvalidCheckIn,
	services.ErrInvalidCheckOut,
	services.ErrGuestsRequired,
	services.ErrRequestTooLong,
	services.ErrRoomUnavailable,
	services.ErrDatesUnavailable,
	services.ErrCancelTooLate,
	services.ErrAlreadyCancelled,
	services.ErrCancelCompleted,
	services.ErrInvalidStatus,
	services.ErrInvalidRoomType,
	services.ErrEmailTaken,
	services.ErrEmailInUse,
	services.ErrMissingCredentials,
	services.ErrPasswordTooShort,
	services.ErrMissingFields,
	services.ErrAmenityFields,
	services.ErrImageRequired,
	services.ErrTitleRequired,
	services.ErrContactFields,
	services.ErrInvalidImage,
}

// respondServiceError maps a service error onto the HTTP taxonomy: known
// validation/conflict errors become 400 with their message, ownership
// failures 403, missing records 404, bad credentials 401, everything else a
// logged 500 with a generic body.
func respondServiceError(c *gin.Context, err error) {
	var capacityErr *services.CapacityError
	var transitionErr *services.TransitionError
	if errors.As(err, &capacityErr) || errors.As(err, &transitionErr) {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	for _, known := range badRequestErrors {
		if errors.Is(err, known) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	for _, known := range notFoundErrors {
		if errors.Is(err, known) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
	}
	for _, known := range forbiddenErrors {
		if errors.Is(err, known) {
			utils.JSONError(c, http.StatusForbidden, err.Error())
			return
		}
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
		return
	}
	if errors.Is(err, services.ErrUploadsDisabled) {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("❌ internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
}

// parseIDParam reads the :id route parameter. Writes the 400 itself so
// handlers can just return on !ok.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
