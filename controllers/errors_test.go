package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"diamond-crown-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func recordServiceError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation error", services.ErrDatesUnavailable, http.StatusBadRequest, "Room is not available for the selected dates"},
		{"capacity error", &services.CapacityError{MaxGuests: 4}, http.StatusBadRequest, "Room can accommodate maximum 4 guests"},
		{"transition error", &services.TransitionError{From: "cancelled", To: "confirmed"}, http.StatusBadRequest, "Cannot change booking status from cancelled to confirmed"},
		{"missing record", services.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
		{"ownership failure", services.ErrNotBookingOwner, http.StatusForbidden, "Not authorized to access this booking"},
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"unknown error", errors.New("driver: bad connection"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := recordServiceError(tc.err)
			assert.Equal(t, tc.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		raw string
		ok  bool
	}{
		{"7", true},
		{"0", false},
		{"-1", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: tc.raw}}

		id, ok := parseIDParam(c)
		assert.Equal(t, tc.ok, ok, "id %q", tc.raw)
		if tc.ok {
			assert.Equal(t, uint(7), id)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}

func TestQueryInt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&limit=abc&zero=0", nil)

	assert.Equal(t, 3, queryInt(c, "page", 1))
	assert.Equal(t, 10, queryInt(c, "limit", 10))
	assert.Equal(t, 1, queryInt(c, "zero", 1))
	assert.Equal(t, 5, queryInt(c, "missing", 5))
}
