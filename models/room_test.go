package models_test

import (
	"testing"

	"diamond-crown-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestRoomBookable(t *testing.T) {
	room := models.Room{Available: true}
	assert.True(t, room.Bookable())

	room.Maintenance = true
	assert.False(t, room.Bookable())

	room = models.Room{Available: false}
	assert.False(t, room.Bookable())
}

func TestValidRoomType(t *testing.T) {
	assert.True(t, models.ValidRoomType("Deluxe Room"))
	assert.True(t, models.ValidRoomType("Executive Suite"))
	assert.False(t, models.ValidRoomType("Penthouse"))
	assert.False(t, models.ValidRoomType(""))
}
