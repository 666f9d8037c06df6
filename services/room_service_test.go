package services

import (
	"testing"

	"diamond-crown-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newRoomService(t *testing.T) *RoomService {
	t.Helper()
	return NewRoomService(newTestDB(t))
}

func roomNumbers(rooms []models.Room) []string {
	numbers := make([]string, 0, len(rooms))
	for _, r := range rooms {
		numbers = append(numbers, r.RoomNumber)
	}
	return numbers
}

func TestListPublicHidesUnbookableRooms(t *testing.T) {
	svc := newRoomService(t)

	createTestRoom(t, svc.DB, "D101", 20000, 2)
	offSale := createTestRoom(t, svc.DB, "D102", 20000, 2)
	require.NoError(t, svc.DB.Model(offSale).Update("available", false).Error)
	underRepair := createTestRoom(t, svc.DB, "D103", 20000, 2)
	require.NoError(t, svc.DB.Model(underRepair).Update("maintenance", true).Error)

	rooms, err := svc.ListPublic(RoomFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"D101"}, roomNumbers(rooms))
}

func TestListPublicFilters(t *testing.T) {
	svc := newRoomService(t)

	createTestRoom(t, svc.DB, "D101", 20000, 2)
	suite := createTestRoom(t, svc.DB, "S301", 55000, 4)
	require.NoError(t, svc.DB.Model(suite).Update("type", "Executive Suite").Error)

	byType, err := svc.ListPublic(RoomFilter{Type: "Executive Suite"})
	require.NoError(t, err)
	assert.Equal(t, []string{"S301"}, roomNumbers(byType))

	byGuests, err := svc.ListPublic(RoomFilter{Guests: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"S301"}, roomNumbers(byGuests))

	all, err := svc.ListPublic(RoomFilter{Type: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListPublicDateAvailability(t *testing.T) {
	svc := newRoomService(t)
	user := createTestUser(t, svc.DB, "guest@example.com", models.RoleUser)

	createTestRoom(t, svc.DB, "D101", 20000, 2)
	booked := createTestRoom(t, svc.DB, "D102", 20000, 2)
	released := createTestRoom(t, svc.DB, "D103", 20000, 2)

	seedBooking(t, svc.DB, user.ID, booked.ID, "2025-06-01", "2025-06-03", models.BookingConfirmed)
	seedBooking(t, svc.DB, user.ID, released.ID, "2025-06-01", "2025-06-03", models.BookingCancelled)

	overlapping, err := svc.ListPublic(RoomFilter{CheckIn: "2025-06-02", CheckOut: "2025-06-04"})
	require.NoError(t, err)
	assert.Equal(t, []string{"D101", "D103"}, roomNumbers(overlapping))

	// A stay starting on the existing check-out day frees the room again.
	backToBack, err := svc.ListPublic(RoomFilter{CheckIn: "2025-06-03", CheckOut: "2025-06-05"})
	require.NoError(t, err)
	assert.Equal(t, []string{"D101", "D102", "D103"}, roomNumbers(backToBack))

	_, err = svc.ListPublic(RoomFilter{CheckIn: "soon", CheckOut: "2025-06-05"})
	assert.ErrorIs(t, err, ErrInvalidCheckIn)
}

func TestCreateRoomValidatesType(t *testing.T) {
	svc := newRoomService(t)

	err := svc.Create(&models.Room{RoomNumber: "X999", Name: "Mystery", Type: "Penthouse"})
	assert.ErrorIs(t, err, ErrInvalidRoomType)

	room := &models.Room{
		RoomNumber: "D105",
		Name:       "Garden Deluxe",
		Type:       "Deluxe Room",
		Price:      22000,
		MaxGuests:  2,
		Features:   datatypes.JSON([]byte(`["Free WiFi","Smart TV"]`)),
		Available:  true,
	}
	require.NoError(t, svc.Create(room))
	assert.NotZero(t, room.ID)
}

func TestUpdateRoomAppliesFalseFlags(t *testing.T) {
	svc := newRoomService(t)
	room := createTestRoom(t, svc.DB, "D101", 20000, 2)

	updated, err := svc.Update(room.ID, &models.Room{
		RoomNumber:  room.RoomNumber,
		Name:        room.Name,
		Type:        room.Type,
		Price:       25000,
		MaxGuests:   3,
		Available:   false,
		Maintenance: true,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(25000), updated.Price)
	assert.Equal(t, 3, updated.MaxGuests)
	assert.False(t, updated.Available)
	assert.True(t, updated.Maintenance)

	_, err = svc.Update(999, &models.Room{Type: "Deluxe Room"})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.Update(room.ID, &models.Room{Type: "Penthouse"})
	assert.ErrorIs(t, err, ErrInvalidRoomType)
}

func TestDeleteRoom(t *testing.T) {
	svc := newRoomService(t)
	room := createTestRoom(t, svc.DB, "D101", 20000, 2)

	require.NoError(t, svc.Delete(room.ID))

	_, err := svc.GetByID(room.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.ErrorIs(t, svc.Delete(room.ID), ErrRoomNotFound)
}
