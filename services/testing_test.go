package services

import (
	"testing"
	"time"

	"diamond-crown-backend/config"
	"diamond-crown-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database and runs the migrations.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite is per connection; keep the pool at one so every
	// query sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateModels(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()

	user := &models.User{
		Name:  "Test Guest",
		Email: email,
		Phone: "+94770000000",
		Role:  role,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, price float64, maxGuests int) *models.Room {
	t.Helper()

	room := &models.Room{
		RoomNumber: number,
		Name:       "Room " + number,
		Type:       "Deluxe Room",
		Price:      price,
		Capacity:   2,
		MaxGuests:  maxGuests,
		Available:  true,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

// seedBooking inserts a booking directly, bypassing the admission checks.
func seedBooking(t *testing.T, db *gorm.DB, userID, roomID uint, checkIn, checkOut string, status string) *models.Booking {
	t.Helper()

	booking := &models.Booking{
		UserID:        userID,
		RoomID:        roomID,
		CheckIn:       date(checkIn),
		CheckOut:      date(checkOut),
		Guests:        2,
		TotalPrice:    10000,
		Status:        status,
		PaymentStatus: models.PaymentPending,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// fixedClock pins a service's clock for deterministic date arithmetic.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
