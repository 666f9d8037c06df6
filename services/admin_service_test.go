package services

import (
	"testing"
	"time"

	"diamond-crown-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminService(t *testing.T) *AdminService {
	t.Helper()
	svc := NewAdminService(newTestDB(t))
	svc.now = fixedClock(testNow)
	return svc
}

// seedStatsBooking inserts a booking with a controlled creation timestamp so
// the trailing-30-day revenue window can be exercised.
func seedStatsBooking(t *testing.T, svc *AdminService, userID, roomID uint, checkIn, checkOut, status string, price float64, createdAt time.Time) {
	t.Helper()

	booking := seedBooking(t, svc.DB, userID, roomID, checkIn, checkOut, status)
	require.NoError(t, svc.DB.Model(booking).
		Updates(map[string]interface{}{"total_price": price, "created_at": createdAt}).Error)
}

func TestGetDashboardStats(t *testing.T) {
	svc := newAdminService(t)

	guest := createTestUser(t, svc.DB, "guest1@example.com", models.RoleUser)
	createTestUser(t, svc.DB, "guest2@example.com", models.RoleUser)
	createTestUser(t, svc.DB, "admin@example.com", models.RoleAdmin)

	rooms := make([]*models.Room, 0, 10)
	for i := 0; i < 10; i++ {
		rooms = append(rooms, createTestRoom(t, svc.DB, "R10"+string(rune('0'+i)), 20000, 2))
	}
	// Two rooms pulled from sale.
	require.NoError(t, svc.DB.Model(rooms[8]).Update("available", false).Error)
	require.NoError(t, svc.DB.Model(rooms[9]).Update("available", false).Error)

	recent := testNow.AddDate(0, 0, -5)
	stale := testNow.AddDate(0, 0, -45)

	// Three stays spanning today on distinct rooms: 30% occupancy.
	seedStatsBooking(t, svc, guest.ID, rooms[0].ID, "2025-04-30", "2025-05-02", models.BookingConfirmed, 20000, recent)
	seedStatsBooking(t, svc, guest.ID, rooms[1].ID, "2025-05-01", "2025-05-03", models.BookingConfirmed, 30000, recent)
	seedStatsBooking(t, svc, guest.ID, rooms[2].ID, "2025-04-28", "2025-05-01", models.BookingCompleted, 40000, recent)

	// Old confirmed booking: counted in totals but outside the revenue window
	// and not occupying a room today.
	seedStatsBooking(t, svc, guest.ID, rooms[3].ID, "2025-03-01", "2025-03-05", models.BookingConfirmed, 50000, stale)

	// Pending and cancelled bookings never count towards occupancy or revenue.
	seedStatsBooking(t, svc, guest.ID, rooms[4].ID, "2025-05-01", "2025-05-02", models.BookingPending, 10000, recent)
	seedStatsBooking(t, svc, guest.ID, rooms[5].ID, "2025-05-01", "2025-05-02", models.BookingCancelled, 10000, recent)

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)

	assert.EqualValues(t, 6, stats.TotalBookings)
	assert.EqualValues(t, 10, stats.TotalRooms)
	assert.EqualValues(t, 2, stats.TotalUsers)

	assert.EqualValues(t, 3, stats.ConfirmedBookings)
	assert.EqualValues(t, 1, stats.PendingBookings)
	assert.EqualValues(t, 1, stats.CancelledBookings)
	assert.EqualValues(t, 1, stats.CompletedBookings)

	assert.EqualValues(t, 1, stats.TodaysCheckIns)
	assert.EqualValues(t, 1, stats.TodaysCheckOuts)

	assert.Equal(t, float64(90000), stats.TotalRevenue)

	assert.EqualValues(t, 8, stats.AvailableRooms)
	assert.EqualValues(t, 3, stats.OccupiedRooms)
	assert.Equal(t, 30, stats.OccupancyRate)
}

func TestGetDashboardStatsEmptyDatabase(t *testing.T) {
	svc := newAdminService(t)

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)

	assert.EqualValues(t, 0, stats.TotalBookings)
	assert.EqualValues(t, 0, stats.TotalRooms)
	assert.Equal(t, float64(0), stats.TotalRevenue)
	// No rooms means no occupancy, not a division by zero.
	assert.Equal(t, 0, stats.OccupancyRate)
}

func TestListUsersExcludesAdmins(t *testing.T) {
	svc := newAdminService(t)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		createTestUser(t, svc.DB, email, models.RoleUser)
	}
	createTestUser(t, svc.DB, "admin@example.com", models.RoleAdmin)

	page, err := svc.ListUsers(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Users, 2)
	for _, u := range page.Users {
		assert.Equal(t, models.RoleUser, u.Role)
	}

	second, err := svc.ListUsers(2, 2)
	require.NoError(t, err)
	require.Len(t, second.Users, 1)
}

func TestListUsersNormalizesPaging(t *testing.T) {
	svc := newAdminService(t)
	createTestUser(t, svc.DB, "a@example.com", models.RoleUser)

	page, err := svc.ListUsers(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Users, 1)
}
