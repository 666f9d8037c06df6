package services

import (
	"fmt"
	"math"
	"time"

	"diamond-crown-backend/models"

	"gorm.io/gorm"
)

// AdminService computes the dashboard aggregates and serves the user list
// for the back-office. Read-only; any failed read aborts the whole call.
type AdminService struct {
	DB *gorm.DB

	now func() time.Time
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db, now: time.Now}
}

type DashboardStats struct {
	TotalBookings     int64   `json:"totalBookings"`
	TotalRooms        int64   `json:"totalRooms"`
	TotalUsers        int64   `json:"totalUsers"`
	TodaysCheckIns    int64   `json:"todaysCheckIns"`
	TodaysCheckOuts   int64   `json:"todaysCheckOuts"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	CancelledBookings int64   `json:"cancelledBookings"`
	CompletedBookings int64   `json:"completedBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
	OccupancyRate     int     `json:"occupancyRate"`
	AvailableRooms    int64   `json:"availableRooms"`
	OccupiedRooms     int64   `json:"occupiedRooms"`
}

// activeStatuses are the bookings that count for check-in/out schedules,
// revenue and occupancy.
var activeStatuses = []string{models.BookingConfirmed, models.BookingCompleted}

// GetDashboardStats aggregates the summary counters for the admin dashboard.
func (s *AdminService) GetDashboardStats() (*DashboardStats, error) {
	now := s.now()
	startOfToday := models.DateOnly(now)
	endOfToday := startOfToday.Add(24*time.Hour - time.Millisecond)
	thirtyDaysAgo := now.AddDate(0, 0, -30)

	stats := &DashboardStats{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalBookings, s.DB.Model(&models.Booking{})},
		{&stats.TotalRooms, s.DB.Model(&models.Room{})},
		{&stats.TotalUsers, s.DB.Model(&models.User{}).Where("role = ?", models.RoleUser)},
		{&stats.TodaysCheckIns, s.DB.Model(&models.Booking{}).
			Where("check_in BETWEEN ? AND ?", startOfToday, endOfToday).
			Where("status IN ?", activeStatuses)},
		{&stats.TodaysCheckOuts, s.DB.Model(&models.Booking{}).
			Where("check_out BETWEEN ? AND ?", startOfToday, endOfToday).
			Where("status IN ?", activeStatuses)},
		{&stats.ConfirmedBookings, s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingConfirmed)},
		{&stats.PendingBookings, s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingPending)},
		{&stats.CancelledBookings, s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingCancelled)},
		{&stats.CompletedBookings, s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingCompleted)},
		{&stats.AvailableRooms, s.DB.Model(&models.Room{}).Where("available = ?", true)},
		{&stats.OccupiedRooms, s.DB.Model(&models.Booking{}).
			Where("status IN ?", activeStatuses).
			Where("check_in <= ? AND check_out >= ?", endOfToday, startOfToday)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to aggregate dashboard stats: %w", err)
		}
	}

	// Trailing 30-day revenue over confirmed and completed bookings.
	if err := s.DB.Model(&models.Booking{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Where("status IN ?", activeStatuses).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	if stats.TotalRooms > 0 {
		stats.OccupancyRate = int(math.Round(float64(stats.OccupiedRooms) / float64(stats.TotalRooms) * 100))
	}

	return stats, nil
}

type UserPage struct {
	Users       []models.User `json:"users"`
	Total       int64         `json:"total"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// ListUsers pages through the non-admin accounts, newest first.
func (s *AdminService) ListUsers(page, limit int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.DB.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	var users []models.User
	if err := s.DB.
		Where("role = ?", models.RoleUser).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}

	return &UserPage{
		Users:       users,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}
