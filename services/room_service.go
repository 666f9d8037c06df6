package services

import (
	"errors"
	"fmt"

	"diamond-crown-backend/models"

	"gorm.io/gorm"
)

var ErrInvalidRoomType = errors.New("Invalid room type")

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomFilter holds the public catalog filters. CheckIn/CheckOut are already
// parsed; both zero means no date filtering.
type RoomFilter struct {
	Type     string
	Guests   int
	CheckIn  string
	CheckOut string
}

// ListPublic returns bookable rooms matching the filters. When a date range
// is given, rooms with an overlapping pending/confirmed booking are dropped.
func (s *RoomService) ListPublic(filter RoomFilter) ([]models.Room, error) {
	query := s.DB.Model(&models.Room{}).
		Where("available = ? AND maintenance = ?", true, false)

	if filter.Type != "" && filter.Type != "all" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Guests > 0 {
		query = query.Where("max_guests >= ?", filter.Guests)
	}

	if filter.CheckIn != "" && filter.CheckOut != "" {
		checkIn, err := parseStayDate(filter.CheckIn)
		if err != nil {
			return nil, ErrInvalidCheckIn
		}
		checkOut, err := parseStayDate(filter.CheckOut)
		if err != nil {
			return nil, ErrInvalidCheckOut
		}

		booked := s.DB.Model(&models.Booking{}).
			Select("room_id").
			Where("status IN ?", []string{models.BookingPending, models.BookingConfirmed}).
			Where("check_in < ? AND check_out > ?", checkOut, checkIn)
		query = query.Where("id NOT IN (?)", booked)
	}

	var rooms []models.Room
	if err := query.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

// ListAll returns every room for the admin view, including unavailable ones.
func (s *RoomService) ListAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) Create(room *models.Room) error {
	if !models.ValidRoomType(room.Type) {
		return ErrInvalidRoomType
	}
	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) Update(id uint, updates *models.Room) (*models.Room, error) {
	if updates.Type != "" && !models.ValidRoomType(updates.Type) {
		return nil, ErrInvalidRoomType
	}

	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}

	// Select("*").Omit(...) so flag updates back to false still apply.
	if err := s.DB.Model(&room).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	if err := s.DB.First(&room, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
