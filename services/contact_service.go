package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"diamond-crown-backend/models"

	"gorm.io/gorm"
)

var (
	ErrContactNotFound = errors.New("Contact message not found")
	ErrContactFields   = errors.New("Please provide name, email and message")
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

// Submit stores a contact-form message; userID is set when the sender was
// logged in.
func (s *ContactService) Submit(name, email, message string, userID *uint) (*models.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return nil, ErrContactFields
	}

	contact := models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
		UserID:  userID,
		Status:  models.ContactUnread,
	}
	if err := s.DB.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}
	return &contact, nil
}

// ListForUser returns the user's own messages, newest first.
func (s *ContactService) ListForUser(userID uint) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %w", err)
	}
	return messages, nil
}

type ContactPage struct {
	Messages    []models.ContactMessage `json:"messages"`
	Total       int64                   `json:"total"`
	TotalPages  int                     `json:"totalPages"`
	CurrentPage int                     `json:"currentPage"`
}

// ListAll is the admin inbox: optional status filter, paginated.
func (s *ContactService) ListAll(page, limit int, status string) (*ContactPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := s.DB.Model(&models.ContactMessage{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	var messages []models.ContactMessage
	if err := query.
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %w", err)
	}

	return &ContactPage{
		Messages:    messages,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

// MarkRead flags a message as handled.
func (s *ContactService) MarkRead(id uint) (*models.ContactMessage, error) {
	var contact models.ContactMessage
	if err := s.DB.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact message: %w", err)
	}
	if err := s.DB.Model(&contact).Update("status", models.ContactRead).Error; err != nil {
		return nil, fmt.Errorf("failed to update message status: %w", err)
	}
	contact.Status = models.ContactRead
	return &contact, nil
}
