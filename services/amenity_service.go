package services

import (
	"errors"
	"fmt"
	"strings"

	"diamond-crown-backend/models"

	"gorm.io/gorm"
)

var (
	ErrAmenityNotFound = errors.New("Amenity not found")
	ErrAmenityFields   = errors.New("Please provide title and description")
	ErrImageRequired   = errors.New("Please upload an image")
)

type AmenityService struct {
	DB *gorm.DB
}

func NewAmenityService(db *gorm.DB) *AmenityService {
	return &AmenityService{DB: db}
}

func (s *AmenityService) List() ([]models.Amenity, error) {
	var amenities []models.Amenity
	if err := s.DB.Order("created_at DESC").Find(&amenities).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve amenities: %w", err)
	}
	return amenities, nil
}

func (s *AmenityService) Create(title, description, imageURL string) (*models.Amenity, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, ErrAmenityFields
	}
	if imageURL == "" {
		return nil, ErrImageRequired
	}

	amenity := models.Amenity{Title: title, Description: description, Image: imageURL}
	if err := s.DB.Create(&amenity).Error; err != nil {
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}
	return &amenity, nil
}

// Update replaces title/description and, when a new upload arrived, the image.
func (s *AmenityService) Update(id uint, title, description, imageURL string) (*models.Amenity, error) {
	var amenity models.Amenity
	if err := s.DB.First(&amenity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, fmt.Errorf("failed to find amenity: %w", err)
	}

	updates := map[string]interface{}{}
	if title = strings.TrimSpace(title); title != "" {
		updates["title"] = title
	}
	if description = strings.TrimSpace(description); description != "" {
		updates["description"] = description
	}
	if imageURL != "" {
		updates["image"] = imageURL
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&amenity).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update amenity: %w", err)
		}
	}

	if err := s.DB.First(&amenity, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload amenity: %w", err)
	}
	return &amenity, nil
}

func (s *AmenityService) Delete(id uint) (*models.Amenity, error) {
	var amenity models.Amenity
	if err := s.DB.First(&amenity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, fmt.Errorf("failed to find amenity: %w", err)
	}
	if err := s.DB.Delete(&amenity).Error; err != nil {
		return nil, fmt.Errorf("failed to delete amenity: %w", err)
	}
	return &amenity, nil
}
