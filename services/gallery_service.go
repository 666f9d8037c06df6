package services

import (
	"errors"
	"fmt"
	"strings"

	"diamond-crown-backend/models"

	"gorm.io/gorm"
)

var (
	ErrImageNotFound = errors.New("Image not found")
	ErrTitleRequired = errors.New("Please add a title for the image")
)

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

func (s *GalleryService) List() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := s.DB.Order("display_order").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve gallery: %w", err)
	}
	return images, nil
}

// Create appends an image at the end of the display order.
func (s *GalleryService) Create(title, imageURL string) (*models.GalleryImage, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 100 {
		return nil, ErrTitleRequired
	}
	if imageURL == "" {
		return nil, ErrImageRequired
	}

	var image models.GalleryImage
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.GalleryImage{}).Count(&count).Error; err != nil {
			return err
		}
		image = models.GalleryImage{
			Title:        title,
			Image:        imageURL,
			DisplayOrder: int(count),
		}
		return tx.Create(&image).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery image: %w", err)
	}
	return &image, nil
}

func (s *GalleryService) Delete(id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := s.DB.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to find gallery image: %w", err)
	}
	if err := s.DB.Delete(&image).Error; err != nil {
		return nil, fmt.Errorf("failed to delete gallery image: %w", err)
	}
	return &image, nil
}

// UpdateOrder rewrites display_order to match the given id sequence.
func (s *GalleryService) UpdateOrder(ids []uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&models.GalleryImage{}).
				Where("id = ?", id).
				Update("display_order", i).Error; err != nil {
				return fmt.Errorf("failed to reorder image %d: %w", id, err)
			}
		}
		return nil
	})
}
