package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"diamond-crown-backend/config"
)

var (
	ErrUploadsDisabled = errors.New("Image uploads are not configured")
	ErrInvalidImage    = errors.New("Only image files up to 5MB are allowed")
)

const maxImageSize = 5 * 1024 * 1024

// ImageService uploads site images to Cloudinary and removes them again
// when their owning record is deleted.
type ImageService struct{}

func NewImageService() *ImageService {
	return &ImageService{}
}

// ValidateImageFile checks extension and size before touching Cloudinary.
func ValidateImageFile(header *multipart.FileHeader) bool {
	if header == nil || header.Size <= 0 || header.Size > maxImageSize {
		return false
	}
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

// Upload stores one image under the hotel folder and returns its secure URL.
func (s *ImageService) Upload(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if config.Cloudinary == nil {
		return "", ErrUploadsDisabled
	}
	if !ValidateImageFile(header) {
		return "", ErrInvalidImage
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	base := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	overwrite := false
	unique := true
	result, err := config.Cloudinary.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         config.UploadFolder,
		PublicID:       fmt.Sprintf("room-%d-%s", time.Now().UnixMilli(), base),
		Overwrite:      &overwrite,
		UniqueFilename: &unique,
		ResourceType:   "image",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return result.SecureURL, nil
}

// Destroy removes a previously uploaded image. Best-effort: callers log the
// returned error and carry on, URLs not hosted on Cloudinary are skipped.
func (s *ImageService) Destroy(ctx context.Context, imageURL string) error {
	if config.Cloudinary == nil || !strings.Contains(imageURL, "cloudinary.com") {
		return nil
	}

	parts := strings.Split(imageURL, "/")
	last := parts[len(parts)-1]
	publicID := config.UploadFolder + "/" + strings.TrimSuffix(last, filepath.Ext(last))

	_, err := config.Cloudinary.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}
