package config

import (
	"fmt"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
)

// UploadFolder is the Cloudinary folder all site images land in.
const UploadFolder = "diamond-crown-hotel"

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary initialises the Cloudinary client from CLOUDINARY_* env
// vars. Missing credentials are not fatal: uploads will fail with a clear
// error while the rest of the API keeps working.
func ConnectCloudinary() error {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("⚠️  Cloudinary credentials missing; image uploads disabled")
		return nil
	}

	cld, err := cloudinary.NewFromURL(fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName))
	if err != nil {
		return fmt.Errorf("cloudinary init: %w", err)
	}

	Cloudinary = cld
	log.Println("✅ Cloudinary configured")
	return nil
}
