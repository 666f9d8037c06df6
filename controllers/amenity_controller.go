package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diamond-crown-backend/services"
	"diamond-crown-backend/utils"
)

type AmenityController struct {
	Amenities *services.AmenityService
	Images    *services.ImageService
}

func NewAmenityController(amenities *services.AmenityService, images *services.ImageService) *AmenityController {
	return &AmenityController{Amenities: amenities, Images: images}
}

func (ctrl *AmenityController) GetAmenities(c *gin.Context) {
	amenities, err := ctrl.Amenities.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"count":     len(amenities),
		"amenities": amenities,
	})
}

// CreateAmenity takes a multipart form: title, description and one image.
func (ctrl *AmenityController) CreateAmenity(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please upload an image")
		return
	}

	imageURL, err := ctrl.Images.Upload(c.Request.Context(), header)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	amenity, err := ctrl.Amenities.Create(c.PostForm("title"), c.PostForm("description"), imageURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"amenity": amenity})
}

// UpdateAmenity replaces the text fields; the image only when a new file
// arrived with the form.
func (ctrl *AmenityController) UpdateAmenity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	imageURL := ""
	if header, err := c.FormFile("image"); err == nil {
		url, upErr := ctrl.Images.Upload(c.Request.Context(), header)
		if upErr != nil {
			respondServiceError(c, upErr)
			return
		}
		imageURL = url
	}

	amenity, err := ctrl.Amenities.Update(id, c.PostForm("title"), c.PostForm("description"), imageURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"amenity": amenity})
}

func (ctrl *AmenityController) DeleteAmenity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	amenity, err := ctrl.Amenities.Delete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Hosted image removal is best-effort; the record is already gone.
	if err := ctrl.Images.Destroy(c.Request.Context(), amenity.Image); err != nil {
		logCloudinaryError(err)
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Amenity deleted successfully"})
}
