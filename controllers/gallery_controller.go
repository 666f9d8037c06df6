package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"diamond-crown-backend/services"
	"diamond-crown-backend/utils"
)

type orderPayload struct {
	Images []struct {
		ID uint `json:"id" binding:"required"`
	} `json:"images" binding:"required"`
}

type GalleryController struct {
	Gallery *services.GalleryService
	Images  *services.ImageService
}

func NewGalleryController(gallery *services.GalleryService, images *services.ImageService) *GalleryController {
	return &GalleryController{Gallery: gallery, Images: images}
}

func logCloudinaryError(err error) {
	log.Printf("warning: cloudinary cleanup failed: %v", err)
}

func (ctrl *GalleryController) GetGalleryImages(c *gin.Context) {
	images, err := ctrl.Gallery.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"images": images})
}

// CreateGalleryImage uploads one image and appends it to the gallery.
func (ctrl *GalleryController) CreateGalleryImage(c *gin.Context) {
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

	image, err := ctrl.Gallery.Create(c.PostForm("title"), imageURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"image": image})
}

func (ctrl *GalleryController) DeleteGalleryImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	image, err := ctrl.Gallery.Delete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := ctrl.Images.Destroy(c.Request.Context(), image.Image); err != nil {
		logCloudinaryError(err)
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Image deleted successfully"})
}

// UpdateImageOrder rewrites the gallery ordering to the submitted sequence.
func (ctrl *GalleryController) UpdateImageOrder(c *gin.Context) {
	var payload orderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide the ordered image list")
		return
	}

	ids := make([]uint, 0, len(payload.Images))
	for _, item := range payload.Images {
		ids = append(ids, item.ID)
	}

	if err := ctrl.Gallery.UpdateOrder(ids); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Image order updated successfully"})
}
