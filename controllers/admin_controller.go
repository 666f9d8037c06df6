package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"diamond-crown-backend/models"
	"diamond-crown-backend/services"
	"diamond-crown-backend/utils"
)

// roomPayload is the admin room create/update body. Features and images
// arrive as plain arrays and are stored as JSON columns.
type roomPayload struct {
	RoomNumber  string   `json:"roomNumber" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Price       float64  `json:"price"`
	Size        string   `json:"size"`
	Capacity    int      `json:"capacity"`
	MaxGuests   int      `json:"maxGuests" binding:"required"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
	Available   *bool    `json:"available"`
	Maintenance *bool    `json:"maintenance"`
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

type AdminController struct {
	Admin    *services.AdminService
	Bookings *services.BookingService
	Rooms    *services.RoomService
	Images   *services.ImageService
}

func NewAdminController(
	admin *services.AdminService,
	bookings *services.BookingService,
	rooms *services.RoomService,
	images *services.ImageService,
) *AdminController {
	return &AdminController{Admin: admin, Bookings: bookings, Rooms: rooms, Images: images}
}

func mustJSONArray(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}

func (p *roomPayload) toModel() *models.Room {
	room := &models.Room{
		RoomNumber:  p.RoomNumber,
		Name:        p.Name,
		Type:        p.Type,
		Price:       p.Price,
		Size:        p.Size,
		Capacity:    p.Capacity,
		MaxGuests:   p.MaxGuests,
		Description: p.Description,
		Features:    mustJSONArray(p.Features),
		Images:      mustJSONArray(p.Images),
		Available:   true,
	}
	if p.Available != nil {
		room.Available = *p.Available
	}
	if p.Maintenance != nil {
		room.Maintenance = *p.Maintenance
	}
	return room
}

// GetDashboardStats serves GET /admin/dashboard.
func (ctrl *AdminController) GetDashboardStats(c *gin.Context) {
	stats, err := ctrl.Admin.GetDashboardStats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"stats": stats})
}

// GetAllBookings serves the paginated admin ledger view.
func (ctrl *AdminController) GetAllBookings(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	status := c.Query("status")
	sort := c.DefaultQuery("sort", "-createdAt")

	result, err := ctrl.Bookings.ListAllBookings(page, limit, status, sort)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"bookings":    result.Bookings,
		"total":       result.Total,
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

func (ctrl *AdminController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide a status")
		return
	}

	booking, err := ctrl.Bookings.UpdateBookingStatus(id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": booking})
}

func (ctrl *AdminController) GetAllUsers(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	result, err := ctrl.Admin.ListUsers(page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"users":       result.Users,
		"total":       result.Total,
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

func (ctrl *AdminController) GetAllRooms(c *gin.Context) {
	rooms, err := ctrl.Rooms.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (ctrl *AdminController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide roomNumber, name, type and maxGuests")
		return
	}

	room := payload.toModel()
	if err := ctrl.Rooms.Create(room); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"room": room})
}

func (ctrl *AdminController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide roomNumber, name, type and maxGuests")
		return
	}

	room, err := ctrl.Rooms.Update(id, payload.toModel())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room})
}

func (ctrl *AdminController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.Rooms.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

// UploadImages accepts up to 10 images and returns their hosted URLs,
// for attaching to rooms from the admin UI.
func (ctrl *AdminController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No files uploaded")
		return
	}
	if len(files) > 10 {
		files = files[:10]
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		url, err := ctrl.Images.Upload(c.Request.Context(), header)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		urls = append(urls, url)
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"urls": urls})
}
