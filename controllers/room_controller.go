package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diamond-crown-backend/services"
	"diamond-crown-backend/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Rooms: svc}
}

// GetRooms is the public catalog listing with optional type/guests/date
// filters.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	filter := services.RoomFilter{
		Type:     c.Query("type"),
		Guests:   queryInt(c, "guests", 0),
		CheckIn:  c.Query("checkIn"),
		CheckOut: c.Query("checkOut"),
	}

	rooms, err := ctrl.Rooms.ListPublic(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"count": len(rooms),
		"rooms": rooms,
	})
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctrl.Rooms.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room})
}
