package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diamond-crown-backend/middleware"
	"diamond-crown-backend/services"
	"diamond-crown-backend/utils"
)

type contactPayload struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ContactController struct {
	Contacts *services.ContactService
}

func NewContactController(svc *services.ContactService) *ContactController {
	return &ContactController{Contacts: svc}
}

// SubmitContact accepts the public contact form. Runs behind OptionalAuth so
// logged-in senders get their messages linked to their account.
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide name, email and message")
		return
	}

	var userID *uint
	if user := middleware.CurrentUser(c); user != nil {
		userID = &user.ID
	}

	contact, err := ctrl.Contacts.Submit(payload.Name, payload.Email, payload.Message, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"message": "Thank you for your message! We will get back to you soon.",
		"data":    contact,
	})
}

// GetUserMessages lists the caller's own submissions.
func (ctrl *ContactController) GetUserMessages(c *gin.Context) {
	user := middleware.CurrentUser(c)
	messages, err := ctrl.Contacts.ListForUser(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"data": messages})
}

// GetAllContacts is the admin inbox.
func (ctrl *ContactController) GetAllContacts(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	status := c.Query("status")

	result, err := ctrl.Contacts.ListAll(page, limit, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"data": result.Messages,
		"pagination": gin.H{
			"page":  result.CurrentPage,
			"limit": limit,
			"total": result.Total,
			"pages": result.TotalPages,
		},
	})
}

func (ctrl *ContactController) MarkContactRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	contact, err := ctrl.Contacts.MarkRead(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Message marked as read",
		"data":    contact,
	})
}
