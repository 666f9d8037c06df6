package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diamond-crown-backend/middleware"
	"diamond-crown-backend/models"
	"diamond-crown-backend/services"
	"diamond-crown-backend/utils"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Auth: svc}
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"phone":     user.Phone,
		"address":   user.Address,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
	}
}

// Register creates an account and opens a session.
func (ctrl *AuthController) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := ctrl.Auth.Register(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendToken(c, user, http.StatusCreated)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := ctrl.Auth.Login(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendToken(c, user, http.StatusOK)
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	utils.ClearTokenCookie(c)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"data": nil})
}

// GetMe returns the authenticated account.
func (ctrl *AuthController) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"data": userPayload(user)})
}

func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := ctrl.Auth.UpdateProfile(user.ID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"data": userPayload(updated)})
}
