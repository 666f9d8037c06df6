package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"diamond-crown-backend/config"
	"diamond-crown-backend/models"
	"diamond-crown-backend/utils"
)

// Protect validates the session token and loads the authenticated user into
// the request context.
func Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := utils.TokenFromRequest(c)
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}

		userID, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "User associated with token not found")
			c.Abort()
			return
		}

		c.Set("user", &user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// OptionalAuth loads the user when a valid token is present but never rejects.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := utils.TokenFromRequest(c)
		if tokenString == "" {
			c.Next()
			return
		}
		userID, err := utils.ParseToken(tokenString)
		if err != nil {
			c.Next()
			return
		}
		var user models.User
		if err := config.DB.First(&user, userID).Error; err == nil {
			c.Set("user", &user)
			c.Set("user_id", user.ID)
		}
		c.Next()
	}
}

// Authorize restricts a route to the given roles. Must run after Protect.
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.JSONError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, fmt.Sprintf("Role %s is not authorized to access this route", user.Role))
		c.Abort()
	}
}

// CurrentUser returns the authenticated user set by Protect/OptionalAuth,
// or nil when the request is anonymous.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get("user"); ok {
		if u, ok2 := v.(*models.User); ok2 {
			return u
		}
	}
	return nil
}
