package utils

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"diamond-crown-backend/models"
)

const tokenCookieName = "token"

// Claims carried inside every session token.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "diamond-crown-dev-secret-change-in-production"
	}
	return []byte(secret)
}

func tokenTTL() time.Duration {
	hours := 30 * 24
	if v := os.Getenv("JWT_EXPIRY_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	return time.Duration(hours) * time.Hour
}

// SignToken issues an HS256 session token for the given user.
func SignToken(userID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "diamond-crown-backend",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// ParseToken validates a session token and returns the user id it carries.
func ParseToken(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token claims")
	}
	return claims.UserID, nil
}

// SendToken issues a session token, sets it as an httpOnly cookie and writes
// the user payload the frontend expects after register/login.
func SendToken(c *gin.Context, user *models.User, statusCode int) {
	token, err := SignToken(user.ID)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to generate session token")
		return
	}

	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	}
	c.SetCookie(tokenCookieName, token, int(tokenTTL().Seconds()), "/", "", secure, true)

	JSONSuccess(c, statusCode, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"phone":     user.Phone,
			"role":      user.Role,
			"createdAt": user.CreatedAt,
		},
	})
}

// ClearTokenCookie expires the session cookie.
func ClearTokenCookie(c *gin.Context) {
	c.SetCookie(tokenCookieName, "", -1, "/", "", false, true)
}

// TokenFromRequest reads the session token, preferring the httpOnly cookie
// and falling back to an Authorization bearer header.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(tokenCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(authHeader) > len(prefix) && authHeader[:len(prefix)] == prefix {
		return authHeader[len(prefix):]
	}
	return ""
}
