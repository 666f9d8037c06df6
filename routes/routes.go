package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"diamond-crown-backend/controllers"
	"diamond-crown-backend/middleware"
	"diamond-crown-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller into the API surface.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	adc *controllers.AdminController,
	amc *controllers.AmenityController,
	gc *controllers.GalleryController,
	cc *controllers.ContactController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Set-Cookie"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/logout", middleware.Protect(), ac.Logout)
			auth.GET("/me", middleware.Protect(), ac.GetMe)
			auth.PUT("/profile", middleware.Protect(), ac.UpdateProfile)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoom)
		}

		bookings := api.Group("/bookings")
		bookings.Use(middleware.Protect())
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PUT("/:id", bc.CancelBooking)
		}

		api.GET("/amenities", amc.GetAmenities)
		api.GET("/gallery", gc.GetGalleryImages)

		contact := api.Group("/contact")
		{
			contact.POST("", middleware.OptionalAuth(), cc.SubmitContact)
			contact.GET("/user/messages", middleware.Protect(), cc.GetUserMessages)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.Protect(), middleware.Authorize(models.RoleAdmin))
		{
			admin.GET("/dashboard", adc.GetDashboardStats)

			admin.GET("/bookings", adc.GetAllBookings)
			admin.PUT("/bookings/:id", adc.UpdateBookingStatus)

			admin.GET("/users", adc.GetAllUsers)

			admin.GET("/rooms", adc.GetAllRooms)
			admin.POST("/rooms", adc.CreateRoom)
			admin.PUT("/rooms/:id", adc.UpdateRoom)
			admin.DELETE("/rooms/:id", adc.DeleteRoom)
			admin.POST("/upload-image", adc.UploadImages)

			admin.GET("/amenities", amc.GetAmenities)
			admin.POST("/amenities", amc.CreateAmenity)
			admin.PUT("/amenities/:id", amc.UpdateAmenity)
			admin.DELETE("/amenities/:id", amc.DeleteAmenity)

			admin.POST("/gallery", gc.CreateGalleryImage)
			admin.PUT("/gallery/order", gc.UpdateImageOrder)
			admin.DELETE("/gallery/:id", gc.DeleteGalleryImage)

			admin.GET("/contacts", cc.GetAllContacts)
			admin.PUT("/contacts/:id/read", cc.MarkContactRead)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route " + c.Request.URL.Path + " not found",
		})
	})

	return r
}
