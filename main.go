package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"diamond-crown-backend/config"
	"diamond-crown-backend/controllers"
	"diamond-crown-backend/routes"
	"diamond-crown-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (fatal: nothing works without it)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Cloudinary (non-fatal: uploads fail gracefully without it)
	if err := config.ConnectCloudinary(); err != nil {
		log.Printf("⚠️  Cloudinary init failed: %v", err)
	}

	// Initialize services
	authService := services.NewAuthService(db)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	adminService := services.NewAdminService(db)
	amenityService := services.NewAmenityService(db)
	galleryService := services.NewGalleryService(db)
	contactService := services.NewContactService(db)
	imageService := services.NewImageService()

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	adminController := controllers.NewAdminController(adminService, bookingService, roomService, imageService)
	amenityController := controllers.NewAmenityController(amenityService, imageService)
	galleryController := controllers.NewGalleryController(galleryService, imageService)
	contactController := controllers.NewContactController(contactService)

	// Build router
	router := routes.SetupRouter(
		authController,
		roomController,
		bookingController,
		adminController,
		amenityController,
		galleryController,
		contactController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
