package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"diamond-crown-backend/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "diamond_crown_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := MigrateModels(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// MigrateModels runs AutoMigrate in parent->child order. Split out so tests
// can run it against their own database handle.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.Amenity{},
		&models.GalleryImage{},
		&models.ContactMessage{},
	)
}

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Error marshalling seed data: %v", err)
	}
	return datatypes.JSON(b)
}

// SeedDatabase inserts the initial room catalog and a default admin account.
// Every block is count-guarded so restarts never duplicate rows.
func SeedDatabase(db *gorm.DB) {
	// ---------------- Admin ----------------
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		admin := models.User{
			Name:  "Hotel Administrator",
			Email: EnvOrDefault("ADMIN_EMAIL", "admin@diamondcrown.com"),
			Phone: "+94112345678",
			Role:  models.RoleAdmin,
		}
		if err := admin.SetPassword(EnvOrDefault("ADMIN_PASSWORD", "admin123")); err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else if err := db.Create(&admin).Error; err != nil {
			log.Printf("warning: failed to create default admin: %v", err)
		} else {
			log.Println("Default admin seeded")
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount > 0 {
		log.Println("Rooms already seeded")
		return
	}

	rooms := []models.Room{
		{
			RoomNumber:  "D101",
			Name:        "City View Deluxe Room",
			Type:        "Deluxe Room",
			Price:       20000,
			Size:        "420 sq ft",
			Capacity:    2,
			MaxGuests:   2,
			Description: "Enjoy comfortable modern décor and sweeping views of Colombo's skyline from this Deluxe Room.",
			Features:    mustJSON([]string{"King Size Bed", "City View", "Smart TV", "Mini Bar", "Free WiFi", "Air Conditioning", "Ensuite Bathroom"}),
			Images:      mustJSON([]string{"/images/rooms/Classic-elegance-suite-room.jpg"}),
			Available:   true,
		},
		{
			RoomNumber:  "P201",
			Name:        "Ocean View Premier Room",
			Type:        "Premier Room",
			Price:       30000,
			Size:        "500 sq ft",
			Capacity:    2,
			MaxGuests:   3,
			Description: "Relax in our Premier Room featuring an ocean-facing balcony and premium amenities for a memorable stay.",
			Features:    mustJSON([]string{"Super King Bed", "Private Balcony", "Ocean View", "Work Desk", "24/7 Room Service", "Coffee Maker", "Luxury Toiletries"}),
			Images:      mustJSON([]string{"/images/rooms/Diamond-Premier-Room.jpg"}),
			Available:   true,
		},
		{
			RoomNumber:  "S301",
			Name:        "Executive Suite",
			Type:        "Executive Suite",
			Price:       55000,
			Size:        "900 sq ft",
			Capacity:    2,
			MaxGuests:   4,
			Description: "Our Executive Suite offers spacious luxury with distinct living and sleeping zones, ideal for families or longer stays.",
			Features:    mustJSON([]string{"Separate Living Area", "Ocean & City View", "Jacuzzi Bath", "Dining Table", "Butler Service", "Nespresso Machine", "Walk-in Closet"}),
			Images:      mustJSON([]string{"/images/rooms/RoyalCrownVilla.jpg"}),
			Available:   true,
		},
		{
			RoomNumber:  "B401",
			Name:        "Business Workspace Suite",
			Type:        "Business Suite",
			Price:       45000,
			Size:        "750 sq ft",
			Capacity:    2,
			MaxGuests:   2,
			Description: "Designed for the working traveller, with a dedicated office corner, meeting nook and high-speed connectivity.",
			Features:    mustJSON([]string{"Office Desk", "Ergonomic Chair", "High-Speed WiFi", "Printer Access", "Conference Call Setup", "Espresso Machine"}),
			Images:      mustJSON([]string{"/images/rooms/Business-Suite.jpg"}),
			Available:   true,
		},
		{
			RoomNumber:  "ST501",
			Name:        "Classic Standard Room",
			Type:        "Standard Room",
			Price:       12000,
			Size:        "320 sq ft",
			Capacity:    2,
			MaxGuests:   2,
			Description: "A cosy, well-appointed room with everything needed for a comfortable city stay at great value.",
			Features:    mustJSON([]string{"Queen Bed", "Smart TV", "Free WiFi", "Air Conditioning", "Tea & Coffee Station"}),
			Images:      mustJSON([]string{"/images/rooms/Standard-Room.jpg"}),
			Available:   true,
		},
	}

	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Rooms seeded")
}
