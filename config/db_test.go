package config_test

import (
	"testing"

	"diamond-crown-backend/config"
	"diamond-crown-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite is per connection; keep the pool at one so every
	// query sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateModels(db))
	return db
}

func TestSeedDatabase(t *testing.T) {
	db := openTestDB(t)

	config.SeedDatabase(db)

	var admin models.User
	require.NoError(t, db.Where("role = ?", models.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "admin@diamondcrown.com", admin.Email)
	assert.True(t, admin.ComparePassword("admin123"))

	var rooms []models.Room
	require.NoError(t, db.Order("price").Find(&rooms).Error)
	require.Len(t, rooms, 5)
	assert.Equal(t, "ST501", rooms[0].RoomNumber)
	assert.Equal(t, float64(12000), rooms[0].Price)
	assert.Equal(t, "S301", rooms[4].RoomNumber)
	assert.Equal(t, float64(55000), rooms[4].Price)
}

func TestSeedDatabaseIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	config.SeedDatabase(db)
	config.SeedDatabase(db)

	var userCount, roomCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Room{}).Count(&roomCount).Error)
	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, 5, roomCount)
}

func TestSeedDatabaseRespectsEnvOverrides(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "manager@example.com")
	t.Setenv("ADMIN_PASSWORD", "supersafe")

	db := openTestDB(t)
	config.SeedDatabase(db)

	var admin models.User
	require.NoError(t, db.Where("role = ?", models.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "manager@example.com", admin.Email)
	assert.True(t, admin.ComparePassword("supersafe"))
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "  value  ")
	assert.Equal(t, "value", config.EnvOrDefault("SOME_TEST_KEY", "fallback"))

	t.Setenv("SOME_TEST_KEY", "   ")
	assert.Equal(t, "fallback", config.EnvOrDefault("SOME_TEST_KEY", "fallback"))
}
