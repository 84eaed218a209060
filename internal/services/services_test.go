package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lighty7/Finances-backend/config"
	"github.com/lighty7/Finances-backend/internal/database"
	"github.com/lighty7/Finances-backend/internal/models"
)

func setupTestDB() {
	// Use in-memory SQLite for testing
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	// Drop tables if exist to ensure clean state and schema update
	db.Migrator().DropTable(&models.User{}, &models.Session{}, &models.Configuration{}, &models.Transaction{})

	err = db.AutoMigrate(&models.User{}, &models.Session{}, &models.Configuration{}, &models.Transaction{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func testConfig() *config.Config {
	return &config.Config{
		Env:         config.EnvDevelopment,
		JWTSecret:   "test-secret",
		JWTExpiry:   time.Hour,
		FrontendURL: "http://localhost:5173",
	}
}

func createVerifiedUser(email, password string) models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	user := models.User{
		UserName:   "testuser",
		EmailID:    email,
		Password:   string(hashed),
		IsVerified: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		panic(err)
	}
	return user
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
