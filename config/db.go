package config

import (
	"log"
	"os"
	"sync"

	"cityfix-be/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	db     *gorm.DB
	dbOnce sync.Once
)

// ConnectDB initializes and returns the relational store connection.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func ConnectDB() *gorm.DB {
	dbOnce.Do(func() {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			log.Fatal("Please define the DATABASE_URL environment variable")
		}

		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}

		if err := conn.AutoMigrate(
			&models.Category{},
			&models.Issue{},
			&models.IssueReservation{},
			&models.IssueSolution{},
			&models.ModerationResponse{},
			&models.Like{},
		); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		db = conn
	})

	return db
}

// SeedCategories creates the default categories on an empty registry.
func SeedCategories(conn *gorm.DB) {
	var count int64
	conn.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Name: "Road"},
		{Name: "Water"},
		{Name: "Sanitation"},
		{Name: "Electricity"},
		{Name: "Other"},
	}

	for _, category := range categories {
		if err := conn.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Name, err)
		}
	}
	log.Println("Initial categories created successfully")
}
