package database

import (
	"fmt"
	"log"
	"os"

	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/domain/orders"
	"gallery-app/internal/domain/site"
	"gallery-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for gen_random_uuid() defaults
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// identity
		&users.User{},
		&users.VerificationToken{},

		// catalog
		&catalog.Artwork{},
		&catalog.Category{},

		// orders
		&orders.Order{},
		&orders.OrderItem{},

		// site
		&site.Settings{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
