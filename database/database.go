package database

import (
	"fmt"
	"log"

	"arte-cultura-backend/config"
	"arte-cultura-backend/internal/domain/artists"
	"arte-cultura-backend/internal/domain/columns"
	"arte-cultura-backend/internal/domain/subscriptions"
	"arte-cultura-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the Postgres connection and migrates all domain models.
// The handle is returned to the caller; nothing here keeps global state.
func Init() *gorm.DB {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	// Required for UUID generation
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := db.AutoMigrate(
		&users.User{},

		// content
		&columns.OpinionColumn{},
		&artists.ArtistProfile{},

		// newsletter
		&subscriptions.Subscription{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
	return db
}
