package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sahayak/config"
)

var DB *gorm.DB

func GetDB() *gorm.DB {
	return DB
}

// SetDB swaps the active connection; tests point this at an in-memory
// sqlite database.
func SetDB(conn *gorm.DB) {
	DB = conn
}

// Init establishes the DB connection without running migrations
func Init() {
	cfg := config.Get()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	DB = db
	log.Println("✅ Database connection established successfully!")
}
