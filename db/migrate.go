package db

import (
	"fmt"
	"log"

	"sahayak/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Provider{},
		&models.ServiceRequest{},
		&models.Transaction{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
