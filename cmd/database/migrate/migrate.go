package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/kiranchaudhary18/crop-disease-identifier/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Scan{}); err != nil {
		log.Fatalf("Error migrating scan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DiseaseSolution{}); err != nil {
		log.Fatalf("Error migrating disease solution database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
