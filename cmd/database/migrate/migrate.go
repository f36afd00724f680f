package migration

import (
	"fmt"
	"log"

	"github.com/rotnot/rotnot-backend/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Extensions for uuid defaults and geographical queries
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"earthdistance\" CASCADE;")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"cube\";")

	if err := db.AutoMigrate(&entities.UserProfile{}); err != nil {
		log.Fatalf("Error migrating user profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodBank{}); err != nil {
		log.Fatalf("Error migrating food bank database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationItem{}); err != nil {
		log.Fatalf("Error migrating donation item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonatedFood{}); err != nil {
		log.Fatalf("Error migrating donated food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SurplusPost{}); err != nil {
		log.Fatalf("Error migrating surplus post database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
