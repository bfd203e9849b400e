package database

import (
	"log"
	"ricettario/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.IngredientLine{},
		&models.Step{},
		&models.Save{},
		&models.Review{},
		&models.Comment{},
		&models.Notification{},
		&models.GroceryItem{},
		&models.ResetPassword{},
		&models.ContactMessage{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
