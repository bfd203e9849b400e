package utils

import (
	"fmt"
	"log"

	"ricettario/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultNumUsers = 20

var demoRecipes = []models.Recipe{
	{
		Name:        "Pasta al pomodoro",
		Description: "Un classico della cucina italiana",
		Category:    "primo",
		DietType:    "vegetariana",
		Image:       "/uploads/pasta-pomodoro.jpg",
		Origin:      "Italia",
		Servings:    2,
		Allergens:   "glutine",
		PrepMinutes: 25,
		Calories:    450,
		Ingredients: []models.IngredientLine{
			{Name: "pasta", Quantity: 200, Unit: "g"},
			{Name: "pomodori pelati", Quantity: 400, Unit: "g"},
			{Name: "olio d'oliva", Quantity: 20, Unit: "ml"},
		},
		Steps: []models.Step{
			{Position: 1, Text: "Portare l'acqua a ebollizione e salare"},
			{Position: 2, Text: "Cuocere la pasta al dente"},
			{Position: 3, Text: "Saltare la pasta nel sugo di pomodoro"},
		},
	},
	{
		Name:        "Risotto ai funghi",
		Description: "Risotto cremoso con funghi porcini",
		Category:    "primo",
		DietType:    "vegetariana",
		Image:       "/uploads/risotto-funghi.jpg",
		Origin:      "Italia",
		Servings:    4,
		Allergens:   "lattosio",
		PrepMinutes: 40,
		Calories:    520,
		Ingredients: []models.IngredientLine{
			{Name: "riso carnaroli", Quantity: 320, Unit: "g"},
			{Name: "funghi porcini", Quantity: 300, Unit: "g"},
			{Name: "burro", Quantity: 50, Unit: "g"},
			{Name: "parmigiano", Quantity: 60, Unit: "g"},
		},
		Steps: []models.Step{
			{Position: 1, Text: "Trifolare i funghi"},
			{Position: 2, Text: "Tostare il riso e sfumare con vino bianco"},
			{Position: 3, Text: "Portare a cottura con il brodo"},
			{Position: 4, Text: "Mantecare con burro e parmigiano"},
		},
	},
}

// SeedUsers inserts demo accounts (seeduser1@example.com ...) with a shared
// known password.
func SeedUsers(db *gorm.DB, numUsers int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("SeedPassword123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for i := 1; i <= numUsers; i++ {
		user := models.User{
			Nickname: fmt.Sprintf("seeduser%d", i),
			Email:    fmt.Sprintf("seeduser%d@example.com", i),
			Password: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %d: %w", i, err)
		}
	}

	log.Printf("Seeded %d users", numUsers)
	return nil
}

// SeedRecipes assigns the demo recipes round-robin to the seeded users.
func SeedRecipes(db *gorm.DB) error {
	var users []models.User
	if err := db.Where("email LIKE ?", "seeduser%@example.com").Find(&users).Error; err != nil {
		return fmt.Errorf("failed to load seed users: %w", err)
	}
	if len(users) == 0 {
		return fmt.Errorf("no seed users found, run the users step first")
	}

	for i := range demoRecipes {
		recipe := demoRecipes[i]
		recipe.UserID = users[i%len(users)].ID
		if err := db.Create(&recipe).Error; err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", recipe.Name, err)
		}
	}

	log.Printf("Seeded %d recipes", len(demoRecipes))
	return nil
}

// CleanupSeedData removes the demo users and everything they own.
func CleanupSeedData(db *gorm.DB) error {
	var users []models.User
	if err := db.Where("email LIKE ?", "seeduser%@example.com").Find(&users).Error; err != nil {
		return err
	}

	for _, user := range users {
		var recipes []models.Recipe
		if err := db.Where("user_id = ?", user.ID).Find(&recipes).Error; err != nil {
			return err
		}
		for _, recipe := range recipes {
			if err := db.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientLine{}).Error; err != nil {
				return err
			}
			if err := db.Where("recipe_id = ?", recipe.ID).Delete(&models.Step{}).Error; err != nil {
				return err
			}
			if err := db.Where("recipe_id = ?", recipe.ID).Delete(&models.Save{}).Error; err != nil {
				return err
			}
			if err := db.Where("recipe_id = ?", recipe.ID).Delete(&models.GroceryItem{}).Error; err != nil {
				return err
			}
			if err := db.Unscoped().Delete(&models.Recipe{}, recipe.ID).Error; err != nil {
				return err
			}
		}
		if err := db.Unscoped().Delete(&models.User{}, user.ID).Error; err != nil {
			return err
		}
	}

	log.Printf("Removed %d seed users and their recipes", len(users))
	return nil
}
