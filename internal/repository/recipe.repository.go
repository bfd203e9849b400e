package repository

import (
	"ricettario/internal/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	FindByID(id uint) (*models.Recipe, error)
	FindByIDWithDetails(id uint) (*models.Recipe, error)
	FindAll(category string) ([]models.Recipe, error)
	FindAllWithDetails(category string) ([]models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(id uint) error
	IngredientLines(recipeID uint) ([]models.IngredientLine, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create inserts the recipe row together with its ingredient lines and steps
// in a single transaction, so a failure partway through leaves nothing behind.
func (rr *recipeRepository) Create(recipe *models.Recipe) error {
	return rr.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	})
}

func (rr *recipeRepository) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := rr.db.First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (rr *recipeRepository) FindByIDWithDetails(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := rr.db.Preload("Ingredients").Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (rr *recipeRepository) FindAll(category string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := rr.db
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

func (rr *recipeRepository) FindAllWithDetails(category string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := rr.db.Preload("Ingredients").Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

// Update rewrites the recipe row and replaces its ingredient lines and steps
// wholesale (delete-and-reinsert, no partial patch), all inside one
// transaction.
func (rr *recipeRepository) Update(recipe *models.Recipe) error {
	return rr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(map[string]interface{}{
			"name":         recipe.Name,
			"description":  recipe.Description,
			"category":     recipe.Category,
			"diet_type":    recipe.DietType,
			"image":        recipe.Image,
			"origin":       recipe.Origin,
			"servings":     recipe.Servings,
			"allergens":    recipe.Allergens,
			"prep_minutes": recipe.PrepMinutes,
			"calories":     recipe.Calories,
		}).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Step{}).Error; err != nil {
			return err
		}

		for i := range recipe.Ingredients {
			recipe.Ingredients[i].ID = 0
			recipe.Ingredients[i].RecipeID = recipe.ID
		}
		for i := range recipe.Steps {
			recipe.Steps[i].ID = 0
			recipe.Steps[i].RecipeID = recipe.ID
		}

		if len(recipe.Ingredients) > 0 {
			if err := tx.Create(&recipe.Ingredients).Error; err != nil {
				return err
			}
		}
		if len(recipe.Steps) > 0 {
			if err := tx.Create(&recipe.Steps).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the recipe and every row that references it: ingredient
// lines, steps, saves and grocery-list rows. One transaction, so the cleanup
// cannot be left half done.
func (rr *recipeRepository) Delete(id uint) error {
	return rr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.IngredientLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Step{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Save{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.GroceryItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

func (rr *recipeRepository) IngredientLines(recipeID uint) ([]models.IngredientLine, error) {
	var lines []models.IngredientLine
	err := rr.db.Where("recipe_id = ?", recipeID).Find(&lines).Error
	return lines, err
}
