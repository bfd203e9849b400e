package repository

import (
	"time"

	"ricettario/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroceryRepository interface {
	Accumulate(item *models.GroceryItem) error
	ListForUser(userID uint) ([]models.GroceryItem, error)
	ListForUserAndRecipe(userID, recipeID uint) ([]models.GroceryItem, error)
	FindItem(userID uint, ingredient string, recipeID uint) (*models.GroceryItem, error)
	SetQuantity(userID uint, ingredient string, recipeID uint, quantity int) error
	DeleteItem(userID uint, ingredient string, recipeID uint) (bool, error)
	DeleteRecipeGroup(userID, recipeID uint) (bool, error)
	Clear(userID uint) error
}

type groceryRepository struct {
	db *gorm.DB
}

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

// Accumulate upserts keyed on (user, ingredient, recipe). When the row
// already exists the quantity is ADDED to the stored value, relying on the
// store's atomic upsert-with-increment so concurrent adds cannot lose
// updates.
func (gr *groceryRepository) Accumulate(item *models.GroceryItem) error {
	return gr.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "ingredient"}, {Name: "recipe_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("grocery_items.quantity + ?", item.Quantity),
			"updated_at": time.Now(),
		}),
	}).Create(item).Error
}

func (gr *groceryRepository) ListForUser(userID uint) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	err := gr.db.Where("user_id = ?", userID).Order("recipe_id ASC, ingredient ASC").Find(&items).Error
	return items, err
}

func (gr *groceryRepository) ListForUserAndRecipe(userID, recipeID uint) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	err := gr.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Find(&items).Error
	return items, err
}

func (gr *groceryRepository) FindItem(userID uint, ingredient string, recipeID uint) (*models.GroceryItem, error) {
	var item models.GroceryItem
	err := gr.db.Where("user_id = ? AND ingredient = ? AND recipe_id = ?", userID, ingredient, recipeID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (gr *groceryRepository) SetQuantity(userID uint, ingredient string, recipeID uint, quantity int) error {
	result := gr.db.Model(&models.GroceryItem{}).
		Where("user_id = ? AND ingredient = ? AND recipe_id = ?", userID, ingredient, recipeID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (gr *groceryRepository) DeleteItem(userID uint, ingredient string, recipeID uint) (bool, error) {
	result := gr.db.Where("user_id = ? AND ingredient = ? AND recipe_id = ?", userID, ingredient, recipeID).
		Delete(&models.GroceryItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (gr *groceryRepository) DeleteRecipeGroup(userID, recipeID uint) (bool, error) {
	result := gr.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.GroceryItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (gr *groceryRepository) Clear(userID uint) error {
	return gr.db.Where("user_id = ?", userID).Delete(&models.GroceryItem{}).Error
}
