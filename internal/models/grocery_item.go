package models

import "time"

// ManualGroceryRecipeID is the sentinel recipe reference for items the user
// typed in by hand rather than added from a recipe.
const ManualGroceryRecipeID uint = 0

// GroceryItem quantity is an accumulator: re-adding the same
// (user, ingredient, recipe) triple increases the stored quantity, it does
// not overwrite it.
type GroceryItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex:idx_grocery_user_ing_recipe" json:"user_id"`
	Ingredient string    `gorm:"size:100;uniqueIndex:idx_grocery_user_ing_recipe" json:"ingrediente" example:"pasta"`
	RecipeID   uint      `gorm:"uniqueIndex:idx_grocery_user_ing_recipe" json:"recipe_id"`
	Quantity   int       `json:"quantita" example:"400"`
	Unit       string    `gorm:"size:20" json:"unita" example:"g"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
