package repository

import (
	"ricettario/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaveRepository interface {
	Save(userID, recipeID uint) error
	Unsave(userID, recipeID uint) (bool, error)
	IsSaved(userID, recipeID uint) (bool, error)
	SavedRecipeIDs(userID uint) ([]uint, error)
	ListSavedRecipes(userID uint) ([]models.Recipe, error)
	CountForRecipe(recipeID uint) (int64, error)
}

type saveRepository struct {
	db *gorm.DB
}

func NewSaveRepository(db *gorm.DB) SaveRepository {
	return &saveRepository{db: db}
}

// Save is idempotent: a duplicate (user, recipe) pair is a no-op, not an error.
func (sr *saveRepository) Save(userID, recipeID uint) error {
	save := models.Save{UserID: userID, RecipeID: recipeID}
	return sr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoNothing: true,
	}).Create(&save).Error
}

// Unsave reports whether a row was actually removed, so the caller can
// distinguish "never saved" from success.
func (sr *saveRepository) Unsave(userID, recipeID uint) (bool, error) {
	result := sr.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Save{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (sr *saveRepository) IsSaved(userID, recipeID uint) (bool, error) {
	var count int64
	err := sr.db.Model(&models.Save{}).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error
	return count > 0, err
}

func (sr *saveRepository) SavedRecipeIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := sr.db.Model(&models.Save{}).Where("user_id = ?", userID).Pluck("recipe_id", &ids).Error
	return ids, err
}

func (sr *saveRepository) ListSavedRecipes(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := sr.db.
		Joins("JOIN saves ON saves.recipe_id = recipes.id").
		Where("saves.user_id = ?", userID).
		Order("saves.created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

// CountForRecipe is always a derived count, never a stored counter.
func (sr *saveRepository) CountForRecipe(recipeID uint) (int64, error) {
	var count int64
	err := sr.db.Model(&models.Save{}).Where("recipe_id = ?", recipeID).Count(&count).Error
	return count, err
}
