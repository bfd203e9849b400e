package repository

import (
	"time"

	"ricettario/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	Upsert(review *models.Review) error
	Aggregate(recipeID uint) (*models.ReviewAggregate, error)
	ListForRecipe(recipeID uint) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert keeps exactly one row per (recipe, user): a re-submission overwrites
// the stars and refreshes the timestamp, no rating history is kept.
func (rr *reviewRepository) Upsert(review *models.Review) error {
	return rr.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"stars":      review.Stars,
			"updated_at": time.Now(),
		}),
	}).Create(review).Error
}

// Aggregate returns the unrounded mean (0 when there are no reviews) and the
// review count for a recipe.
func (rr *reviewRepository) Aggregate(recipeID uint) (*models.ReviewAggregate, error) {
	var agg models.ReviewAggregate
	err := rr.db.Model(&models.Review{}).
		Select("COALESCE(AVG(stars), 0) AS mean, COUNT(*) AS count").
		Where("recipe_id = ?", recipeID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (rr *reviewRepository) ListForRecipe(recipeID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := rr.db.Where("recipe_id = ?", recipeID).Order("updated_at DESC").Find(&reviews).Error
	return reviews, err
}
