package models

import "time"

// Review holds exactly one row per (recipe, user); re-submission overwrites
// stars and refreshes the timestamp instead of keeping a history.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecipeID  uint      `gorm:"uniqueIndex:idx_review_recipe_user" json:"recipe_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_review_recipe_user" json:"user_id"`
	Stars     int       `gorm:"check:stars >= 1 AND stars <= 5" json:"stelle" example:"5"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewAggregate is the derived mean/count for a recipe. Mean is unrounded
// at this layer; presentation rounding is a UI concern.
type ReviewAggregate struct {
	Mean  float64 `json:"media"`
	Count int64   `json:"numero"`
}
