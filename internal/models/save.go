package models

import "time"

// Save is set membership: one row per (user, recipe), saving twice is a no-op.
type Save struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_save_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"uniqueIndex:idx_save_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}
