package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecipeID  uint      `gorm:"index" json:"recipe_id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Text      string    `json:"testo" example:"Ottima ricetta!"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
