package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe quantities in IngredientLine are denominated against the recipe's
// Servings value at the time the line was stored, not against a single serving.
type Recipe struct {
	ID          uint             `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time        `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time        `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-" swaggerignore:"true"`
	Name        string           `json:"nome" example:"Pasta al pomodoro"`
	Description string           `json:"descrizione" example:"Un classico della cucina italiana"`
	Category    string           `gorm:"index" json:"tipologia" example:"primo"`
	DietType    string           `json:"tipo_dieta" example:"vegetariana"`
	Image       string           `json:"immagine" example:"/uploads/pasta.jpg"`
	Origin      string           `json:"provenienza" example:"Italia"`
	Servings    int              `json:"porzioni" example:"2"`
	Allergens   string           `json:"allergeni" example:"glutine"`
	PrepMinutes int              `json:"tempo_preparazione" example:"30"`
	Calories    int              `json:"calorie" example:"450"`
	UserID      uint             `gorm:"index" json:"user_id" example:"1"`
	Ingredients []IngredientLine `gorm:"foreignKey:RecipeID" json:"ingredienti,omitempty"`
	Steps       []Step           `gorm:"foreignKey:RecipeID" json:"passaggi,omitempty"`
}

// IngredientLine rows are deleted and reinserted wholesale on recipe update,
// never patched individually.
type IngredientLine struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	RecipeID uint    `gorm:"index" json:"recipe_id"`
	Name     string  `gorm:"size:100" json:"nome" example:"pasta"`
	Quantity float64 `json:"quantita" example:"200"`
	Unit     string  `gorm:"size:20" json:"unita" example:"g"`
}

// Step ordinals are 1-based and contiguous within a recipe.
type Step struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"index" json:"recipe_id"`
	Position int    `json:"posizione" example:"1"`
	Text     string `json:"testo" example:"Portare l'acqua a ebollizione"`
}
