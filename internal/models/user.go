package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Nickname  string         `gorm:"uniqueIndex;size:100" json:"nickname" example:"chef1"`
	Email     string         `gorm:"uniqueIndex;size:255" json:"email" example:"chef1@example.com"`
	Password  string         `json:"-"`
}
