package models

import (
	"time"

	"gorm.io/gorm"
)

type ResetPassword struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Email     string         `gorm:"index" json:"email" example:"chef1@example.com"`
	Token     string         `gorm:"uniqueIndex;size:64" json:"token"`
	ExpiresAt time.Time      `json:"expires_at" example:"2023-01-01T00:30:00Z"`
}
