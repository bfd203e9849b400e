package models

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"nome" example:"Mario Rossi"`
	Email     string    `json:"email" example:"mario@example.com"`
	Message   string    `json:"messaggio"`
	CreatedAt time.Time `json:"created_at"`
}
