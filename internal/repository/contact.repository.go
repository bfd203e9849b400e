package repository

import (
	"ricettario/internal/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(message *models.ContactMessage) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (cr *contactRepository) Create(message *models.ContactMessage) error {
	return cr.db.Create(message).Error
}
