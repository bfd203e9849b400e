package repository

import (
	"ricettario/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id uint) (*models.Notification, error)
	ListForUser(userID uint) ([]models.Notification, error)
	MarkRead(id uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (nr *notificationRepository) Create(notification *models.Notification) error {
	return nr.db.Create(notification).Error
}

func (nr *notificationRepository) FindByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := nr.db.First(&notification, id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (nr *notificationRepository) ListForUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := nr.db.Where("recipient_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (nr *notificationRepository) MarkRead(id uint) error {
	return nr.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true).Error
}
