package repository

import (
	"time"

	"ricettario/internal/models"

	"gorm.io/gorm"
)

type ResetPasswordRepository interface {
	CreateResetPassword(resetPassword *models.ResetPassword) error
	FindValidByToken(token string) (*models.ResetPassword, error)
	DeleteByEmail(email string) error
}

type resetPasswordRepository struct {
	db *gorm.DB
}

func NewResetPasswordRepository(db *gorm.DB) ResetPasswordRepository {
	return &resetPasswordRepository{db: db}
}

func (rp *resetPasswordRepository) CreateResetPassword(resetPassword *models.ResetPassword) error {
	return rp.db.Create(resetPassword).Error
}

// FindValidByToken only matches tokens that have not expired yet; an expired
// token behaves exactly like an unknown one.
func (rp *resetPasswordRepository) FindValidByToken(token string) (*models.ResetPassword, error) {
	var resetPassword models.ResetPassword
	err := rp.db.Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&resetPassword).Error
	if err != nil {
		return nil, err
	}
	return &resetPassword, nil
}

// DeleteByEmail hard-deletes every outstanding token for the address, both
// when issuing a fresh one and after a successful reset (single use).
func (rp *resetPasswordRepository) DeleteByEmail(email string) error {
	return rp.db.Unscoped().Where("email = ?", email).Delete(&models.ResetPassword{}).Error
}
