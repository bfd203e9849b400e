package repository

import (
	"ricettario/internal/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	ListForRecipe(recipeID uint) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (cr *commentRepository) Create(comment *models.Comment) error {
	return cr.db.Create(comment).Error
}

func (cr *commentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := cr.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (cr *commentRepository) ListForRecipe(recipeID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := cr.db.Where("recipe_id = ?", recipeID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

func (cr *commentRepository) Update(comment *models.Comment) error {
	return cr.db.Model(&models.Comment{}).Where("id = ?", comment.ID).Update("text", comment.Text).Error
}

func (cr *commentRepository) Delete(id uint) error {
	return cr.db.Delete(&models.Comment{}, id).Error
}
