package mocks

import (
	"ricettario/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByNickname(nickname string) (*models.User, error) {
	args := m.Called(nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(email, passwordHash string) error {
	args := m.Called(email, passwordHash)
	return args.Error(0)
}

// Shared MockResetPasswordRepository
type MockResetPasswordRepository struct {
	mock.Mock
}

func (m *MockResetPasswordRepository) CreateResetPassword(resetPassword *models.ResetPassword) error {
	args := m.Called(resetPassword)
	return args.Error(0)
}

func (m *MockResetPasswordRepository) FindValidByToken(token string) (*models.ResetPassword, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResetPassword), args.Error(1)
}

func (m *MockResetPasswordRepository) DeleteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

// Shared MockRecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(id uint) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByIDWithDetails(id uint) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(category string) ([]models.Recipe, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAllWithDetails(category string) ([]models.Recipe, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRecipeRepository) IngredientLines(recipeID uint) ([]models.IngredientLine, error) {
	args := m.Called(recipeID)
	return args.Get(0).([]models.IngredientLine), args.Error(1)
}

// Shared MockSaveRepository
type MockSaveRepository struct {
	mock.Mock
}

func (m *MockSaveRepository) Save(userID, recipeID uint) error {
	args := m.Called(userID, recipeID)
	return args.Error(0)
}

func (m *MockSaveRepository) Unsave(userID, recipeID uint) (bool, error) {
	args := m.Called(userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSaveRepository) IsSaved(userID, recipeID uint) (bool, error) {
	args := m.Called(userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSaveRepository) SavedRecipeIDs(userID uint) ([]uint, error) {
	args := m.Called(userID)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockSaveRepository) ListSavedRecipes(userID uint) ([]models.Recipe, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockSaveRepository) CountForRecipe(recipeID uint) (int64, error) {
	args := m.Called(recipeID)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Upsert(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Aggregate(recipeID uint) (*models.ReviewAggregate, error) {
	args := m.Called(recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewAggregate), args.Error(1)
}

func (m *MockReviewRepository) ListForRecipe(recipeID uint) ([]models.Review, error) {
	args := m.Called(recipeID)
	return args.Get(0).([]models.Review), args.Error(1)
}

// Shared MockCommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(id uint) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListForRecipe(recipeID uint) ([]models.Comment, error) {
	args := m.Called(recipeID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockNotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *models.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByID(id uint) (*models.Notification, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListForUser(userID uint) ([]models.Notification, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
