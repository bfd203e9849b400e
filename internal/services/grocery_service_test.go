package services_test

import (
	"testing"

	"ricettario/internal/models"
	"ricettario/internal/repository"
	"ricettario/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Recipe{},
		&models.IngredientLine{},
		&models.Step{},
		&models.GroceryItem{},
	))
	return db
}

func newService(t *testing.T) (*services.GroceryService, repository.GroceryRepository, *gorm.DB) {
	t.Helper()
	db := setupDB(t)
	groceryRepo := repository.NewGroceryRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	return services.NewGroceryService(groceryRepo, recipeRepo), groceryRepo, db
}

func seedRecipe(t *testing.T, db *gorm.DB, servings int, lines []models.IngredientLine) uint {
	t.Helper()
	recipe := models.Recipe{
		Name:        "Pasta al pomodoro",
		Description: "test",
		Category:    "primo",
		Servings:    servings,
		UserID:      1,
		Ingredients: lines,
	}
	require.NoError(t, db.Create(&recipe).Error)
	return recipe.ID
}

func itemQuantity(t *testing.T, repo repository.GroceryRepository, userID uint, ingredient string, recipeID uint) int {
	t.Helper()
	item, err := repo.FindItem(userID, ingredient, recipeID)
	require.NoError(t, err)
	return item.Quantity
}

func TestAddRecipeToListScalesAndAccumulates(t *testing.T) {
	service, groceryRepo, db := newService(t)
	recipeID := seedRecipe(t, db, 2, []models.IngredientLine{
		{Name: "pasta", Quantity: 200, Unit: "g"},
		{Name: "pomodori pelati", Quantity: 400},
	})

	// 4 portions of a 2-serving recipe doubles every quantity
	require.NoError(t, service.AddRecipeToList(1, recipeID, 4))
	assert.Equal(t, 400, itemQuantity(t, groceryRepo, 1, "pasta", recipeID))
	assert.Equal(t, 800, itemQuantity(t, groceryRepo, 1, "pomodori pelati", recipeID))

	// A second add accumulates: round(200×2) + round(200×1), not round(200×1)
	require.NoError(t, service.AddRecipeToList(1, recipeID, 2))
	assert.Equal(t, 600, itemQuantity(t, groceryRepo, 1, "pasta", recipeID))
	assert.Equal(t, 1200, itemQuantity(t, groceryRepo, 1, "pomodori pelati", recipeID))

	// Unit falls back to grams when the line has none
	item, err := groceryRepo.FindItem(1, "pomodori pelati", recipeID)
	require.NoError(t, err)
	assert.Equal(t, "g", item.Unit)
	pastaItem, err := groceryRepo.FindItem(1, "pasta", recipeID)
	require.NoError(t, err)
	assert.Equal(t, "g", pastaItem.Unit)
}

func TestAddRecipeToListDoubleAddDoubles(t *testing.T) {
	service, groceryRepo, db := newService(t)
	recipeID := seedRecipe(t, db, 2, []models.IngredientLine{
		{Name: "pasta", Quantity: 200, Unit: "g"},
	})

	require.NoError(t, service.AddRecipeToList(1, recipeID, 4))
	require.NoError(t, service.AddRecipeToList(1, recipeID, 4))

	assert.Equal(t, 800, itemQuantity(t, groceryRepo, 1, "pasta", recipeID))
}

func TestAddRecipeToListDefaultPortions(t *testing.T) {
	service, groceryRepo, db := newService(t)
	recipeID := seedRecipe(t, db, 2, []models.IngredientLine{
		{Name: "pasta", Quantity: 200, Unit: "g"},
	})

	// Absent portion count means "as stated": multiplier 1
	require.NoError(t, service.AddRecipeToList(1, recipeID, 0))
	assert.Equal(t, 200, itemQuantity(t, groceryRepo, 1, "pasta", recipeID))
}

func TestAddRecipeToListZeroServingsDefaultsToOne(t *testing.T) {
	service, groceryRepo, db := newService(t)
	recipeID := seedRecipe(t, db, 0, []models.IngredientLine{
		{Name: "farina", Quantity: 100, Unit: "g"},
	})

	require.NoError(t, service.AddRecipeToList(1, recipeID, 3))
	assert.Equal(t, 300, itemQuantity(t, groceryRepo, 1, "farina", recipeID))
}

func TestAddRecipeToListRoundsPerLine(t *testing.T) {
	service, groceryRepo, db := newService(t)
	recipeID := seedRecipe(t, db, 2, []models.IngredientLine{
		{Name: "sale", Quantity: 5, Unit: "g"},
	})

	// 3 portions of a 2-serving recipe: round(5 × 1.5) = 8
	require.NoError(t, service.AddRecipeToList(1, recipeID, 3))
	assert.Equal(t, 8, itemQuantity(t, groceryRepo, 1, "sale", recipeID))
}

func TestAddRecipeToListNoIngredients(t *testing.T) {
	service, _, db := newService(t)
	recipeID := seedRecipe(t, db, 2, nil)

	err := service.AddRecipeToList(1, recipeID, 2)
	assert.ErrorIs(t, err, services.ErrNoIngredients)
}

func TestAddRecipeToListMissingRecipe(t *testing.T) {
	service, _, _ := newService(t)

	err := service.AddRecipeToList(1, 999, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAddManualItem(t *testing.T) {
	service, groceryRepo, _ := newService(t)

	require.NoError(t, service.AddManualItem(1, "caffè", 250, ""))
	item, err := groceryRepo.FindItem(1, "caffè", models.ManualGroceryRecipeID)
	require.NoError(t, err)
	assert.Equal(t, 250, item.Quantity)
	assert.Equal(t, "g", item.Unit)

	// Manual items accumulate too
	require.NoError(t, service.AddManualItem(1, "caffè", 250, ""))
	assert.Equal(t, 500, itemQuantity(t, groceryRepo, 1, "caffè", models.ManualGroceryRecipeID))

	assert.ErrorIs(t, service.AddManualItem(1, "caffè", 0, ""), services.ErrQuantityTooSmall)
}

func TestRescalePortions(t *testing.T) {
	service, groceryRepo, db := newService(t)
	recipeID := seedRecipe(t, db, 2, []models.IngredientLine{
		{Name: "pasta", Quantity: 200, Unit: "g"},
		{Name: "pomodori pelati", Quantity: 400, Unit: "g"},
	})

	require.NoError(t, service.AddRecipeToList(1, recipeID, 4))

	// Implied portions: 400/(200/2) = 4 and 800/(400/2) = 4, average 4.
	// Delta +1 rewrites every row by 5/4.
	portions, err := service.RescalePortions(1, recipeID, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, portions)
	assert.Equal(t, 500, itemQuantity(t, groceryRepo, 1, "pasta", recipeID))
	assert.Equal(t, 1000, itemQuantity(t, groceryRepo, 1, "pomodori pelati", recipeID))
}

func TestRescalePortionsClampsToOne(t *testing.T) {
	service, groceryRepo, db := newService(t)
	recipeID := seedRecipe(t, db, 2, []models.IngredientLine{
		{Name: "pasta", Quantity: 200, Unit: "g"},
	})

	require.NoError(t, service.AddRecipeToList(1, recipeID, 4))

	portions, err := service.RescalePortions(1, recipeID, -10)
	require.NoError(t, err)
	assert.Equal(t, 1, portions)
	// round(400 × 1/4) = 100
	assert.Equal(t, 100, itemQuantity(t, groceryRepo, 1, "pasta", recipeID))
}

func TestRescalePortionsEmptyGroup(t *testing.T) {
	service, _, db := newService(t)
	recipeID := seedRecipe(t, db, 2, []models.IngredientLine{
		{Name: "pasta", Quantity: 200, Unit: "g"},
	})

	_, err := service.RescalePortions(1, recipeID, 1)
	assert.ErrorIs(t, err, services.ErrEmptyGroup)
}

func TestEditQuantity(t *testing.T) {
	service, groceryRepo, db := newService(t)
	recipeID := seedRecipe(t, db, 2, []models.IngredientLine{
		{Name: "pasta", Quantity: 200, Unit: "g"},
	})
	require.NoError(t, service.AddRecipeToList(1, recipeID, 2))

	require.NoError(t, service.EditQuantity(1, "pasta", recipeID, 50))
	assert.Equal(t, 50, itemQuantity(t, groceryRepo, 1, "pasta", recipeID))

	assert.ErrorIs(t, service.EditQuantity(1, "pasta", recipeID, 0), services.ErrQuantityTooSmall)
	assert.ErrorIs(t, service.EditQuantity(1, "farina", recipeID, 10), gorm.ErrRecordNotFound)
}

func TestRemoveAndClear(t *testing.T) {
	service, _, db := newService(t)
	recipeID := seedRecipe(t, db, 2, []models.IngredientLine{
		{Name: "pasta", Quantity: 200, Unit: "g"},
		{Name: "pomodori pelati", Quantity: 400, Unit: "g"},
	})
	require.NoError(t, service.AddRecipeToList(1, recipeID, 2))
	require.NoError(t, service.AddManualItem(1, "caffè", 250, "g"))

	removed, err := service.RemoveIngredient(1, "pasta", recipeID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = service.RemoveIngredient(1, "pasta", recipeID)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = service.RemoveRecipeGroup(1, recipeID)
	require.NoError(t, err)
	assert.True(t, removed)

	require.NoError(t, service.ClearList(1))
	items, err := service.List(1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
