package controllers_test

import (
	"net/http"
	"testing"

	"ricettario/internal/controllers"
	"ricettario/internal/mocks"
	"ricettario/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func validRecipeBody() gin.H {
	return gin.H{
		"nome":               "Pasta al pomodoro",
		"descrizione":        "Un classico",
		"tipologia":          "primo",
		"tipo_dieta":         "vegetariana",
		"immagine":           "/uploads/pasta.jpg",
		"provenienza":        "Italia",
		"porzioni":           2,
		"tempo_preparazione": 25,
		"calorie":            450,
		"ingredienti": []gin.H{
			{"nome": "pasta", "quantita": 200, "unita": "g"},
		},
		"passaggi": []string{"Cuocere la pasta"},
	}
}

func newRecipeRouter(t *testing.T, userID uint) (*gin.Engine, *mocks.MockRecipeRepository, *mocks.MockSaveRepository, *mocks.MockReviewRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recipeRepo := new(mocks.MockRecipeRepository)
	saveRepo := new(mocks.MockSaveRepository)
	reviewRepo := new(mocks.MockReviewRepository)
	rc := controllers.NewRecipeController(recipeRepo, saveRepo, reviewRepo, nil)

	router := gin.New()
	if userID != 0 {
		router.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Set("nickname", "chef1")
		})
	}
	router.GET("/ricette", rc.GetAllRecipes)
	router.GET("/ricette/:id", rc.GetRecipeByID)
	router.GET("/ricette-complete", rc.GetCompleteRecipes)
	router.POST("/ricette", rc.CreateRecipe)
	router.PUT("/ricette/:id", rc.UpdateRecipe)
	router.DELETE("/ricette/:id", rc.DeleteRecipe)
	return router, recipeRepo, saveRepo, reviewRepo
}

func ownedRecipe(id, userID uint) *models.Recipe {
	recipe := &models.Recipe{Name: "Pasta", Servings: 2, UserID: userID}
	recipe.ID = id
	return recipe
}

func TestCreateRecipe(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(body gin.H)
		wantStatus int
	}{
		{
			name:       "valid recipe",
			mutate:     func(gin.H) {},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing ingredients",
			mutate:     func(body gin.H) { body["ingredienti"] = []gin.H{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing steps",
			mutate:     func(body gin.H) { body["passaggi"] = []string{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank ingredient name",
			mutate:     func(body gin.H) { body["ingredienti"] = []gin.H{{"nome": "   ", "quantita": 200}} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank step",
			mutate:     func(body gin.H) { body["passaggi"] = []string{"   "} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero servings",
			mutate:     func(body gin.H) { body["porzioni"] = 0 },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, recipeRepo, _, _ := newRecipeRouter(t, 7)
			if tt.wantStatus == http.StatusCreated {
				recipeRepo.On("Create", mock.AnythingOfType("*models.Recipe")).Return(nil)
			}

			body := validRecipeBody()
			tt.mutate(body)
			w := performJSON(router, http.MethodPost, "/ricette", body)

			assert.Equal(t, tt.wantStatus, w.Code)
			recipeRepo.AssertExpectations(t)
		})
	}
}

func TestCreateRecipeAssignsAuthorAndStepOrder(t *testing.T) {
	router, recipeRepo, _, _ := newRecipeRouter(t, 7)

	var created *models.Recipe
	recipeRepo.On("Create", mock.AnythingOfType("*models.Recipe")).
		Run(func(args mock.Arguments) { created = args.Get(0).(*models.Recipe) }).
		Return(nil)

	body := validRecipeBody()
	body["passaggi"] = []string{"Bollire l'acqua", "Cuocere la pasta", "Condire"}
	w := performJSON(router, http.MethodPost, "/ricette", body)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, uint(7), created.UserID)
	require.Len(t, created.Steps, 3)
	for i, step := range created.Steps {
		assert.Equal(t, i+1, step.Position)
	}
}

func TestUpdateRecipeAuthorization(t *testing.T) {
	tests := []struct {
		name       string
		recipe     *models.Recipe
		findErr    error
		wantStatus int
	}{
		{
			name:       "author can update",
			recipe:     ownedRecipe(3, 7),
			wantStatus: http.StatusOK,
		},
		{
			name:       "someone else's recipe",
			recipe:     ownedRecipe(3, 99),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown recipe",
			findErr:    gorm.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, recipeRepo, _, _ := newRecipeRouter(t, 7)
			recipeRepo.On("FindByID", uint(3)).Return(tt.recipe, tt.findErr)
			if tt.wantStatus == http.StatusOK {
				recipeRepo.On("Update", mock.AnythingOfType("*models.Recipe")).Return(nil)
			}

			w := performJSON(router, http.MethodPut, "/ricette/3", validRecipeBody())

			assert.Equal(t, tt.wantStatus, w.Code)
			recipeRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteRecipeAuthorization(t *testing.T) {
	tests := []struct {
		name       string
		recipe     *models.Recipe
		findErr    error
		wantStatus int
	}{
		{
			name:       "author can delete",
			recipe:     ownedRecipe(3, 7),
			wantStatus: http.StatusOK,
		},
		{
			name:       "someone else's recipe",
			recipe:     ownedRecipe(3, 99),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown recipe",
			findErr:    gorm.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, recipeRepo, _, _ := newRecipeRouter(t, 7)
			recipeRepo.On("FindByID", uint(3)).Return(tt.recipe, tt.findErr)
			if tt.wantStatus == http.StatusOK {
				recipeRepo.On("Delete", uint(3)).Return(nil)
			}

			w := performJSON(router, http.MethodDelete, "/ricette/3", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			recipeRepo.AssertExpectations(t)
		})
	}
}

func TestGetRecipeByIDInvalidID(t *testing.T) {
	router, _, _, _ := newRecipeRouter(t, 0)

	w := performJSON(router, http.MethodGet, "/ricette/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCompleteRecipesAnonymous(t *testing.T) {
	router, recipeRepo, saveRepo, reviewRepo := newRecipeRouter(t, 0)

	recipe := *ownedRecipe(3, 99)
	recipeRepo.On("FindAllWithDetails", "").Return([]models.Recipe{recipe}, nil)
	reviewRepo.On("Aggregate", uint(3)).Return(&models.ReviewAggregate{Mean: 4.5, Count: 2}, nil)
	saveRepo.On("CountForRecipe", uint(3)).Return(int64(5), nil)

	w := performJSON(router, http.MethodGet, "/ricette-complete", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"media":4.5`)
	assert.Contains(t, body, `"numero":2`)
	assert.Contains(t, body, `"numero_salvataggi":5`)
	assert.Contains(t, body, `"salvata":false`)
	// Anonymous viewers never trigger a save-state lookup
	saveRepo.AssertNotCalled(t, "SavedRecipeIDs", mock.Anything)
}

func TestGetCompleteRecipesOverlaysViewerSaves(t *testing.T) {
	router, recipeRepo, saveRepo, reviewRepo := newRecipeRouter(t, 7)

	saved := *ownedRecipe(3, 99)
	other := *ownedRecipe(4, 99)
	recipeRepo.On("FindAllWithDetails", "").Return([]models.Recipe{saved, other}, nil)
	reviewRepo.On("Aggregate", mock.AnythingOfType("uint")).Return(&models.ReviewAggregate{}, nil)
	saveRepo.On("CountForRecipe", mock.AnythingOfType("uint")).Return(int64(0), nil)
	saveRepo.On("SavedRecipeIDs", uint(7)).Return([]uint{3}, nil)

	w := performJSON(router, http.MethodGet, "/ricette-complete", nil)

	require.Equal(t, http.StatusOK, w.Code)

	type feedEntry struct {
		ID    uint `json:"id"`
		Saved bool `json:"salvata"`
	}
	var response struct {
		Data []feedEntry `json:"data"`
	}
	require.NoError(t, decodeJSON(w, &response))
	require.Len(t, response.Data, 2)
	assert.True(t, response.Data[0].Saved)
	assert.False(t, response.Data[1].Saved)
}
