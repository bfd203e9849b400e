package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ricettario/internal/controllers"
	"ricettario/internal/models"
	"ricettario/internal/repository"
	"ricettario/internal/services"
	"ricettario/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires the full router against an in-memory database, the
// same way cmd/main.go does against Postgres.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.IngredientLine{},
		&models.Step{},
		&models.Save{},
		&models.Review{},
		&models.Comment{},
		&models.Notification{},
		&models.GroceryItem{},
		&models.ResetPassword{},
	))

	userRepo := repository.NewUserRepository(db)
	resetRepo := repository.NewResetPasswordRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	saveRepo := repository.NewSaveRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	groceryRepo := repository.NewGroceryRepository(db)

	groceryService := services.NewGroceryService(groceryRepo, recipeRepo)

	router := gin.New()
	routes.RegisterUserRoutes(router, controllers.NewUserController(userRepo, resetRepo))
	routes.RegisterRecipeRoutes(router, controllers.NewRecipeController(recipeRepo, saveRepo, reviewRepo, nil))
	routes.RegisterSaveRoutes(router, controllers.NewSaveController(saveRepo, recipeRepo))
	routes.RegisterGroceryRoutes(router, controllers.NewGroceryController(groceryService))
	routes.RegisterReviewRoutes(router, controllers.NewReviewController(reviewRepo, recipeRepo))
	routes.RegisterCommentRoutes(router, controllers.NewCommentController(commentRepo, recipeRepo, notificationRepo))
	routes.RegisterNotificationRoutes(router, controllers.NewNotificationController(notificationRepo))
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine, nickname, email string) string {
	t.Helper()

	w := doJSON(router, http.MethodPost, "/users", "", gin.H{
		"nickname": nickname, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/login", "", gin.H{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Data.Token)
	return response.Data.Token
}

func createRecipe(t *testing.T, router *gin.Engine, token string, servings int) uint {
	t.Helper()

	w := doJSON(router, http.MethodPost, "/ricette", token, gin.H{
		"nome":               "Pasta",
		"descrizione":        "Pasta semplice",
		"tipologia":          "primo",
		"tipo_dieta":         "vegetariana",
		"immagine":           "/uploads/pasta.jpg",
		"provenienza":        "Italia",
		"porzioni":           servings,
		"tempo_preparazione": 20,
		"calorie":            400,
		"ingredienti": []gin.H{
			{"nome": "pasta", "quantita": 200, "unita": "g"},
		},
		"passaggi": []string{"Cuocere la pasta"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.Data.ID)
	return response.Data.ID
}

func TestGroceryListEndToEnd(t *testing.T) {
	router := newTestServer(t)

	token := registerAndLogin(t, router, "chef1", "a@x.com")
	recipeID := createRecipe(t, router, token, 2)

	// 4 portions of a 2-serving recipe: 200 g of pasta becomes 400 g
	w := doJSON(router, http.MethodPost, "/addToGroceryList", token, gin.H{
		"recipeId": recipeID, "porzioni": 4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/groceryList", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Data []models.GroceryItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "pasta", list.Data[0].Ingredient)
	assert.Equal(t, 400, list.Data[0].Quantity)
	assert.Equal(t, "g", list.Data[0].Unit)
	assert.Equal(t, recipeID, list.Data[0].RecipeID)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/ricette"},
		{http.MethodPost, "/addToGroceryList"},
		{http.MethodGet, "/groceryList"},
		{http.MethodGet, "/ricetteSalvate"},
		{http.MethodGet, "/notifications"},
	}

	for _, p := range paths {
		t.Run(fmt.Sprintf("%s %s", p.method, p.path), func(t *testing.T) {
			w := doJSON(router, p.method, p.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestSaveAndFeedEndToEnd(t *testing.T) {
	router := newTestServer(t)

	authorToken := registerAndLogin(t, router, "chef1", "a@x.com")
	viewerToken := registerAndLogin(t, router, "viewer", "v@x.com")
	recipeID := createRecipe(t, router, authorToken, 2)

	// Saving twice stays idempotent
	for i := 0; i < 2; i++ {
		w := doJSON(router, http.MethodPost, "/salvaRicetta", viewerToken, gin.H{"recipe_id": recipeID})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/ricette-complete", viewerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feed struct {
		Data []struct {
			ID        uint  `json:"id"`
			SaveCount int64 `json:"numero_salvataggi"`
			Saved     bool  `json:"salvata"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed.Data, 1)
	assert.Equal(t, recipeID, feed.Data[0].ID)
	assert.Equal(t, int64(1), feed.Data[0].SaveCount)
	assert.True(t, feed.Data[0].Saved)

	// The author never saved it, the overlay is per viewer
	w = doJSON(router, http.MethodGet, "/ricette-complete", authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.False(t, feed.Data[0].Saved)
}

func TestCommentNotificationEndToEnd(t *testing.T) {
	router := newTestServer(t)

	authorToken := registerAndLogin(t, router, "chef1", "a@x.com")
	commenterToken := registerAndLogin(t, router, "goloso", "g@x.com")
	recipeID := createRecipe(t, router, authorToken, 2)

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/ricette/%d/commento", recipeID), commenterToken,
		gin.H{"testo": "Ottima ricetta!"})
	require.Equal(t, http.StatusCreated, w.Code)

	// The author finds the notification in their inbox
	w = doJSON(router, http.MethodGet, "/notifications", authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var inbox struct {
		Data []struct {
			ID   uint   `json:"id"`
			Type string `json:"type"`
			Read bool   `json:"read"`
			Data struct {
				RecipeID       uint   `json:"recipe_id"`
				AuthorNickname string `json:"author_nickname"`
			} `json:"data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inbox))
	require.Len(t, inbox.Data, 1)
	assert.Equal(t, models.NotificationTypeComment, inbox.Data[0].Type)
	assert.False(t, inbox.Data[0].Read)
	assert.Equal(t, recipeID, inbox.Data[0].Data.RecipeID)
	assert.Equal(t, "goloso", inbox.Data[0].Data.AuthorNickname)

	// The commenter's inbox stays empty
	w = doJSON(router, http.MethodGet, "/notifications", commenterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var commenterInbox struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &commenterInbox))
	assert.Empty(t, commenterInbox.Data)

	// Only the recipient can mark it read
	notificationID := inbox.Data[0].ID
	w = doJSON(router, http.MethodPost, fmt.Sprintf("/notifications/%d/read", notificationID), commenterToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, fmt.Sprintf("/notifications/%d/read", notificationID), authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestReviewUpsertEndToEnd(t *testing.T) {
	router := newTestServer(t)

	authorToken := registerAndLogin(t, router, "chef1", "a@x.com")
	raterToken := registerAndLogin(t, router, "rater", "r@x.com")
	recipeID := createRecipe(t, router, authorToken, 2)

	for _, stars := range []int{3, 5} {
		w := doJSON(router, http.MethodPost, fmt.Sprintf("/ricette/%d/recensione", recipeID), raterToken,
			gin.H{"stelle": stars})
		require.Equal(t, http.StatusOK, w.Code)
	}

	// Out-of-range stars are rejected before touching storage
	w := doJSON(router, http.MethodPost, fmt.Sprintf("/ricette/%d/recensione", recipeID), raterToken,
		gin.H{"stelle": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/ricette/%d/recensioni", recipeID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reviews struct {
		Data struct {
			Rating struct {
				Mean  float64 `json:"media"`
				Count int64   `json:"numero"`
			} `json:"valutazione"`
			Items []json.RawMessage `json:"recensioni"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	assert.Equal(t, int64(1), reviews.Data.Rating.Count)
	assert.Equal(t, 5.0, reviews.Data.Rating.Mean)
	assert.Len(t, reviews.Data.Items, 1)
}
