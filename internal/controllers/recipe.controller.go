package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"ricettario/internal/cache"
	"ricettario/internal/models"
	"ricettario/internal/repository"

	"github.com/gin-gonic/gin"
)

type IngredientRequest struct {
	Name     string  `json:"nome" binding:"required"`
	Quantity float64 `json:"quantita" binding:"required,gt=0"`
	Unit     string  `json:"unita"`
}

type RecipeRequest struct {
	Name        string              `json:"nome" binding:"required"`
	Description string              `json:"descrizione" binding:"required"`
	Category    string              `json:"tipologia" binding:"required"`
	DietType    string              `json:"tipo_dieta" binding:"required"`
	Image       string              `json:"immagine" binding:"required"`
	Origin      string              `json:"provenienza" binding:"required"`
	Servings    int                 `json:"porzioni" binding:"required,gt=0"`
	Allergens   string              `json:"allergeni"`
	PrepMinutes int                 `json:"tempo_preparazione" binding:"required,gt=0"`
	Calories    int                 `json:"calorie" binding:"required,gt=0"`
	Ingredients []IngredientRequest `json:"ingredienti" binding:"required,min=1,dive"`
	Steps       []string            `json:"passaggi" binding:"required,min=1"`
}

// CompleteRecipe is a recipe with the derived data the feed needs in one
// response: rating aggregate, save count and the viewer's save-state.
type CompleteRecipe struct {
	models.Recipe
	Rating    models.ReviewAggregate `json:"valutazione"`
	SaveCount int64                  `json:"numero_salvataggi"`
	Saved     bool                   `json:"salvata"`
}

type RecipeController struct {
	recipeRepo repository.RecipeRepository
	saveRepo   repository.SaveRepository
	reviewRepo repository.ReviewRepository
	cache      *cache.RedisClient
}

func NewRecipeController(recipeRepo repository.RecipeRepository, saveRepo repository.SaveRepository,
	reviewRepo repository.ReviewRepository, redisCache *cache.RedisClient) *RecipeController {
	return &RecipeController{
		recipeRepo: recipeRepo,
		saveRepo:   saveRepo,
		reviewRepo: reviewRepo,
		cache:      redisCache,
	}
}

func (rc *RecipeController) buildRecipe(req *RecipeRequest, userID uint) *models.Recipe {
	recipe := &models.Recipe{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		DietType:    req.DietType,
		Image:       req.Image,
		Origin:      req.Origin,
		Servings:    req.Servings,
		Allergens:   req.Allergens,
		PrepMinutes: req.PrepMinutes,
		Calories:    req.Calories,
		UserID:      userID,
	}
	for _, ing := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.IngredientLine{
			Name:     strings.TrimSpace(ing.Name),
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	for i, step := range req.Steps {
		recipe.Steps = append(recipe.Steps, models.Step{
			Position: i + 1,
			Text:     strings.TrimSpace(step),
		})
	}
	return recipe
}

// validateIngredients rejects blank names and non-positive quantities that
// slip past the binding tags (e.g. whitespace-only names).
func validateIngredients(req *RecipeRequest) string {
	for _, ing := range req.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return "Ingredient name must not be empty"
		}
		if ing.Quantity <= 0 {
			return "Ingredient quantity must be positive"
		}
	}
	for _, step := range req.Steps {
		if strings.TrimSpace(step) == "" {
			return "Steps must not be empty"
		}
	}
	return ""
}

func (rc *RecipeController) invalidateFeed() {
	if rc.cache == nil {
		return
	}
	if err := rc.cache.Delete(cache.RecipeFeedKey); err != nil {
		log.Printf("Failed to invalidate recipe feed cache: %v", err)
	}
}

// CreateRecipe godoc
// @Summary Create a new recipe
// @Description Create a recipe with its ingredient lines and ordered steps
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body RecipeRequest true "Recipe data"
// @Success 201 {object} map[string]interface{} "Recipe created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /ricette [post]
func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	var req RecipeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if msg := validateIngredients(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   msg,
		})
		return
	}

	recipe := rc.buildRecipe(&req, currentUserID(c))

	if err := rc.recipeRepo.Create(recipe); err != nil {
		internalError(c, "Failed to create recipe", err)
		return
	}

	rc.invalidateFeed()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe created successfully",
		"data":    recipe,
	})
}

// GetAllRecipes godoc
// @Summary List recipes
// @Description Retrieve all recipes, optionally filtered by category
// @Tags recipes
// @Produce json
// @Param tipologia query string false "Category filter"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Router /ricette [get]
func (rc *RecipeController) GetAllRecipes(c *gin.Context) {
	recipes, err := rc.recipeRepo.FindAll(c.Query("tipologia"))
	if err != nil {
		internalError(c, "Failed to retrieve recipes", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    recipes,
	})
}

// GetRecipeByID godoc
// @Summary Get a recipe by ID
// @Description Retrieve a recipe with its ingredient lines and steps
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /ricette/{id} [get]
func (rc *RecipeController) GetRecipeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	recipe, err := rc.recipeRepo.FindByIDWithDetails(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe retrieved successfully",
		"data":    recipe,
	})
}

// GetCompleteRecipes godoc
// @Summary Batched recipe feed
// @Description Recipes with ingredients, steps, rating aggregate, save count and the viewer's save-state
// @Tags recipes
// @Produce json
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Router /ricette-complete [get]
func (rc *RecipeController) GetCompleteRecipes(c *gin.Context) {
	feed, err := rc.loadCompleteFeed()
	if err != nil {
		internalError(c, "Failed to retrieve recipes", err)
		return
	}

	// Save-state is per viewer, overlaid after the shared feed is built
	if userID := currentUserID(c); userID != 0 {
		savedIDs, err := rc.saveRepo.SavedRecipeIDs(userID)
		if err != nil {
			internalError(c, "Failed to retrieve recipes", err)
			return
		}
		saved := make(map[uint]bool, len(savedIDs))
		for _, id := range savedIDs {
			saved[id] = true
		}
		for i := range feed {
			feed[i].Saved = saved[feed[i].ID]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    feed,
	})
}

func (rc *RecipeController) loadCompleteFeed() ([]CompleteRecipe, error) {
	if rc.cache != nil {
		var cached []CompleteRecipe
		hit, err := rc.cache.GetJSON(cache.RecipeFeedKey, &cached)
		if err != nil {
			log.Printf("Recipe feed cache read failed: %v", err)
		} else if hit {
			return cached, nil
		}
	}

	recipes, err := rc.recipeRepo.FindAllWithDetails("")
	if err != nil {
		return nil, err
	}

	feed := make([]CompleteRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		agg, err := rc.reviewRepo.Aggregate(recipe.ID)
		if err != nil {
			return nil, err
		}
		count, err := rc.saveRepo.CountForRecipe(recipe.ID)
		if err != nil {
			return nil, err
		}
		feed = append(feed, CompleteRecipe{
			Recipe:    recipe,
			Rating:    *agg,
			SaveCount: count,
		})
	}

	if rc.cache != nil {
		if err := rc.cache.SetJSON(cache.RecipeFeedKey, feed, cache.RecipeFeedTTL); err != nil {
			log.Printf("Recipe feed cache write failed: %v", err)
		}
	}
	return feed, nil
}

// authorizeRecipe resolves the recipe and enforces author-only mutation:
// 404 when the ID does not exist, 403 when it exists but belongs to someone
// else.
func (rc *RecipeController) authorizeRecipe(c *gin.Context) (*models.Recipe, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	recipe, err := rc.recipeRepo.FindByID(uint(id))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Recipe not found",
				"error":   "No recipe exists with the provided ID",
			})
			return nil, false
		}
		internalError(c, "Failed to retrieve recipe", err)
		return nil, false
	}

	if recipe.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Forbidden",
			"error":   "Only the recipe's author can modify it",
		})
		return nil, false
	}
	return recipe, true
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Replace the recipe's fields, ingredient lines and steps. Author only.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body RecipeRequest true "Recipe data"
// @Success 200 {object} map[string]interface{} "Recipe updated successfully"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /ricette/{id} [put]
func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	recipe, ok := rc.authorizeRecipe(c)
	if !ok {
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if msg := validateIngredients(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   msg,
		})
		return
	}

	updated := rc.buildRecipe(&req, recipe.UserID)
	updated.ID = recipe.ID

	if err := rc.recipeRepo.Update(updated); err != nil {
		internalError(c, "Failed to update recipe", err)
		return
	}

	rc.invalidateFeed()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe updated successfully",
		"data":    updated,
	})
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Remove the recipe and every row referencing it. Author only.
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe deleted successfully"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /ricette/{id} [delete]
func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	recipe, ok := rc.authorizeRecipe(c)
	if !ok {
		return
	}

	if err := rc.recipeRepo.Delete(recipe.ID); err != nil {
		internalError(c, "Failed to delete recipe", err)
		return
	}

	rc.invalidateFeed()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe deleted successfully",
		"data":    nil,
	})
}
