package controllers

import (
	"net/http"

	"ricettario/internal/repository"

	"github.com/gin-gonic/gin"
)

type SaveRequest struct {
	RecipeID uint `json:"recipe_id" binding:"required"`
}

type SaveController struct {
	saveRepo   repository.SaveRepository
	recipeRepo repository.RecipeRepository
}

func NewSaveController(saveRepo repository.SaveRepository, recipeRepo repository.RecipeRepository) *SaveController {
	return &SaveController{
		saveRepo:   saveRepo,
		recipeRepo: recipeRepo,
	}
}

// SaveRecipe godoc
// @Summary Save a recipe
// @Description Bookmark a recipe for the current user. Saving twice is a no-op.
// @Tags saves
// @Accept json
// @Produce json
// @Param save body SaveRequest true "Recipe to save"
// @Success 200 {object} map[string]interface{} "Recipe saved successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /salvaRicetta [post]
func (sc *SaveController) SaveRecipe(c *gin.Context) {
	var req SaveRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := sc.recipeRepo.FindByID(req.RecipeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	if err := sc.saveRepo.Save(currentUserID(c), req.RecipeID); err != nil {
		internalError(c, "Failed to save recipe", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe saved successfully",
		"data":    nil,
	})
}

// UnsaveRecipe godoc
// @Summary Remove a saved recipe
// @Description Drop the bookmark. Unsaving a never-saved recipe is a 404.
// @Tags saves
// @Accept json
// @Produce json
// @Param save body SaveRequest true "Recipe to unsave"
// @Success 200 {object} map[string]interface{} "Recipe unsaved successfully"
// @Failure 404 {object} map[string]interface{} "Save not found"
// @Router /salvaRicetta [delete]
func (sc *SaveController) UnsaveRecipe(c *gin.Context) {
	var req SaveRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	removed, err := sc.saveRepo.Unsave(currentUserID(c), req.RecipeID)
	if err != nil {
		internalError(c, "Failed to unsave recipe", err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Save not found",
			"error":   "This recipe is not in your saved list",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe unsaved successfully",
		"data":    nil,
	})
}

// GetSavedRecipes godoc
// @Summary List the current user's saved recipes
// @Tags saves
// @Produce json
// @Success 200 {object} map[string]interface{} "Saved recipes retrieved successfully"
// @Router /ricetteSalvate [get]
func (sc *SaveController) GetSavedRecipes(c *gin.Context) {
	recipes, err := sc.saveRepo.ListSavedRecipes(currentUserID(c))
	if err != nil {
		internalError(c, "Failed to retrieve saved recipes", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Saved recipes retrieved successfully",
		"data":    recipes,
	})
}
