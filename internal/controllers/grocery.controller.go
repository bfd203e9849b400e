package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"ricettario/internal/services"

	"github.com/gin-gonic/gin"
)

type AddToGroceryListRequest struct {
	RecipeID uint    `json:"recipeId" binding:"required"`
	Portions float64 `json:"porzioni"`
}

type ManualItemRequest struct {
	Ingredient string `json:"ingrediente" binding:"required"`
	Quantity   int    `json:"quantita" binding:"required"`
	Unit       string `json:"unita"`
}

type EditQuantityRequest struct {
	Ingredient string `json:"ingrediente" binding:"required"`
	RecipeID   uint   `json:"recipe_id"`
	Quantity   int    `json:"quantita" binding:"required"`
}

type RemoveItemRequest struct {
	Ingredient string `json:"ingrediente" binding:"required"`
	RecipeID   uint   `json:"recipe_id"`
}

type RescaleRequest struct {
	RecipeID uint `json:"recipe_id" binding:"required"`
	Delta    int  `json:"delta" binding:"required"`
}

type GroceryController struct {
	service *services.GroceryService
}

func NewGroceryController(service *services.GroceryService) *GroceryController {
	return &GroceryController{service: service}
}

// AddRecipeToList godoc
// @Summary Add a recipe's ingredients to the grocery list
// @Description Scales the ingredient quantities to the requested portion count and ACCUMULATES them into the list: adding the same recipe twice doubles its contribution.
// @Tags grocery
// @Accept json
// @Produce json
// @Param request body AddToGroceryListRequest true "Recipe and portion count"
// @Success 200 {object} map[string]interface{} "Ingredients added to grocery list"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /addToGroceryList [post]
func (gc *GroceryController) AddRecipeToList(c *gin.Context) {
	var req AddToGroceryListRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if req.Portions < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "porzioni must be a positive number when present",
		})
		return
	}

	err := gc.service.AddRecipeToList(currentUserID(c), req.RecipeID, req.Portions)
	if err != nil {
		switch {
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Recipe not found",
				"error":   "No recipe exists with the provided ID",
			})
		case errors.Is(err, services.ErrNoIngredients):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Recipe has no ingredients",
				"error":   "Nothing to add to the grocery list",
			})
		default:
			internalError(c, "Failed to add recipe to grocery list", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredients added to grocery list",
		"data":    nil,
	})
}

// GetGroceryList godoc
// @Summary Get the current user's grocery list
// @Tags grocery
// @Produce json
// @Success 200 {object} map[string]interface{} "Grocery list retrieved successfully"
// @Router /groceryList [get]
func (gc *GroceryController) GetGroceryList(c *gin.Context) {
	items, err := gc.service.List(currentUserID(c))
	if err != nil {
		internalError(c, "Failed to retrieve grocery list", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Grocery list retrieved successfully",
		"data":    items,
	})
}

// AddManualItem godoc
// @Summary Add a hand-typed item to the grocery list
// @Description Items added by hand use the manual sentinel recipe reference; re-adding accumulates.
// @Tags grocery
// @Accept json
// @Produce json
// @Param item body ManualItemRequest true "Item data"
// @Success 200 {object} map[string]interface{} "Item added to grocery list"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /groceryList [post]
func (gc *GroceryController) AddManualItem(c *gin.Context) {
	var req ManualItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	err := gc.service.AddManualItem(currentUserID(c), req.Ingredient, req.Quantity, req.Unit)
	if err != nil {
		if errors.Is(err, services.ErrQuantityTooSmall) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "quantita must be at least 1",
			})
			return
		}
		internalError(c, "Failed to add item to grocery list", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Item added to grocery list",
		"data":    nil,
	})
}

// EditQuantity godoc
// @Summary Overwrite a grocery item's quantity
// @Tags grocery
// @Accept json
// @Produce json
// @Param item body EditQuantityRequest true "Item identity and new quantity"
// @Success 200 {object} map[string]interface{} "Quantity updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Item not found"
// @Router /groceryList [put]
func (gc *GroceryController) EditQuantity(c *gin.Context) {
	var req EditQuantityRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	err := gc.service.EditQuantity(currentUserID(c), req.Ingredient, req.RecipeID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuantityTooSmall):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "quantita must be at least 1",
			})
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Item not found",
				"error":   "This ingredient is not on your grocery list",
			})
		default:
			internalError(c, "Failed to update quantity", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Quantity updated successfully",
		"data":    nil,
	})
}

// RescalePortions godoc
// @Summary Shift a recipe's grocery contribution by a portion delta
// @Description Reconstructs the implied portion count from the stored quantities, then rewrites each row proportionally. Repeated rounding makes this lossy: +1 followed by -1 need not restore the original values.
// @Tags grocery
// @Accept json
// @Produce json
// @Param request body RescaleRequest true "Recipe and portion delta"
// @Success 200 {object} map[string]interface{} "Portions rescaled successfully"
// @Failure 404 {object} map[string]interface{} "No grocery items for this recipe"
// @Router /groceryList/porzioni [put]
func (gc *GroceryController) RescalePortions(c *gin.Context) {
	var req RescaleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	portions, err := gc.service.RescalePortions(currentUserID(c), req.RecipeID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyGroup), isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "No grocery items for this recipe",
				"error":   "Add the recipe to your grocery list first",
			})
		default:
			internalError(c, "Failed to rescale portions", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Portions rescaled successfully",
		"data":    gin.H{"porzioni": portions},
	})
}

// RemoveIngredient godoc
// @Summary Remove a single item from the grocery list
// @Tags grocery
// @Accept json
// @Produce json
// @Param item body RemoveItemRequest true "Item identity"
// @Success 200 {object} map[string]interface{} "Item removed successfully"
// @Failure 404 {object} map[string]interface{} "Item not found"
// @Router /groceryList/item [delete]
func (gc *GroceryController) RemoveIngredient(c *gin.Context) {
	var req RemoveItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	removed, err := gc.service.RemoveIngredient(currentUserID(c), req.Ingredient, req.RecipeID)
	if err != nil {
		internalError(c, "Failed to remove item", err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Item not found",
			"error":   "This ingredient is not on your grocery list",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Item removed successfully",
		"data":    nil,
	})
}

// RemoveRecipeGroup godoc
// @Summary Remove every grocery item contributed by a recipe
// @Tags grocery
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe items removed successfully"
// @Failure 404 {object} map[string]interface{} "No grocery items for this recipe"
// @Router /groceryList/ricetta/{id} [delete]
func (gc *GroceryController) RemoveRecipeGroup(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	removed, err := gc.service.RemoveRecipeGroup(currentUserID(c), uint(id))
	if err != nil {
		internalError(c, "Failed to remove recipe items", err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No grocery items for this recipe",
			"error":   "This recipe has no items on your grocery list",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe items removed successfully",
		"data":    nil,
	})
}

// ClearList godoc
// @Summary Empty the current user's grocery list
// @Tags grocery
// @Produce json
// @Success 200 {object} map[string]interface{} "Grocery list cleared successfully"
// @Router /groceryList [delete]
func (gc *GroceryController) ClearList(c *gin.Context) {
	if err := gc.service.ClearList(currentUserID(c)); err != nil {
		internalError(c, "Failed to clear grocery list", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Grocery list cleared successfully",
		"data":    nil,
	})
}
