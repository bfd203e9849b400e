package controllers

import (
	"net/http"
	"strconv"

	"ricettario/internal/models"
	"ricettario/internal/repository"

	"github.com/gin-gonic/gin"
)

type ReviewRequest struct {
	Stars int `json:"stelle" binding:"required"`
}

type ReviewController struct {
	reviewRepo repository.ReviewRepository
	recipeRepo repository.RecipeRepository
}

func NewReviewController(reviewRepo repository.ReviewRepository, recipeRepo repository.RecipeRepository) *ReviewController {
	return &ReviewController{
		reviewRepo: reviewRepo,
		recipeRepo: recipeRepo,
	}
}

func parseRecipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

// SubmitReview godoc
// @Summary Rate a recipe
// @Description Stars must be an integer in [1,5]. A second submission by the same user overwrites the previous one; no history is kept.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param review body ReviewRequest true "Star rating"
// @Success 200 {object} map[string]interface{} "Review submitted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /ricette/{id}/recensione [post]
func (rc *ReviewController) SubmitReview(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if req.Stars < 1 || req.Stars > 5 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "stelle must be between 1 and 5",
		})
		return
	}

	if _, err := rc.recipeRepo.FindByID(recipeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	review := models.Review{
		RecipeID: recipeID,
		UserID:   currentUserID(c),
		Stars:    req.Stars,
	}
	if err := rc.reviewRepo.Upsert(&review); err != nil {
		internalError(c, "Failed to submit review", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Review submitted successfully",
		"data":    nil,
	})
}

// GetReviews godoc
// @Summary Recipe rating aggregate and review list
// @Description Mean is unrounded; rounding is a presentation concern.
// @Tags reviews
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Reviews retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /ricette/{id}/recensioni [get]
func (rc *ReviewController) GetReviews(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	if _, err := rc.recipeRepo.FindByID(recipeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	agg, err := rc.reviewRepo.Aggregate(recipeID)
	if err != nil {
		internalError(c, "Failed to retrieve reviews", err)
		return
	}

	reviews, err := rc.reviewRepo.ListForRecipe(recipeID)
	if err != nil {
		internalError(c, "Failed to retrieve reviews", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reviews retrieved successfully",
		"data": gin.H{
			"valutazione": agg,
			"recensioni":  reviews,
		},
	})
}
