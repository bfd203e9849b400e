package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"ricettario/internal/models"
	"ricettario/internal/repository"

	"github.com/gin-gonic/gin"
)

type CommentRequest struct {
	Text string `json:"testo" binding:"required"`
}

type CommentController struct {
	commentRepo      repository.CommentRepository
	recipeRepo       repository.RecipeRepository
	notificationRepo repository.NotificationRepository
}

func NewCommentController(commentRepo repository.CommentRepository, recipeRepo repository.RecipeRepository,
	notificationRepo repository.NotificationRepository) *CommentController {
	return &CommentController{
		commentRepo:      commentRepo,
		recipeRepo:       recipeRepo,
		notificationRepo: notificationRepo,
	}
}

// CreateComment godoc
// @Summary Comment on a recipe
// @Description Appends a comment; the recipe's author gets a notification unless they are the commenter.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param comment body CommentRequest true "Comment text"
// @Success 201 {object} map[string]interface{} "Comment created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /ricette/{id}/commento [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "testo must not be empty",
		})
		return
	}

	recipe, err := cc.recipeRepo.FindByID(recipeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	comment := models.Comment{
		RecipeID: recipeID,
		UserID:   currentUserID(c),
		Text:     text,
	}
	if err := cc.commentRepo.Create(&comment); err != nil {
		internalError(c, "Failed to create comment", err)
		return
	}

	if recipe.UserID != comment.UserID {
		cc.notifyAuthor(recipe, &comment, c.GetString("nickname"))
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Comment created successfully",
		"data":    comment,
	})
}

// notifyAuthor records the comment notification for the recipe's author. A
// failure here never fails the comment itself.
func (cc *CommentController) notifyAuthor(recipe *models.Recipe, comment *models.Comment, nickname string) {
	notification := models.Notification{
		RecipientID: recipe.UserID,
		Type:        models.NotificationTypeComment,
	}
	payload := models.CommentNotificationData{
		RecipeID:       recipe.ID,
		RecipeName:     recipe.Name,
		CommentID:      comment.ID,
		AuthorNickname: nickname,
	}
	if err := notification.SetPayload(&payload); err != nil {
		log.Printf("Failed to encode comment notification: %v", err)
		return
	}
	if err := cc.notificationRepo.Create(&notification); err != nil {
		log.Printf("Failed to create comment notification: %v", err)
	}
}

// GetComments godoc
// @Summary List a recipe's comments
// @Tags comments
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Comments retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /ricette/{id}/commenti [get]
func (cc *CommentController) GetComments(c *gin.Context) {
	recipeID, ok := parseRecipeID(c)
	if !ok {
		return
	}

	if _, err := cc.recipeRepo.FindByID(recipeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recipe not found",
			"error":   "No recipe exists with the provided ID",
		})
		return
	}

	comments, err := cc.commentRepo.ListForRecipe(recipeID)
	if err != nil {
		internalError(c, "Failed to retrieve comments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comments retrieved successfully",
		"data":    comments,
	})
}

// authorizeComment enforces author-only mutation: 404 for an unknown ID,
// 403 for someone else's comment.
func (cc *CommentController) authorizeComment(c *gin.Context) (*models.Comment, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid comment ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	comment, err := cc.commentRepo.FindByID(uint(id))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Comment not found",
				"error":   "No comment exists with the provided ID",
			})
			return nil, false
		}
		internalError(c, "Failed to retrieve comment", err)
		return nil, false
	}

	if comment.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Forbidden",
			"error":   "Only the comment's author can modify it",
		})
		return nil, false
	}
	return comment, true
}

// UpdateComment godoc
// @Summary Edit a comment
// @Description Author only.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param comment body CommentRequest true "New text"
// @Success 200 {object} map[string]interface{} "Comment updated successfully"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /commento/{id} [put]
func (cc *CommentController) UpdateComment(c *gin.Context) {
	comment, ok := cc.authorizeComment(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "testo must not be empty",
		})
		return
	}

	comment.Text = text
	if err := cc.commentRepo.Update(comment); err != nil {
		internalError(c, "Failed to update comment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment updated successfully",
		"data":    comment,
	})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Author only.
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{} "Comment deleted successfully"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /commento/{id} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	comment, ok := cc.authorizeComment(c)
	if !ok {
		return
	}

	if err := cc.commentRepo.Delete(comment.ID); err != nil {
		internalError(c, "Failed to delete comment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment deleted successfully",
		"data":    nil,
	})
}
