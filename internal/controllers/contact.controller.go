package controllers

import (
	"net/http"
	"strings"

	"ricettario/internal/models"
	"ricettario/internal/repository"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name    string `json:"nome" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"messaggio" binding:"required"`
}

type ContactController struct {
	contactRepo repository.ContactRepository
}

func NewContactController(contactRepo repository.ContactRepository) *ContactController {
	return &ContactController{contactRepo: contactRepo}
}

// CreateContactMessage godoc
// @Summary Leave a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param message body ContactRequest true "Message data"
// @Success 201 {object} map[string]interface{} "Message received"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /contact [post]
func (cc *ContactController) CreateContactMessage(c *gin.Context) {
	var req ContactRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	message := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Message: strings.TrimSpace(req.Message),
	}
	if err := cc.contactRepo.Create(&message); err != nil {
		internalError(c, "Failed to store message", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message received",
		"data":    nil,
	})
}
