package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// currentUserID reads the identity injected by the auth middleware.
func currentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// internalError hides storage detail behind an opaque incident code. The
// full error is logged server-side and only echoed to the client outside
// production.
func internalError(c *gin.Context, message string, err error) {
	incident := uuid.NewString()
	log.Printf("[incident %s] %s %s: %v", incident, c.Request.Method, c.Request.URL.Path, err)

	response := gin.H{
		"status":   "error",
		"message":  message,
		"incident": incident,
	}
	if os.Getenv("APP_ENV") != "production" {
		response["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, response)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
