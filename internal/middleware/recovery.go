package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecoveryMiddleware turns panics into a 500 carrying an opaque incident
// code. The full detail is logged server-side; the client only sees the
// cause outside production.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		incident := uuid.NewString()
		log.Printf("[incident %s] panic on %s %s: %v", incident, c.Request.Method, c.Request.URL.Path, recovered)

		response := gin.H{
			"status":   "error",
			"message":  "Unexpected server error",
			"incident": incident,
		}
		if os.Getenv("APP_ENV") != "production" {
			response["error"] = recovered
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, response)
	})
}
