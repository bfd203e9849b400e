package routes

import (
	"ricettario/internal/controllers"
	"ricettario/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterReviewRoutes(router *gin.Engine, reviewController *controllers.ReviewController) {
	router.GET("/ricette/:id/recensioni", reviewController.GetReviews)
	router.POST("/ricette/:id/recensione", middleware.AuthMiddleware(), reviewController.SubmitReview)
}
