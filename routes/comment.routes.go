package routes

import (
	"ricettario/internal/controllers"
	"ricettario/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCommentRoutes(router *gin.Engine, commentController *controllers.CommentController) {
	router.GET("/ricette/:id/commenti", commentController.GetComments)

	private := router.Group("/")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/ricette/:id/commento", commentController.CreateComment)
		private.PUT("/commento/:id", commentController.UpdateComment)
		private.DELETE("/commento/:id", commentController.DeleteComment)
	}
}
