package routes

import (
	"ricettario/internal/controllers"
	"ricettario/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNotificationRoutes(router *gin.Engine, notificationController *controllers.NotificationController) {
	private := router.Group("/notifications")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("", notificationController.GetNotifications)
		private.POST("/:id/read", notificationController.MarkNotificationRead)
	}
}
