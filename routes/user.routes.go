package routes

import (
	"ricettario/internal/controllers"
	"ricettario/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	router.POST("/users", userController.RegisterUser)
	router.POST("/login", userController.LoginUser)
	router.POST("/request-password-reset", userController.ForgotPassword)
	router.POST("/reset-password", userController.ResetPassword)

	private := router.Group("/")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/logout", userController.LogoutUser)
		private.GET("/users/me", userController.GetCurrentUser)
		private.PUT("/users/me", userController.UpdateUser)
	}
}
