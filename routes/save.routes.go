package routes

import (
	"ricettario/internal/controllers"
	"ricettario/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSaveRoutes(router *gin.Engine, saveController *controllers.SaveController) {
	private := router.Group("/")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/salvaRicetta", saveController.SaveRecipe)
		private.DELETE("/salvaRicetta", saveController.UnsaveRecipe)
		private.GET("/ricetteSalvate", saveController.GetSavedRecipes)
	}
}
