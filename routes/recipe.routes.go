package routes

import (
	"ricettario/internal/controllers"
	"ricettario/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	router.GET("/ricette", recipeController.GetAllRecipes)
	router.GET("/ricette/:id", recipeController.GetRecipeByID)
	// The feed personalizes save-state when a valid token is present
	router.GET("/ricette-complete", middleware.OptionalAuthMiddleware(), recipeController.GetCompleteRecipes)

	private := router.Group("/ricette")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("", recipeController.CreateRecipe)
		private.PUT("/:id", recipeController.UpdateRecipe)
		private.DELETE("/:id", recipeController.DeleteRecipe)
	}
}
