package routes

import (
	"ricettario/internal/controllers"
	"ricettario/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterGroceryRoutes(router *gin.Engine, groceryController *controllers.GroceryController) {
	private := router.Group("/")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/addToGroceryList", groceryController.AddRecipeToList)
		private.GET("/groceryList", groceryController.GetGroceryList)
		private.POST("/groceryList", groceryController.AddManualItem)
		private.PUT("/groceryList", groceryController.EditQuantity)
		private.PUT("/groceryList/porzioni", groceryController.RescalePortions)
		private.DELETE("/groceryList", groceryController.ClearList)
		private.DELETE("/groceryList/item", groceryController.RemoveIngredient)
		private.DELETE("/groceryList/ricetta/:id", groceryController.RemoveRecipeGroup)
	}
}
