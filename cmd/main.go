package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"ricettario/database"
	"ricettario/internal/cache"
	"ricettario/internal/controllers"
	"ricettario/internal/middleware"
	"ricettario/internal/repository"
	"ricettario/internal/services"
	"ricettario/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found: %v", err)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Redis is optional: without REDIS_URL the feed is served straight from
	// the database.
	var redisCache *cache.RedisClient
	if os.Getenv("REDIS_URL") != "" {
		client, err := cache.NewRedisClient()
		if err != nil {
			log.Printf("Warning: recipe feed cache disabled: %v", err)
		} else {
			redisCache = client
			defer redisCache.Close()
			log.Println("Connected to Redis successfully")
		}
	}

	userRepo := repository.NewUserRepository(database.DB)
	resetRepo := repository.NewResetPasswordRepository(database.DB)
	recipeRepo := repository.NewRecipeRepository(database.DB)
	saveRepo := repository.NewSaveRepository(database.DB)
	reviewRepo := repository.NewReviewRepository(database.DB)
	commentRepo := repository.NewCommentRepository(database.DB)
	notificationRepo := repository.NewNotificationRepository(database.DB)
	groceryRepo := repository.NewGroceryRepository(database.DB)
	contactRepo := repository.NewContactRepository(database.DB)

	groceryService := services.NewGroceryService(groceryRepo, recipeRepo)

	userController := controllers.NewUserController(userRepo, resetRepo)
	recipeController := controllers.NewRecipeController(recipeRepo, saveRepo, reviewRepo, redisCache)
	saveController := controllers.NewSaveController(saveRepo, recipeRepo)
	groceryController := controllers.NewGroceryController(groceryService)
	reviewController := controllers.NewReviewController(reviewRepo, recipeRepo)
	commentController := controllers.NewCommentController(commentRepo, recipeRepo, notificationRepo)
	notificationController := controllers.NewNotificationController(notificationRepo)
	contactController := controllers.NewContactController(contactRepo)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Ricettario API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterRecipeRoutes(router, recipeController)
	routes.RegisterSaveRoutes(router, saveController)
	routes.RegisterGroceryRoutes(router, groceryController)
	routes.RegisterReviewRoutes(router, reviewController)
	routes.RegisterCommentRoutes(router, commentController)
	routes.RegisterNotificationRoutes(router, notificationController)
	routes.RegisterContactRoutes(router, contactController)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Ricettario API server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
