package plugins

import (
	"fmt"
	"net/http"

	"arcade/backend/internal/auth"
	"arcade/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "arcade/backend/docs" // registers the API description with swag

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterPlugin builds the HTTP routes over the installed store.
type RouterPlugin struct{}

func (RouterPlugin) Name() string { return "router" }

func (RouterPlugin) Install(app *App) error {
	if app.Store == nil {
		return ErrNoStore
	}

	switch app.Config.GinMode {
	case "":
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(app.Config.GinMode)
	default:
		return fmt.Errorf("unknown gin mode %q", app.Config.GinMode)
	}
	router := gin.Default()
	h := handler.New(app.Store, app.Hub, app.Config)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/auth/login", h.LoginAdmin)

		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", h.GetGames)
			gameRoutes.GET("/featured", h.GetFeaturedGames)
			gameRoutes.GET("/:id", h.GetGameByID)
		}

		categoryRoutes := apiV1.Group("/categories")
		{
			categoryRoutes.GET("", h.GetCategories)
			categoryRoutes.GET("/:id", h.GetCategory)
			categoryRoutes.GET("/:id/games", h.GetCategoryGames)
		}

		apiV1.GET("/events", h.StreamEvents)

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(app.Config.JWTSecret), auth.AdminMiddleware())
		{
			adminGameRoutes := adminRoutes.Group("/games")
			{
				adminGameRoutes.POST("", h.CreateGame)
				adminGameRoutes.DELETE("/:id", h.DeleteGame)
			}
		}
	}

	app.Router = router
	return nil
}
