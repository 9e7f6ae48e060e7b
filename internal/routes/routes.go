// Package routes assembles the gin engine: global middleware, the public
// and token protected routes, and the operational endpoints.
package routes

import (
	_ "github.com/franciscosanchezn/gin-recipes-api/docs" // Register generated docs
	"github.com/franciscosanchezn/gin-recipes-api/internal/controllers"
	"github.com/franciscosanchezn/gin-recipes-api/internal/images"
	"github.com/franciscosanchezn/gin-recipes-api/internal/middleware"
	"github.com/franciscosanchezn/gin-recipes-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ServiceName is reported by the health endpoint and prefixes metrics
const ServiceName = "cookmaster"

// TokenService issues and verifies session tokens
type TokenService interface {
	middleware.TokenVerifier
	controllers.TokenIssuer
}

// Dependencies are the collaborators the router wires into controllers
type Dependencies struct {
	Accounts services.AccountService
	Recipes  services.RecipeService
	Tokens   TokenService
	Images   images.Store
	Store    controllers.Pinger

	// Metrics is optional; /metrics is only mounted when set
	Metrics *middleware.Metrics
	Logger  *logrus.Logger

	MaxUploadBytes     int64
	HideInternalErrors bool
}

// NewRouter builds the engine with every route mounted
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}
	router.Use(middleware.ErrorHandler(deps.Logger, deps.HideInternalErrors))

	setupRoutes(router, deps)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, deps Dependencies) {
	authController := controllers.NewAuthController(deps.Accounts, deps.Tokens)
	recipeController := controllers.NewRecipeController(deps.Recipes, deps.MaxUploadBytes)
	imageController := controllers.NewImageController(deps.Images)
	healthController := controllers.NewHealthController(deps.Store, ServiceName)

	requireToken := middleware.JWTAuth(deps.Tokens)

	router.GET("/", healthController.Root)
	router.GET("/health", healthController.Health)

	users := router.Group("/users")
	{
		users.POST("", authController.Register)
		// token first, then body validation, then the admin check inside the handler
		users.POST("/admin", requireToken, authController.RegisterAdmin)
	}
	router.POST("/login", authController.Login)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", recipeController.GetAllRecipes)
		recipes.GET("/:id", recipeController.GetRecipeByID)

		protected := recipes.Group("")
		protected.Use(requireToken)
		{
			protected.POST("", recipeController.CreateRecipe)
			protected.PUT("/:id", recipeController.UpdateRecipe)
			protected.DELETE("/:id", recipeController.DeleteRecipe)
			protected.PUT("/:id/image", recipeController.UploadImage)
		}
	}

	router.GET("/images/:file", imageController.GetImage)

	if deps.Metrics != nil {
		router.GET("/metrics", deps.Metrics.Handler())
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
