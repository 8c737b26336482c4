package routes

import (
	coreport "github.com/prompter-labs/prompter/internal/domain/port/core"
	"github.com/prompter-labs/prompter/internal/domain/port/platform"
	"github.com/prompter-labs/prompter/internal/domain/usecase/session"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/handler"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the API handlers for route registration
type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Action  *handler.ActionHandler
	Reward  *handler.RewardHandler
	Profile *handler.ProfileHandler
	Admin   *handler.AdminHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	h Handlers,
	identity platform.IdentityProvider,
	sessions *session.Manager,
	logger coreport.Logger,
) {
	requireAuth := middleware.RequireAuth(identity, sessions, logger)
	optionalAuth := middleware.OptionalAuth(identity, sessions, logger)

	// Auth routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signin", h.Auth.SignIn)
		authRoutes.POST("/signup", h.Auth.SignUp)
		authRoutes.POST("/signout", requireAuth, h.Auth.SignOut)
		authRoutes.GET("/authorize", h.Auth.AuthorizeURL)
	}

	// Catalog routes; browsing is public, detail picks up ownership when a
	// session is present
	promptRoutes := router.Group("/prompts")
	{
		promptRoutes.GET("", h.Catalog.ListPrompts)
		promptRoutes.GET("/:promptId", optionalAuth, h.Catalog.GetPrompt)
		promptRoutes.POST("/:promptId/copy", requireAuth, h.Action.CopyPrompt)
		promptRoutes.POST("/:promptId/unlock", requireAuth, h.Action.UnlockPrompt)
	}

	router.GET("/plans", h.Catalog.ListPlans)

	// Watch-and-earn routes
	rewardRoutes := router.Group("/reward", requireAuth)
	{
		rewardRoutes.GET("", h.Reward.GetState)
		rewardRoutes.POST("/watch", h.Reward.StartWatch)
		rewardRoutes.POST("/claim", h.Reward.Claim)
		rewardRoutes.POST("/close", h.Reward.Close)
	}

	// Profile routes
	profileRoutes := router.Group("/profile", requireAuth)
	{
		profileRoutes.GET("", h.Profile.GetProfile)
		profileRoutes.PATCH("/username", h.Profile.UpdateUsername)
		profileRoutes.GET("/history", h.Profile.GetHistory)
	}

	// Admin routes
	adminRoutes := router.Group("/admin", requireAuth)
	{
		adminRoutes.POST("/prompts", h.Admin.UploadPrompt)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
