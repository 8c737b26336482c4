package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	accountUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/account"
	actionUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/action"
	adminUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/admin"
	catalogUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/catalog"
	rewardUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/reward"
	sessionUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/session"

	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/handler"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/api/routes"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/identity"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/ledger"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/logger"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/repository"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/rowstore"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/storage"
	timeProvider "github.com/prompter-labs/prompter/internal/infrastructure/adapter/time"
	"github.com/prompter-labs/prompter/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the platform row store
	conn, err := rowstore.NewConnection(&rowstore.Config{
		Host:            cfg.RowStore.Host,
		Port:            cfg.RowStore.Port,
		Username:        cfg.RowStore.Username,
		Password:        cfg.RowStore.Password,
		Database:        cfg.RowStore.Database,
		SSLMode:         cfg.RowStore.SSLMode,
		MaxOpenConns:    cfg.RowStore.MaxOpenConns,
		MaxIdleConns:    cfg.RowStore.MaxIdleConns,
		ConnMaxLifetime: cfg.RowStore.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.RowStore.ConnMaxIdleTime,
		QueryTimeout:    cfg.RowStore.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	})
	if err != nil {
		appLogger.Error("Failed to connect to row store", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer conn.Close()

	// Initialize repositories
	promptRepo := repository.NewPromptRepository(conn.DB, appLogger)
	profileRepo := repository.NewProfileRepository(conn.DB, appLogger)
	purchaseRepo := repository.NewPurchaseRepository(conn.DB, appLogger)
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)

	// Remote ledger gateway over the platform's stored procedures
	ledgerGateway := ledger.NewGateway(conn.DB, appLogger)

	// External auth service
	identityClient := identity.NewClient(cfg.Identity.BaseURL, cfg.Identity.APIKey, tp, appLogger)

	// Media object storage
	objectStorage, err := storage.NewS3Storage(context.Background(), storage.Options{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Bucket:        cfg.Storage.Bucket,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	}, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize object storage", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Session stores and per-user registries
	sessions := sessionUseCase.NewManager(profileRepo, appLogger)
	coordinators := actionUseCase.NewRegistry()
	rewards := rewardUseCase.NewRegistry()

	// Initialize use cases
	catalogService := catalogUseCase.NewService(promptRepo, purchaseRepo, appLogger)
	accountService := accountUseCase.NewService(profileRepo, transactionRepo, appLogger)
	adminService := adminUseCase.NewService(promptRepo, objectStorage, tp, appLogger)

	rewardConfig := rewardUseCase.Config{
		WatchDuration:  cfg.Reward.WatchDuration,
		ClaimAmount:    cfg.Reward.ClaimAmount,
		AutoCloseDelay: cfg.Reward.AutoCloseDelay,
	}

	// Initialize API handlers
	handlers := routes.Handlers{
		Auth:    handler.NewAuthHandler(identityClient, sessions, coordinators, rewards, cfg.Identity.RedirectTo, appLogger),
		Catalog: handler.NewCatalogHandler(catalogService, appLogger),
		Action:  handler.NewActionHandler(promptRepo, purchaseRepo, ledgerGateway, coordinators, appLogger),
		Reward:  handler.NewRewardHandler(rewards, rewardUseCase.DefaultPool(), ledgerGateway, tp, rewardConfig, appLogger),
		Profile: handler.NewProfileHandler(accountService, appLogger),
		Admin:   handler.NewAdminHandler(adminService, appLogger),
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, handlers, identityClient, sessions, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if err := appLogger.Flush(); err != nil {
		log.Printf("Failed to flush logs: %v", err)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.RowStore.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("PR_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "rowStore.host (or PR_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "rowStore.host")
		}
	}
	if cfg.RowStore.Username == "" {
		missingConfigs = append(missingConfigs, "rowStore.username")
	}
	if cfg.RowStore.Database == "" {
		missingConfigs = append(missingConfigs, "rowStore.database")
	}

	if cfg.Identity.BaseURL == "" {
		missingConfigs = append(missingConfigs, "identity.baseUrl")
	}
	if cfg.Identity.APIKey == "" {
		missingConfigs = append(missingConfigs, "identity.apiKey")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}
	return nil
}
