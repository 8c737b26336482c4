package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	rewardUseCase "github.com/prompter-labs/prompter/internal/domain/usecase/reward"

	"github.com/prompter-labs/prompter/internal/cli"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/clipboard"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/identity"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/ledger"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/logger"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/repository"
	"github.com/prompter-labs/prompter/internal/infrastructure/adapter/rowstore"
	timeProvider "github.com/prompter-labs/prompter/internal/infrastructure/adapter/time"
	"github.com/prompter-labs/prompter/internal/infrastructure/config"

	"github.com/prompter-labs/prompter/internal/domain/port/core"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The terminal client logs quietly; errors still reach the screen
	appLogger := logger.NewZapLogger(true)
	appLogger.SetLevel(core.LogLevelError)

	tp := timeProvider.NewRealTimeProvider()

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
		LogLevel:        "error",
	})
	if err != nil {
		log.Fatalf("Failed to connect to the platform: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
		os.Exit(0)
	}()

	app := cli.NewApp(cli.Deps{
		Identity:     identity.NewClient(cfg.Identity.BaseURL, cfg.Identity.APIKey, tp, appLogger),
		Prompts:      repository.NewPromptRepository(conn.DB, appLogger),
		Purchases:    repository.NewPurchaseRepository(conn.DB, appLogger),
		Profiles:     repository.NewProfileRepository(conn.DB, appLogger),
		Transactions: repository.NewTransactionRepository(conn.DB, appLogger),
		Ledger:       ledger.NewGateway(conn.DB, appLogger),
		Clipboard:    clipboard.NewSystem(appLogger),
		TimeProvider: tp,
		Logger:       appLogger,
		RewardConfig: rewardUseCase.Config{
			WatchDuration:  cfg.Reward.WatchDuration,
			ClaimAmount:    cfg.Reward.ClaimAmount,
			AutoCloseDelay: cfg.Reward.AutoCloseDelay,
		},
		AdPool: rewardUseCase.DefaultPool(),
	})

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Terminal client error: %v", err)
	}
}
