package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grove-games/armory/internal/auth"
	"github.com/grove-games/armory/internal/character"
	"github.com/grove-games/armory/internal/concurrency"
	"github.com/grove-games/armory/internal/config"
	"github.com/grove-games/armory/internal/database"
	"github.com/grove-games/armory/internal/database/postgres"
	"github.com/grove-games/armory/internal/economy"
	"github.com/grove-games/armory/internal/item"
	"github.com/grove-games/armory/internal/server"
	"github.com/grove-games/armory/internal/user"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := context.Background()

	// Apply pending schema migrations before opening the pool
	if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	characterRepo := postgres.NewCharacterRepository(dbPool)
	catalogRepo := postgres.NewCatalogRepository(dbPool)
	economyRepo := postgres.NewEconomyRepository(dbPool)

	// Token handling
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	authMW := auth.NewMiddleware(tokens)

	// Services
	userService := user.NewService(userRepo, tokens)
	characterService := character.NewService(characterRepo)
	itemService := item.NewService(catalogRepo)
	economyService := economy.NewService(economyRepo, concurrency.NewLockManager())

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, authMW, dbPool, userService, characterService, itemService, economyService)

	// Run the server until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
