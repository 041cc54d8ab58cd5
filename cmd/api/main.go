package main

// @title Campus Maps API
// @version 1.0.0
// @description Line mapper and campus path finder. Controller state lives per session;
// @description the shortest path is computed by an external path-finding server.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/campus-maps/docs/swagger"
	"github.com/campus-maps/internal/config"
	httpDelivery "github.com/campus-maps/internal/delivery/http"
	"github.com/campus-maps/internal/delivery/http/handler"
	"github.com/campus-maps/internal/delivery/http/view"
	"github.com/campus-maps/internal/domain/repository"
	"github.com/campus-maps/internal/infrastructure/pathfinder"
	"github.com/campus-maps/internal/pkg/logger"
	"github.com/campus-maps/internal/repository/cache"
	"github.com/campus-maps/internal/repository/memory"
	"github.com/campus-maps/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Campus Maps")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("pathfinder_url", cfg.PathFinder.BaseURL),
		zap.String("session_store", cfg.Session.Store),
		zap.String("lines_parse_mode", cfg.Lines.ParseMode),
	)

	// 3. Session storage
	var (
		sessionRepo repository.SessionRepository
		redisClient *cache.Redis
	)
	switch cfg.Session.Store {
	case "redis":
		redisClient, err = cache.NewRedis(cfg, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		sessionRepo = cache.NewSessionRepository(redisClient, cfg.Session.TTL)
	case "memory":
		sessionRepo = memory.NewSessionRepository()
	default:
		log.Fatal("Unknown session store", zap.String("store", cfg.Session.Store))
	}

	log.Info("Session storage initialized")

	// 4. External path finder
	pathFinder := pathfinder.NewPathFinderClient(&cfg.PathFinder, log)

	// 5. Initialize Use Cases
	linesUC := usecase.NewLineMapperUseCase(
		sessionRepo,
		usecase.ParseParseMode(cfg.Lines.ParseMode),
		log,
	)

	campusUC := usecase.NewCampusPathsUseCase(
		pathFinder,
		sessionRepo,
		log,
	)

	sessionUC := usecase.NewSessionUseCase(sessionRepo, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal("Failed to load page templates", zap.Error(err))
	}

	pageHandler := handler.NewPageHandler(linesUC, campusUC, renderer, cfg, log)
	lineMapperHandler := handler.NewLineMapperHandler(linesUC, log)
	campusPathsHandler := handler.NewCampusPathsHandler(campusUC, log)
	sessionHandler := handler.NewSessionHandler(sessionUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		pageHandler,
		lineMapperHandler,
		campusPathsHandler,
		sessionHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
