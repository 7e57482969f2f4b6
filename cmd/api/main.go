// @title Study Helper API
// @version 1.0
// @description Generates summaries, quizzes and study tips for any topic.
// @license.name MIT
// @host localhost:5000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "study-helper/cmd/api/docs"

	"study-helper/internal/adapter"
	"study-helper/internal/adapter/llm"
	"study-helper/internal/adapter/wikipedia"
	"study-helper/internal/cache"
	"study-helper/internal/config"
	"study-helper/internal/domain"
	"study-helper/internal/handler"
	"study-helper/internal/logger"
	"study-helper/internal/server"
	"study-helper/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Topic lookup, optionally cached in Redis
	var lookup domain.TopicLookup = wikipedia.NewClient(cfg.Wikipedia)
	if cfg.HasCache() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to create Redis client", zap.Error(err))
		}
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
		lookup = wikipedia.WithCache(pingCtx, lookup, adapter.NewRedisCacheAdapter(redisClient), cfg.CacheTTLs.Topic)
		cancelPing()
		if _, cached := lookup.(*wikipedia.CachedLookup); cached {
			appLogger.Info("Topic lookup cache enabled", zap.String("redis", cfg.Redis.Address), zap.Duration("ttl", cfg.CacheTTLs.Topic))
		}
	}

	// AI provider; without one every request gets template content
	completer, err := llm.NewCompleter(ctx, cfg.AI)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		appLogger.Warn("No AI provider configured, using mock data", zap.String("provider", cfg.AI.Provider), zap.Error(err))
		completer = nil
	case err != nil:
		appLogger.Fatal("Failed to create AI provider", zap.String("provider", cfg.AI.Provider), zap.Error(err))
	default:
		appLogger.Info("AI provider initialized", zap.String("provider", completer.Name()))
	}

	generator := service.NewContentGenerator(completer, cfg.AI.Timeout)
	studyService := service.NewStudyService(lookup, generator)

	app := server.New(cfg,
		handler.NewStudyHandler(studyService),
		handler.NewHealthHandler(cfg.Env),
	)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
