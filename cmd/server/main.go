package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagination/internal/config"
	"github.com/maxviazov/pagination/internal/handler"
	"github.com/maxviazov/pagination/internal/logger"
	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/internal/service"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	seed := flag.Int("seed", 0, "number of demo items to preload")
	flag.Parse()

	// Load application config
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := repository.NewMemoryStore()
	defer store.Close()
	for i := 0; i < *seed; i++ {
		if _, err := store.Add(ctx, model.Item{Name: fmt.Sprintf("item-%04d", i+1)}); err != nil {
			appLogger.Fatal().Err(err).Msg("seeding failed")
		}
	}

	itemSvc := service.NewItemService(store, service.Options{Strict: cfg.Pagination.Strict}, appLogger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	handler.Register(r, store, itemSvc, cfg.Pagination.BasePath, appLogger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info().
			Str("addr", srv.Addr).
			Bool("strict_pagination", cfg.Pagination.Strict).
			Int("seeded", *seed).
			Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("✅ Service stopped")
}
