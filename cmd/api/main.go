package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fkhayef/wedding-rsvp/internal/config"
	"github.com/fkhayef/wedding-rsvp/internal/database"
	"github.com/fkhayef/wedding-rsvp/internal/logging"
	"github.com/fkhayef/wedding-rsvp/internal/server"
)

// @title        Wedding RSVP API
// @version      1.0
// @description  Guest list management and RSVP collection for a wedding invitation site.
// @BasePath     /api
func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if envErr != nil {
		log.Info("No .env file found, using environment variables")
	}

	store, closeStore, err := database.OpenGuestStore(cfg)
	if err != nil {
		log.Fatal("Failed to open guest store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeStore()

	log.Info("Guest store ready", zap.String("driver", cfg.StoreDriver))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.NewRouter(cfg, store, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
