// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"weather-mcp/internal/app"
	"weather-mcp/internal/config"
	"weather-mcp/internal/logging"
	"weather-mcp/internal/middleware"
)

var BuildVersion = "dev" // set via ldflags

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("logging setup: %v", err)
	}

	a := app.New(cfg, logger)
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.CORS)
	a.Router.Use(chimiddleware.Recoverer)

	srv := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     a.Router,
		ReadTimeout: 15 * time.Second,
		// no WriteTimeout: upstream weather calls carry no deadline and
		// must not be cut off mid-response
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("addr", cfg.Addr()).
			Str("version", BuildVersion).
			Bool("debug", cfg.Debug).
			Msg("weather MCP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}
}
