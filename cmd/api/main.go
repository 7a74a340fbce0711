// Command api runs the student API server.
//
// Startup order: config, logger, schema migrations, application
// container, middleware/handler/repository wiring, HTTP server.
// SIGINT/SIGTERM trigger a graceful shutdown that drains inflight
// requests before closing the database pool and redis client.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ivanlegranbizarro/studentapi/internal/config"
	"github.com/ivanlegranbizarro/studentapi/internal/database"
	"github.com/ivanlegranbizarro/studentapi/internal/handler"
	"github.com/ivanlegranbizarro/studentapi/internal/logger"
	"github.com/ivanlegranbizarro/studentapi/internal/middleware"
	"github.com/ivanlegranbizarro/studentapi/internal/repository"
	"github.com/ivanlegranbizarro/studentapi/internal/router"
	"github.com/ivanlegranbizarro/studentapi/internal/server"
)

// shutdownTimeout is how long inflight requests get to finish.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := logger.New("local", "info")
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Primary.Env, cfg.Primary.LogLevel)

	ctx := context.Background()
	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	s, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	mws := middleware.NewMiddlewares(s)
	repos := repository.NewRepositories(s)
	handlers := handler.NewHandlers(s)

	r := router.New(s, mws, handlers, repos)
	s.SetupHTTPServer(r)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("server stopped")
}
