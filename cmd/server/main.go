package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lehmann314159/nexuscrm/internal/config"
	"github.com/lehmann314159/nexuscrm/internal/database"
	"github.com/lehmann314159/nexuscrm/internal/handlers"
	"github.com/lehmann314159/nexuscrm/internal/logger"
	"github.com/lehmann314159/nexuscrm/internal/metrics"
	"github.com/lehmann314159/nexuscrm/internal/repository"
	"github.com/lehmann314159/nexuscrm/internal/session"
	"github.com/lehmann314159/nexuscrm/internal/views"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	// Initialize database
	db, err := database.New(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	// Parse templates
	tmpl, err := views.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	sessions := session.NewStore(time.Now)
	env := &handlers.Env{
		Repo:         repository.New(db),
		Sessions:     sessions,
		Tmpl:         tmpl,
		Log:          log,
		Metrics:      metrics.New(),
		CookieSecure: cfg.CookieSecure,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loginLimiter := handlers.PerMinute(cfg.LoginRatePerMinute)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				loginLimiter.Prune(3 * time.Minute)
				if n := sessions.Prune(cfg.SessionIdle); n > 0 {
					log.Debug().Int("pruned", n).Msg("idle sessions dropped")
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.Routes(env, loginLimiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}
