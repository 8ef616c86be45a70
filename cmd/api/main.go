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

	_ "petcare-companion/docs"
	"petcare-companion/internal/adapters/storage/memory"
	"petcare-companion/internal/adapters/storage/postgres"
	"petcare-companion/internal/config"
	"petcare-companion/internal/domain/dashboard"
	"petcare-companion/internal/platform/logger"
	"petcare-companion/internal/router"
	"petcare-companion/internal/seed"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title PetCare Companion API
// @version 1.0
// @description REST API for pet profiles, care schedules, health records and daily stats.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
	log.Logger = logger.New("petcare-api")

	repos, err := buildRepositories(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init")
	}

	if cfg.SeedSampleData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := seed.EnsureSampleData(ctx, repos); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("seed sample data")
		}
		cancel()
	}

	handler := router.NewRouter(router.Options{
		Pets:       repos.Pets,
		Activities: repos.Activities,
		Health:     repos.Health,
		Stats:      repos.Stats,
		Dashboard: dashboard.Placeholders{
			DailySteps:       cfg.DashboardDailySteps,
			StepGoalProgress: cfg.DashboardStepGoalProgress,
		},
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("server stopped")
}

// buildRepositories picks Postgres when a DSN is configured and falls back
// to the in-memory store for dev mode.
func buildRepositories(cfg config.Config) (seed.Repositories, error) {
	if cfg.DBDSN == "" {
		log.Warn().Msg("DB_DSN not set, using in-memory store")
		return seed.Repositories{
			Pets:       memory.NewPetRepo(),
			Activities: memory.NewActivityRepo(),
			Health:     memory.NewHealthRepo(),
			Stats:      memory.NewStatsRepo(),
		}, nil
	}

	db, err := postgres.Open(cfg.DBDSN)
	if err != nil {
		return seed.Repositories{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return seed.Repositories{}, err
	}

	return seed.Repositories{
		Pets:       postgres.NewPetsRepo(db),
		Activities: postgres.NewActivitiesRepo(db),
		Health:     postgres.NewHealthRepo(db),
		Stats:      postgres.NewStatsRepo(db),
	}, nil
}
