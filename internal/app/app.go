package app

import (
	"context"
	"fmt"
	"log/slog"
	"movie-lines-api/internal/app/rest"
	"movie-lines-api/internal/config"
	v1 "movie-lines-api/internal/http/v1"
	"movie-lines-api/internal/lib/migrator"
	"movie-lines-api/internal/repo"
	"movie-lines-api/internal/service"
	"movie-lines-api/internal/storage/postgresql"
	"time"

	"github.com/hashicorp/go-multierror"
)

type App struct {
	log     *slog.Logger
	storage *postgresql.Storage
	restApp *rest.App
}

func MustNew(log *slog.Logger) *App {
	cfg := config.MustLoad()

	if err := migrator.RunMigrations(cfg.Postgres, log); err != nil {
		log.Error("failed to run migrations", "error", err)
		panic(err)
	}

	storage := postgresql.Init(cfg.Postgres)

	movieRepo := repo.NewMovieRepo(storage.GetDB())
	teamRepo := repo.NewTeamRepo(storage.GetDB())
	userRepo := repo.NewUserRepo(storage.GetDB())

	movieService := service.NewMovieService(log, movieRepo)
	teamService := service.NewTeamService(log, teamRepo, userRepo)
	healthService := service.NewHealthService(log, storage)

	routerDependencies := v1.RouterDependencies{
		MovieService:  movieService,
		TeamService:   teamService,
		HealthService: healthService,
	}

	restApp := rest.New(
		log,
		&routerDependencies,
		cfg.Server.Port,
	)

	return &App{
		log:     log,
		storage: storage,
		restApp: restApp,
	}
}

func (a *App) MustRun() {
	const op = "app.MustRun"
	a.log.With(slog.String("op", op)).Info("starting application")

	if err := a.restApp.Run(); err != nil {
		panic(err)
	}
}

func (a *App) GracefulShutdown() error {
	const op = "app.GracefulShutdown"
	a.log.With(slog.String("op", op)).Info("shutting down application")

	var result *multierror.Error

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.restApp.Stop(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("%s: failed to stop HTTP server: %w", op, err))
	}

	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: failed to close database: %w", op, err))
		} else {
			a.log.Info("database connection closed")
		}
	}

	return result.ErrorOrNil()
}
