package v1

import (
	"log/slog"
	"movie-lines-api/internal/http/v1/router"
	"movie-lines-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type Router interface {
	SetupRoutes(r chi.Router)
}

type RouterDependencies struct {
	MovieService  *service.MovieService
	TeamService   *service.TeamService
	HealthService *service.HealthService
}

func SetupRoutes(r chi.Router, deps *RouterDependencies, log *slog.Logger) {
	routers := []Router{
		router.NewMovieRouter(deps.MovieService, log),
		router.NewTeamRouter(deps.TeamService, log),
		router.NewHealthRouter(deps.HealthService, log),
	}

	for _, serviceRouter := range routers {
		serviceRouter.SetupRoutes(r)
	}
}
