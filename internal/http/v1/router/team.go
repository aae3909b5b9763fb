package router

import (
	"log/slog"
	"movie-lines-api/internal/http/v1/handler"
	"movie-lines-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type TeamRouter struct {
	handler *handler.TeamHandler
}

func NewTeamRouter(teamService *service.TeamService, log *slog.Logger) *TeamRouter {
	return &TeamRouter{
		handler: handler.NewTeamHandler(teamService, log),
	}
}

func (tr *TeamRouter) SetupRoutes(r chi.Router) {

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", tr.handler.ListTeams)
		r.Post("/", tr.handler.CreateTeam)

		r.Get("/{team_id}", tr.handler.GetTeam)
		r.Delete("/{team_id}", tr.handler.DeleteTeam)
	})

}
