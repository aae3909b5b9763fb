package router

import (
	"log/slog"
	"movie-lines-api/internal/http/v1/handler"
	"movie-lines-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieRouter struct {
	handler *handler.MovieHandler
}

func NewMovieRouter(movieService *service.MovieService, log *slog.Logger) *MovieRouter {
	return &MovieRouter{
		handler: handler.NewMovieHandler(movieService, log),
	}
}

func (mr *MovieRouter) SetupRoutes(r chi.Router) {

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", mr.handler.ListMovies)

		r.Get("/{movie_id}", mr.handler.GetMovie)
	})

}
