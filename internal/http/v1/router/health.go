package router

import (
	"log/slog"
	"movie-lines-api/internal/http/v1/handler"
	"movie-lines-api/internal/service"

	"github.com/go-chi/chi/v5"
)

type HealthRouter struct {
	handler *handler.HealthHandler
}

func NewHealthRouter(healthService *service.HealthService, log *slog.Logger) *HealthRouter {
	return &HealthRouter{
		handler: handler.NewHealthHandler(healthService, log),
	}
}

func (hr *HealthRouter) SetupRoutes(r chi.Router) {

	r.Get("/healthz", hr.handler.Check)
}
