package handler

import (
	"encoding/json"
	"log/slog"
	"movie-lines-api/internal/lib/logger/sl"
	"movie-lines-api/internal/service"
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type HealthHandler struct {
	healthService *service.HealthService
	log           *slog.Logger
}

func NewHealthHandler(healthService *service.HealthService, log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		log:           log,
	}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	const op = "handler.health.Check"

	status := http.StatusOK
	resp := HealthResponse{Status: "ok"}

	if err := h.healthService.Check(r.Context()); err != nil {
		h.log.With(slog.String("op", op)).Error("health check failed", sl.Err(err))
		status = http.StatusServiceUnavailable
		resp.Status = "unavailable"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error("failed to encode health response", sl.Err(err))
	}
}
