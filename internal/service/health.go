package service

import (
	"context"
	"fmt"
	"log/slog"
	"movie-lines-api/internal/lib/logger/sl"
)

type HealthService struct {
	log    *slog.Logger
	pinger Pinger
}

type Pinger interface {
	Ping() error
}

func NewHealthService(log *slog.Logger, pinger Pinger) *HealthService {
	return &HealthService{
		log:    log,
		pinger: pinger,
	}
}

func (s *HealthService) Check(ctx context.Context) error {
	const op = "service.health.Check"

	if err := s.pinger.Ping(); err != nil {
		s.log.With(slog.String("op", op)).Error("database ping failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
