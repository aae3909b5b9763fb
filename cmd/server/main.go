package main

import (
	"log/slog"
	"movie-lines-api/internal/app"
	"movie-lines-api/internal/lib/logger/sl"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

func main() {
	_ = godotenv.Load()

	log := setupLogger(os.Getenv("ENV"))

	application := app.MustNew(log)

	go application.MustRun()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if err := application.GracefulShutdown(); err != nil {
		log.Error("shutdown finished with errors", sl.Err(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
}
