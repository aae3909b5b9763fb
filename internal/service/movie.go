package service

import (
	"context"
	"fmt"
	"log/slog"
	"movie-lines-api/internal/domain/models"
	"movie-lines-api/internal/lib/logger/sl"
)

// topCharacterCount caps the character leaderboard on the movie detail
// endpoint.
const topCharacterCount = 5

type MovieService struct {
	log       *slog.Logger
	movieRepo MovieProvider
}

type MovieProvider interface {
	ListMovies(filter models.MovieFilter) ([]models.Movie, error)
	GetMovie(movieID int) (*models.Movie, error)
	GetTopCharacters(movieID, limit int) ([]models.CharacterLines, error)
}

func NewMovieService(
	log *slog.Logger,
	movieRepo MovieProvider) *MovieService {
	return &MovieService{
		log:       log,
		movieRepo: movieRepo,
	}
}

func (s *MovieService) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	const op = "service.movie.ListMovies"

	log := s.log.With(
		slog.String("op", op),
		slog.String("sort", string(filter.Sort)),
	)

	movies, err := s.movieRepo.ListMovies(filter)
	if err != nil {
		log.Error("failed to list movies", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("movies listed", slog.Int("count", len(movies)))

	return movies, nil
}

// GetMovieDetail fetches the movie row first and short-circuits with
// not-found before the character query runs.
func (s *MovieService) GetMovieDetail(ctx context.Context, movieID int) (*models.MovieDetail, error) {
	const op = "service.movie.GetMovieDetail"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("movie_id", movieID),
	)

	movie, err := s.movieRepo.GetMovie(movieID)
	if err != nil {
		log.Error("failed to get movie", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	characters, err := s.movieRepo.GetTopCharacters(movieID, topCharacterCount)
	if err != nil {
		log.Error("failed to get top characters", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("movie detail retrieved", slog.Int("character_count", len(characters)))

	return &models.MovieDetail{
		MovieID:       movie.MovieID,
		Title:         movie.Title,
		TopCharacters: characters,
	}, nil
}
