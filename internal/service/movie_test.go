package service

import (
	"context"
	"errors"
	"movie-lines-api/internal/apperrors"
	"movie-lines-api/internal/domain/models"
	"testing"
)

type stubMovieRepo struct {
	movies         map[int]*models.Movie
	characters     map[int][]models.CharacterLines
	characterCalls int
}

func (s *stubMovieRepo) ListMovies(filter models.MovieFilter) ([]models.Movie, error) {
	out := []models.Movie{}
	for _, m := range s.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (s *stubMovieRepo) GetMovie(movieID int) (*models.Movie, error) {
	movie, ok := s.movies[movieID]
	if !ok {
		return nil, apperrors.ErrMovieNotFound
	}
	return movie, nil
}

func (s *stubMovieRepo) GetTopCharacters(movieID, limit int) ([]models.CharacterLines, error) {
	s.characterCalls++
	chars := s.characters[movieID]
	if len(chars) > limit {
		chars = chars[:limit]
	}
	return chars, nil
}

func TestGetMovieDetailNotFoundShortCircuits(t *testing.T) {
	repo := &stubMovieRepo{movies: map[int]*models.Movie{}}
	svc := NewMovieService(discardLogger(), repo)

	_, err := svc.GetMovieDetail(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
	if repo.characterCalls != 0 {
		t.Fatal("character query must not run for a missing movie")
	}
}

func TestGetMovieDetailCapsCharacters(t *testing.T) {
	chars := make([]models.CharacterLines, 8)
	for i := range chars {
		chars[i] = models.CharacterLines{CharacterID: i + 1, Name: "c", NumLines: 100 - i}
	}

	repo := &stubMovieRepo{
		movies:     map[int]*models.Movie{1: {MovieID: 1, Title: "The Movie"}},
		characters: map[int][]models.CharacterLines{1: chars},
	}
	svc := NewMovieService(discardLogger(), repo)

	detail, err := svc.GetMovieDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.TopCharacters) != 5 {
		t.Fatalf("expected 5 top characters, got %d", len(detail.TopCharacters))
	}
	if detail.Title != "The Movie" {
		t.Fatalf("wrong title: %s", detail.Title)
	}
}
