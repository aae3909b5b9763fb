package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"movie-lines-api/internal/apperrors"
	"movie-lines-api/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type MovieRepo struct {
	storage *sqlx.DB
}

func NewMovieRepo(storage *sqlx.DB) *MovieRepo {
	return &MovieRepo{storage: storage}
}

// ListMovies builds and runs a single parameterized SELECT from the validated
// filter. The id column is always the secondary sort key so equal primary
// keys order deterministically.
func (r *MovieRepo) ListMovies(filter models.MovieFilter) ([]models.Movie, error) {
	const op = "repo.movie.ListMovies"

	query := `SELECT movie_id, title, year, imdb_rating, imdb_votes FROM movies`
	args := []interface{}{}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += fmt.Sprintf(" WHERE title ILIKE $%d", len(args))
	}

	var orderBy string
	switch filter.Sort {
	case models.MovieSortYear:
		orderBy = "year ASC, movie_id ASC"
	case models.MovieSortRating:
		// rating is the one key sorted highest-first
		orderBy = "imdb_rating DESC, movie_id ASC"
	default:
		orderBy = "title ASC, movie_id ASC"
	}

	args = append(args, filter.Page.Limit, filter.Page.Offset)
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d",
		orderBy, len(args)-1, len(args))

	movies := make([]models.Movie, 0, filter.Page.Limit)
	if err := r.storage.Select(&movies, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return movies, nil
}

func (r *MovieRepo) GetMovie(movieID int) (*models.Movie, error) {
	const op = "repo.movie.GetMovie"

	query := `SELECT movie_id, title, year, imdb_rating, imdb_votes FROM movies WHERE movie_id = $1`

	var movie models.Movie
	err := r.storage.Get(&movie, query, movieID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrMovieNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &movie, nil
}

// GetTopCharacters returns the movie's characters ranked by how many lines
// they speak, most talkative first. Characters without lines never appear.
func (r *MovieRepo) GetTopCharacters(movieID, limit int) ([]models.CharacterLines, error) {
	const op = "repo.movie.GetTopCharacters"

	query := `
		SELECT
			c.character_id,
			c.name,
			COUNT(l.line_id) AS num_lines
		FROM characters c
		JOIN lines l ON l.character_id = c.character_id
		WHERE c.movie_id = $1
		GROUP BY c.character_id, c.name
		ORDER BY num_lines DESC, c.character_id ASC
		LIMIT $2
	`

	characters := make([]models.CharacterLines, 0, limit)
	if err := r.storage.Select(&characters, query, movieID, limit); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return characters, nil
}
