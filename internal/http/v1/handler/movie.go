package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"movie-lines-api/internal/apperrors"
	"movie-lines-api/internal/domain/models"
	"movie-lines-api/internal/lib/logger/sl"
	"movie-lines-api/internal/service"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type MovieHandler struct {
	movieService *service.MovieService
	log          *slog.Logger
}

func NewMovieHandler(movieService *service.MovieService, log *slog.Logger) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
		log:          log,
	}
}

func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	const op = "handler.movie.ListMovies"

	log := h.log.With(
		slog.String("op", op),
	)

	q := r.URL.Query()

	sort, err := models.ParseMovieSort(q.Get("sort"))
	if err != nil {
		log.Error("invalid sort parameter", sl.Err(err))
		h.writeError(w, http.StatusUnprocessableEntity, "invalid sort parameter", err)
		return
	}

	page, err := models.ParsePage(q.Get("limit"), q.Get("offset"))
	if err != nil {
		log.Error("invalid pagination parameters", sl.Err(err))
		h.writeError(w, http.StatusUnprocessableEntity, "invalid pagination parameters", err)
		return
	}

	filter := models.MovieFilter{
		Name: q.Get("name"),
		Sort: sort,
		Page: page,
	}

	movies, err := h.movieService.ListMovies(r.Context(), filter)
	if err != nil {
		log.Error("failed to list movies", sl.Err(err))
		h.writeError(w, http.StatusInternalServerError, "failed to list movies", err)
		return
	}

	h.writeJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	const op = "handler.movie.GetMovie"

	log := h.log.With(
		slog.String("op", op),
	)

	movieID, err := strconv.Atoi(chi.URLParam(r, "movie_id"))
	if err != nil || movieID < 1 {
		log.Error("invalid movie_id")
		h.writeError(w, http.StatusUnprocessableEntity, "invalid movie_id", apperrors.ErrInvalidID)
		return
	}

	detail, err := h.movieService.GetMovieDetail(r.Context(), movieID)
	if err != nil {
		log.Error("failed to get movie", sl.Err(err))

		if errors.Is(err, apperrors.ErrMovieNotFound) {
			h.writeError(w, http.StatusNotFound, "movie not found", err)
		} else {
			h.writeError(w, http.StatusInternalServerError, "failed to get movie", err)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, detail)
}

func (h *MovieHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode JSON response", sl.Err(err))
	}
}

func (h *MovieHandler) writeError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := ErrorResponse{
		Error: message,
	}
	if err != nil {
		errorResp.Details = err.Error()
	}

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		h.log.Error("failed to encode error response", sl.Err(err))
	}
}
