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

type (
	CreateTeamRequest struct {
		TeamCity  *string `json:"team_city"`
		TeamName  string  `json:"team_name"`
		CreatedBy string  `json:"created_by"`
		Password  string  `json:"password"`
	}

	DeleteTeamRequest struct {
		Password string `json:"password"`
	}

	TeamIDResponse struct {
		TeamID int `json:"team_id"`
	}
)

type TeamHandler struct {
	teamService *service.TeamService
	log         *slog.Logger
}

func NewTeamHandler(teamService *service.TeamService, log *slog.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		log:         log,
	}
}

func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	const op = "handler.team.ListTeams"

	log := h.log.With(
		slog.String("op", op),
	)

	q := r.URL.Query()

	show, err := models.ParseShowFilter(q.Get("show"))
	if err != nil {
		log.Error("invalid show parameter", sl.Err(err))
		h.writeError(w, http.StatusUnprocessableEntity, "invalid show parameter", err)
		return
	}

	sort, err := models.ParseTeamSort(q.Get("sort"))
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

	filter := models.TeamFilter{
		NamePrefix:    q.Get("name"),
		CreatedPrefix: q.Get("created"),
		Sort:          sort,
		Show:          show,
		Page:          page,
	}

	teams, err := h.teamService.ListTeams(r.Context(), filter)
	if err != nil {
		log.Error("failed to list teams", sl.Err(err))
		h.writeError(w, http.StatusInternalServerError, "failed to list teams", err)
		return
	}

	h.writeJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	const op = "handler.team.GetTeam"

	log := h.log.With(
		slog.String("op", op),
	)

	teamID, err := strconv.Atoi(chi.URLParam(r, "team_id"))
	if err != nil || teamID < 1 {
		log.Error("invalid team_id")
		h.writeError(w, http.StatusUnprocessableEntity, "invalid team_id", apperrors.ErrInvalidID)
		return
	}

	team, err := h.teamService.GetTeamWithPlayers(r.Context(), teamID)
	if err != nil {
		log.Error("failed to get team", sl.Err(err))

		if errors.Is(err, apperrors.ErrTeamNotFound) {
			h.writeError(w, http.StatusNotFound, "team not found", err)
		} else {
			h.writeError(w, http.StatusInternalServerError, "failed to get team", err)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	const op = "handler.team.CreateTeam"

	log := h.log.With(
		slog.String("op", op),
	)

	var req CreateTeamRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.TeamName == "" {
		log.Error("team_name is required")
		h.writeError(w, http.StatusUnprocessableEntity, "team_name is required", apperrors.ErrTeamNameRequired)
		return
	}

	if req.CreatedBy == "" {
		log.Error("created_by is required")
		h.writeError(w, http.StatusUnprocessableEntity, "created_by is required", apperrors.ErrCreatorRequired)
		return
	}

	if req.Password == "" {
		log.Error("password is required")
		h.writeError(w, http.StatusUnprocessableEntity, "password is required", apperrors.ErrPasswordRequired)
		return
	}

	teamID, err := h.teamService.CreateTeam(r.Context(), req.TeamCity, req.TeamName, req.CreatedBy, req.Password)
	if err != nil {
		log.Error("failed to create team", sl.Err(err))

		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			h.writeError(w, http.StatusUnprocessableEntity, "created_by is not a registered user", err)
		case errors.Is(err, apperrors.ErrPasswordMismatch):
			h.writeError(w, http.StatusUnprocessableEntity, "password does not match", err)
		default:
			h.writeError(w, http.StatusInternalServerError, "failed to create team", err)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, TeamIDResponse{TeamID: teamID})
	log.Info("team created successfully", slog.Int("team_id", teamID))
}

func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	const op = "handler.team.DeleteTeam"

	log := h.log.With(
		slog.String("op", op),
	)

	teamID, err := strconv.Atoi(chi.URLParam(r, "team_id"))
	if err != nil || teamID < 1 {
		log.Error("invalid team_id")
		h.writeError(w, http.StatusUnprocessableEntity, "invalid team_id", apperrors.ErrInvalidID)
		return
	}

	var req DeleteTeamRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Password == "" {
		log.Error("password is required")
		h.writeError(w, http.StatusUnprocessableEntity, "password is required", apperrors.ErrPasswordRequired)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), teamID, req.Password); err != nil {
		log.Error("failed to delete team", sl.Err(err))

		switch {
		case errors.Is(err, apperrors.ErrTeamNotFound):
			h.writeError(w, http.StatusNotFound, "team not found", err)
		case errors.Is(err, apperrors.ErrPasswordMismatch):
			h.writeError(w, http.StatusUnprocessableEntity, "password does not match", err)
		default:
			h.writeError(w, http.StatusInternalServerError, "failed to delete team", err)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, TeamIDResponse{TeamID: teamID})
	log.Info("team deleted successfully", slog.Int("team_id", teamID))
}

func (h *TeamHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode JSON response", sl.Err(err))
	}
}

func (h *TeamHandler) writeError(w http.ResponseWriter, status int, message string, err error) {
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
