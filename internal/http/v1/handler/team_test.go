package handler

import (
	"io"
	"log/slog"
	"movie-lines-api/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Parameter validation runs before any provider call, so a service with nil
// providers is enough for these tests.
func newTeamTestRouter() chi.Router {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewTeamHandler(service.NewTeamService(log, nil, nil), log)

	r := chi.NewRouter()
	r.Get("/teams/", h.ListTeams)
	r.Post("/teams/", h.CreateTeam)
	r.Get("/teams/{team_id}", h.GetTeam)
	r.Delete("/teams/{team_id}", h.DeleteTeam)
	return r
}

func TestListTeamsInvalidShow(t *testing.T) {
	r := newTeamTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/teams/?show=all", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestListTeamsInvalidLimit(t *testing.T) {
	r := newTeamTestRouter()

	for _, limit := range []string{"0", "251", "-5", "many"} {
		req := httptest.NewRequest(http.MethodGet, "/teams/?limit="+limit, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("limit=%s: expected 422, got %d", limit, rec.Code)
		}
	}
}

func TestGetTeamInvalidID(t *testing.T) {
	r := newTeamTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/teams/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCreateTeamMissingFields(t *testing.T) {
	r := newTeamTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{"no team_name", `{"created_by":"alice","password":"x"}`},
		{"no created_by", `{"team_name":"Giants","password":"x"}`},
		{"no password", `{"team_name":"Giants","created_by":"alice"}`},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/teams/", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d", tc.name, rec.Code)
		}
	}
}

func TestDeleteTeamMissingPassword(t *testing.T) {
	r := newTeamTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/teams/1", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
