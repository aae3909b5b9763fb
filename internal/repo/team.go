package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"movie-lines-api/internal/apperrors"
	"movie-lines-api/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type TeamRepo struct {
	storage *sqlx.DB
}

func NewTeamRepo(storage *sqlx.DB) *TeamRepo {
	return &TeamRepo{storage: storage}
}

// ListTeams builds one parameterized SELECT from the validated filter.
// Name and creator filters are case-insensitive prefix matches.
func (r *TeamRepo) ListTeams(filter models.TeamFilter) ([]models.Team, error) {
	const op = "repo.team.ListTeams"

	query := `SELECT team_id, created_by, team_city, team_name FROM teams`
	args := []interface{}{}
	conditions := []string{}

	switch filter.Show {
	case models.ShowReal:
		conditions = append(conditions, "created_by IS NULL")
	case models.ShowFake:
		conditions = append(conditions, "created_by IS NOT NULL")
	}

	if filter.NamePrefix != "" {
		args = append(args, filter.NamePrefix+"%")
		conditions = append(conditions, fmt.Sprintf("team_name ILIKE $%d", len(args)))
	}

	if filter.CreatedPrefix != "" {
		args = append(args, filter.CreatedPrefix+"%")
		conditions = append(conditions, fmt.Sprintf("created_by ILIKE $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	var orderBy string
	switch filter.Sort {
	case models.TeamSortName:
		orderBy = "team_name ASC, team_id ASC"
	default:
		orderBy = "team_id ASC"
	}

	args = append(args, filter.Page.Limit, filter.Page.Offset)
	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d",
		orderBy, len(args)-1, len(args))

	teams := make([]models.Team, 0, filter.Page.Limit)
	if err := r.storage.Select(&teams, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teams, nil
}

func (r *TeamRepo) GetTeam(teamID int) (*models.Team, error) {
	const op = "repo.team.GetTeam"

	query := `SELECT team_id, created_by, team_city, team_name FROM teams WHERE team_id = $1`

	var team models.Team
	err := r.storage.Get(&team, query, teamID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &team, nil
}

func (r *TeamRepo) GetPlayerIDs(teamID int) ([]int, error) {
	const op = "repo.team.GetPlayerIDs"

	query := `SELECT player_id FROM players WHERE team_id = $1 ORDER BY player_id`

	players := make([]int, 0)
	if err := r.storage.Select(&players, query, teamID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return players, nil
}

// InsertTeam inserts one team row inside a committed transaction and returns
// the generated id. Existence and credential checks have already passed by
// the time this runs.
func (r *TeamRepo) InsertTeam(city *string, name, createdBy string) (int, error) {
	const op = "repo.team.InsertTeam"

	tx, err := r.storage.Beginx()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	query := `INSERT INTO teams (created_by, team_city, team_name) VALUES ($1, $2, $3) RETURNING team_id`

	var teamID int
	if err := tx.QueryRowx(query, createdBy, city, name).Scan(&teamID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return teamID, nil
}

// GetCreatorDigest returns the stored password digest of the user who created
// the team. No row means the team is absent or has no creator; both surface
// as ErrTeamNotFound, so creatorless ("real") teams can never pass the
// credential check.
func (r *TeamRepo) GetCreatorDigest(teamID int) (string, error) {
	const op = "repo.team.GetCreatorDigest"

	query := `
		SELECT u.password
		FROM teams t
		JOIN users u ON u.username = t.created_by
		WHERE t.team_id = $1
	`

	var storedDigest string
	err := r.storage.Get(&storedDigest, query, teamID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return storedDigest, nil
}

// DeleteTeamWithPlayers removes the team row and every player row referencing
// it in one transaction, so no orphan players survive a team deletion.
func (r *TeamRepo) DeleteTeamWithPlayers(teamID int) error {
	const op = "repo.team.DeleteTeamWithPlayers"

	tx, err := r.storage.Beginx()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM players WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("%s: failed to delete players: %w", op, err)
	}

	if _, err := tx.Exec(`DELETE FROM teams WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("%s: failed to delete team: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}
