package service

import (
	"context"
	"fmt"
	"log/slog"
	"movie-lines-api/internal/apperrors"
	"movie-lines-api/internal/domain/models"
	"movie-lines-api/internal/lib/digest"
	"movie-lines-api/internal/lib/logger/sl"
)

type TeamService struct {
	log      *slog.Logger
	teamRepo TeamProvider
	userRepo UserProvider
}

type TeamProvider interface {
	ListTeams(filter models.TeamFilter) ([]models.Team, error)
	GetTeam(teamID int) (*models.Team, error)
	GetPlayerIDs(teamID int) ([]int, error)
	InsertTeam(city *string, name, createdBy string) (int, error)
	GetCreatorDigest(teamID int) (string, error)
	DeleteTeamWithPlayers(teamID int) error
}

type UserProvider interface {
	GetUser(username string) (models.User, error)
}

func NewTeamService(
	log *slog.Logger,
	teamRepo TeamProvider,
	userRepo UserProvider) *TeamService {
	return &TeamService{
		log:      log,
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

func (s *TeamService) ListTeams(ctx context.Context, filter models.TeamFilter) ([]models.Team, error) {
	const op = "service.team.ListTeams"

	log := s.log.With(
		slog.String("op", op),
		slog.String("show", string(filter.Show)),
	)

	teams, err := s.teamRepo.ListTeams(filter)
	if err != nil {
		log.Error("failed to list teams", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("teams listed", slog.Int("count", len(teams)))

	return teams, nil
}

// GetTeamWithPlayers is two round trips on purpose: a nonexistent team must
// short-circuit with not-found before the player query runs.
func (s *TeamService) GetTeamWithPlayers(ctx context.Context, teamID int) (*models.TeamDetail, error) {
	const op = "service.team.GetTeamWithPlayers"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("team_id", teamID),
	)

	team, err := s.teamRepo.GetTeam(teamID)
	if err != nil {
		log.Error("failed to get team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	players, err := s.teamRepo.GetPlayerIDs(teamID)
	if err != nil {
		log.Error("failed to get players", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("team retrieved", slog.Int("player_count", len(players)))

	return &models.TeamDetail{
		Team:    *team,
		Players: players,
	}, nil
}

// CreateTeam runs both checks before the insert: the creator must be a
// registered user and the supplied password must match their stored digest.
// Nothing is written when either check fails.
func (s *TeamService) CreateTeam(ctx context.Context, city *string, name, createdBy, password string) (int, error) {
	const op = "service.team.CreateTeam"

	log := s.log.With(
		slog.String("op", op),
		slog.String("team_name", name),
		slog.String("created_by", createdBy),
	)

	log.Info("attempting to create team")

	user, err := s.userRepo.GetUser(createdBy)
	if err != nil {
		log.Error("failed to look up creator", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if !digest.Verify(password, user.Password) {
		log.Warn("password mismatch on create")
		return 0, fmt.Errorf("%s: %w", op, apperrors.ErrPasswordMismatch)
	}

	teamID, err := s.teamRepo.InsertTeam(city, name, createdBy)
	if err != nil {
		log.Error("failed to insert team", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("team created", slog.Int("team_id", teamID))

	return teamID, nil
}

// DeleteTeam fetches the creator's stored digest through a join; no row means
// the team is absent or was never user-created, and both read as not-found.
// The delete itself removes the team and its players atomically.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID int, password string) error {
	const op = "service.team.DeleteTeam"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("team_id", teamID),
	)

	log.Info("attempting to delete team")

	storedDigest, err := s.teamRepo.GetCreatorDigest(teamID)
	if err != nil {
		log.Error("failed to fetch creator digest", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if !digest.Verify(password, storedDigest) {
		log.Warn("password mismatch on delete")
		return fmt.Errorf("%s: %w", op, apperrors.ErrPasswordMismatch)
	}

	if err := s.teamRepo.DeleteTeamWithPlayers(teamID); err != nil {
		log.Error("failed to delete team", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("team deleted")

	return nil
}
