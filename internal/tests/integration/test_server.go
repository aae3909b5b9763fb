package integration

import (
	"fmt"
	"log/slog"
	"net/http/httptest"
	"os"

	"movie-lines-api/internal/config"
	"movie-lines-api/internal/http/v1/router"
	"movie-lines-api/internal/lib/digest"
	"movie-lines-api/internal/lib/migrator"
	"movie-lines-api/internal/repo"
	"movie-lines-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type TestServer struct {
	DB     *sqlx.DB
	Server *httptest.Server
}

func NewTestServer() (*TestServer, error) {
	cfg := config.PostgresConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		DbName:   "movielines_db",
		SslMode:  "disable",
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	if err := migrator.RunMigrations(cfg, log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sqlx.Connect("postgres", cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	movieRepo := repo.NewMovieRepo(db)
	teamRepo := repo.NewTeamRepo(db)
	userRepo := repo.NewUserRepo(db)

	movieService := service.NewMovieService(log, movieRepo)
	teamService := service.NewTeamService(log, teamRepo, userRepo)

	r := chi.NewRouter()
	router.NewMovieRouter(movieService, log).SetupRoutes(r)
	router.NewTeamRouter(teamService, log).SetupRoutes(r)

	ts := httptest.NewServer(r)

	return &TestServer{
		DB:     db,
		Server: ts,
	}, nil
}

func (s *TestServer) LoadFixtures() error {
	tables := []string{"players", "teams", "users", "lines", "characters", "movies"}
	for _, table := range tables {
		_, err := s.DB.Exec(fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	fixtures := fmt.Sprintf(`
		INSERT INTO movies(movie_id, title, year, imdb_rating, imdb_votes) VALUES
			(1, 'The Matrix', 1999, 8.7, 1700000),
			(2, 'Alien', 1979, 8.5, 850000),
			(3, 'Amadeus', 1984, 8.4, 400000);

		INSERT INTO characters(character_id, name, movie_id) VALUES
			(1, 'NEO', 1),
			(2, 'TRINITY', 1),
			(3, 'MORPHEUS', 1),
			(4, 'AGENT SMITH', 1),
			(5, 'ORACLE', 1),
			(6, 'CYPHER', 1),
			(7, 'RIPLEY', 2),
			(8, 'SILENT EXTRA', 1);

		INSERT INTO lines(character_id, line_text)
		SELECT c.character_id, 'line'
		FROM characters c
		JOIN (VALUES (1, 10), (2, 8), (3, 6), (4, 4), (5, 2), (6, 1), (7, 3)) AS counts(character_id, n)
			ON counts.character_id = c.character_id,
		generate_series(1, counts.n);

		INSERT INTO users(username, password) VALUES
			('alice', '%s'),
			('bob', '%s');

		INSERT INTO teams(created_by, team_city, team_name) VALUES
			(NULL, 'Los Angeles', 'Lakers'),
			('alice', 'Metropolis', 'Giants');

		INSERT INTO players(team_id) VALUES (1), (1), (2), (2), (2);
	`, digest.Hash("hunter2"), digest.Hash("secret"))

	_, err := s.DB.Exec(fixtures)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	return nil
}

func (s *TestServer) Close() {
	s.Server.Close()
	s.DB.Close()
}
