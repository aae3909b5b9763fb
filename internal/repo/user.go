package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"movie-lines-api/internal/apperrors"
	"movie-lines-api/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct {
	storage *sqlx.DB
}

func NewUserRepo(storage *sqlx.DB) *UserRepo {
	return &UserRepo{storage: storage}
}

func (r *UserRepo) GetUser(username string) (models.User, error) {
	const op = "repo.user.GetUser"

	query := `SELECT username, password FROM users WHERE username = $1`

	var user models.User
	err := r.storage.Get(&user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("%s: %w", op, apperrors.ErrUserNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
