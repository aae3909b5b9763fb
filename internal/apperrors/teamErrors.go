package apperrors

import "errors"

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameRequired = errors.New("team name is required")
	ErrPasswordMismatch = errors.New("password does not match")
)
