package apperrors

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCreatorRequired  = errors.New("created_by is required")
	ErrPasswordRequired = errors.New("password is required")
)
