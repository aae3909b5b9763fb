package apperrors

import "errors"

var (
	ErrInvalidID     = errors.New("id must be a positive integer")
	ErrInvalidLimit  = errors.New("limit must be an integer between 1 and 250")
	ErrInvalidOffset = errors.New("offset must be a non-negative integer")
	ErrInvalidSort   = errors.New("unknown sort option")
	ErrInvalidShow   = errors.New("show must be one of: real, fake, both")
)
