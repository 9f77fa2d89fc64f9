package domain

import "errors"

var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAuthRequired         = errors.New("authentication required")
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidID            = errors.New("invalid resource id")
	ErrInvalidPageSize      = errors.New("page size must be between 1 and 100")
	ErrSecretNotFound       = errors.New("secret not found")
	ErrProfileNotFound      = errors.New("profile not found")
)
