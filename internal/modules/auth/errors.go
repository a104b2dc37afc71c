package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("role must be one of: tenant, traveler")
	ErrUserNotFound       = errors.New("user not found")
)
