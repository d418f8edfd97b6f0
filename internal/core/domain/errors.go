package domain

import "errors"

// Sentinel errors shared across services and mapped to HTTP status codes at
// the API boundary.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrTableNumberTaken   = errors.New("table number already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenRevoked       = errors.New("token has been revoked")

	ErrUserNotFound  = errors.New("user not found")
	ErrDishNotFound  = errors.New("dish not found")
	ErrTableNotFound = errors.New("table not found")

	ErrNegativePrice       = errors.New("price must be a non-negative number")
	ErrInvalidTableNumber  = errors.New("table_number must be a positive number")
	ErrInvalidSeatCapacity = errors.New("seating_capacity must be a positive number")
)
