// Package common contains the sentinel errors shared between services and
// the HTTP boundary. Services return these; only the boundary maps them to
// status codes.
package common

import "errors"

var (

	// store errors
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrValidation     = errors.New("validation error")

	// auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")

	// anything unexpected, surfaced as 500 at the boundary
	ErrInternal = errors.New("internal error")
)
