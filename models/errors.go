package models

import "errors"

// Sentinel errors services return and controllers translate to HTTP statuses.
// Storage failures are wrapped with context and stay unclassified.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
