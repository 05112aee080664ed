package errors

import (
	"errors"
	"strings"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrUnauthorized       = errors.New("not authorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrConflict           = errors.New("conflict")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// ValidationError carries the full list of per-item failures collected
// while checking an order, so a single response names every bad item.
type ValidationError struct {
	Items []string
}

func (e *ValidationError) Error() string {
	return "order validation failed: " + strings.Join(e.Items, "; ")
}

// NewValidation wraps collected item failures into a ValidationError.
func NewValidation(items []string) *ValidationError {
	return &ValidationError{Items: items}
}
