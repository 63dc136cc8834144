package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrServe           = errors.New("api serve failed")
	ErrBadRequest      = errors.New("bad request")
	ErrTooManySubjects = errors.New("too many subjects requested")
)

// NewKind tags a sentinel with the failing operation.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// Wrap tags any error with the failing operation, preserving its chain.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// WrapKind tags a sentinel with the operation and the underlying cause. The
// sentinel stays matchable with errors.Is; the cause is carried as text.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %v", op, kind, err)
}
