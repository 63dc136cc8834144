package repository

import "errors"

// Sentinel errors returned by Store implementations.
var (
	// ErrBetNotFound is returned when a subject ID is unknown.
	ErrBetNotFound = errors.New("bet not found")
	// ErrValueNotFound is returned when a value ID is unknown.
	ErrValueNotFound = errors.New("parameter value not found")
	// ErrOpenDatabase is returned when the database connection cannot be
	// established or migrated.
	ErrOpenDatabase = errors.New("failed to open database")
)
