package params

import (
	"errors"
	"fmt"
)

// Sentinel kinds for validation errors. ErrOutOfRange and ErrNotInOptions
// wrap ErrValidation so callers can match either the broad or narrow kind.
var (
	ErrValidation   = errors.New("invalid parameter value")
	ErrOutOfRange   = fmt.Errorf("%w: out of range", ErrValidation)
	ErrNotInOptions = fmt.Errorf("%w: not in options", ErrValidation)
)
