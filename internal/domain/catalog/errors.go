package catalog

import "errors"

// Sentinel kinds for catalog configuration errors.
var (
	ErrInvalidDefinition   = errors.New("invalid parameter definition")
	ErrDuplicateDefinition = errors.New("duplicate parameter definition")
)
