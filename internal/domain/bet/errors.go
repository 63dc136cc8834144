package bet

import "errors"

// Sentinel kinds for subject validation errors.
var (
	ErrInvalidBet = errors.New("invalid bet")
)
