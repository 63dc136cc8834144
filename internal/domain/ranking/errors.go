package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrNotRanked = errors.New("bet not found in ranking")
)
