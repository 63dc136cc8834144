// Package scoring reduces a subject's parameter values into a single
// comparable score and star rating.
package scoring

import (
	"math"

	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

// Scale constants for the 0-5 star scale and the 0-100 score.
const (
	starScale    = 5.0
	scorePerStar = 20.0
)

// Result is the derived score of one subject. It is computed on demand and
// never persisted.
type Result struct {
	// Overall is the arithmetic mean of the subject's rating values (0-5).
	Overall float64 `json:"overall"`
	// Score is Overall linearly mapped onto 0-100 and rounded.
	Score int `json:"score"`
	// Stars equals Overall; the fractional remainder is the exact fill
	// proportion of the partial star, not rounded to halves.
	Stars float64 `json:"stars"`
	// Rated is false when the subject has no rating-type values. In that
	// state Overall/Score/Stars are zero and the UI renders "N/A".
	Rated bool `json:"rated"`
	// RatedCount is the number of rating values that entered the mean.
	RatedCount int `json:"rated_count"`
}

// Compute derives the score from a subject's current parameter values.
// Only values with a populated rating slot participate; everything else is
// ignored. Zero rated values is a defined empty state, not an error.
// The mean is order-independent.
func Compute(values []params.Value) Result {
	var (
		sum   float64
		count int
	)
	for _, v := range values {
		if v.Slot.Rating == nil {
			continue
		}
		sum += *v.Slot.Rating
		count++
	}
	if count == 0 {
		return Result{}
	}

	mean := sum / float64(count)
	// Guard against ratings persisted outside the star scale.
	mean = math.Max(0, math.Min(starScale, mean))

	return Result{
		Overall:    mean,
		Score:      int(math.Round(mean * scorePerStar)),
		Stars:      mean,
		Rated:      true,
		RatedCount: count,
	}
}
