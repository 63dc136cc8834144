// Package ranking orders subjects by score and derives neighborhood views.
package ranking

import (
	"sort"

	types "github.com/RyanRaymundo99/betcompare/internal/domain/types"
)

// Scored is the minimal input for ranking: one subject with its derived score.
type Scored struct {
	BetID string
	Name  string
	Score int
	Stars float64
	Rated bool
}

// Ranking is an immutable sorted view over a set of scored subjects.
type Ranking struct {
	entries []types.Entry
	byID    map[string]int
}

// New ranks the given subjects by score descending. The sort is stable, so
// ties keep their input order; callers pass subjects in creation order, which
// makes subject age the effective tie-break.
func New(scored []Scored) *Ranking {
	sorted := make([]Scored, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	r := &Ranking{
		entries: make([]types.Entry, len(sorted)),
		byID:    make(map[string]int, len(sorted)),
	}
	for i, s := range sorted {
		r.entries[i] = types.Entry{
			Position: i + 1,
			BetID:    s.BetID,
			Name:     s.Name,
			Score:    s.Score,
			Stars:    s.Stars,
			Rated:    s.Rated,
		}
		r.byID[s.BetID] = i
	}
	return r
}

// Len returns the number of ranked subjects.
func (r *Ranking) Len() int {
	return len(r.entries)
}

// All returns every entry in rank order.
func (r *Ranking) All() []types.Entry {
	out := make([]types.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Top returns the first n entries (all of them when n exceeds the size).
func (r *Ranking) Top(n int) []types.Entry {
	if n < 0 {
		n = 0
	}
	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]types.Entry, n)
	copy(out, r.entries[:n])
	return out
}

// Position returns the entry for one subject.
// Returns ErrNotRanked when the subject is not in the ranking.
func (r *Ranking) Position(betID string) (types.Entry, error) {
	i, ok := r.byID[betID]
	if !ok {
		return types.Entry{}, ErrNotRanked
	}
	return r.entries[i], nil
}

// Around returns up to k entries immediately above and k immediately below
// the subject. The subject itself is never included; sides near the edges of
// the ranking come back shorter or empty. Pure slicing of the sorted list.
func (r *Ranking) Around(betID string, k int) (types.Neighborhood, error) {
	i, ok := r.byID[betID]
	if !ok {
		return types.Neighborhood{}, ErrNotRanked
	}
	if k < 0 {
		k = 0
	}

	lo := i - k
	if lo < 0 {
		lo = 0
	}
	hi := i + k + 1
	if hi > len(r.entries) {
		hi = len(r.entries)
	}

	n := types.Neighborhood{
		Above: make([]types.Entry, i-lo),
		Below: make([]types.Entry, hi-i-1),
	}
	copy(n.Above, r.entries[lo:i])
	copy(n.Below, r.entries[i+1:hi])
	return n, nil
}
