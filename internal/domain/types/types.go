// Package types contains common types used across the application
package types

// Entry represents a ranking entry for one subject.
type Entry struct {
	Position int     `json:"position"`
	BetID    string  `json:"bet_id"`
	Name     string  `json:"name"`
	Score    int     `json:"score"`
	Stars    float64 `json:"stars"`
	Rated    bool    `json:"rated"`
}

// Neighborhood groups the entries immediately above and below a subject.
type Neighborhood struct {
	Above []Entry `json:"above"`
	Below []Entry `json:"below"`
}
