// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// RankingDependencies defines the interface for ranking reads.
type RankingDependencies interface {
	Ranking(ctx context.Context, limit int) ([]Entry, error)
	Position(ctx context.Context, id uuid.UUID) (Entry, error)
	Around(ctx context.Context, id uuid.UUID, window int) (Neighborhood, error)
}

// RankingHandler handles ranking requests.
type RankingHandler struct {
	deps          RankingDependencies
	maxLimit      int
	defaultWindow int
}

// NewRankingHandler creates a new ranking handler.
func NewRankingHandler(deps RankingDependencies, maxLimit, defaultWindow int) *RankingHandler {
	return &RankingHandler{
		deps:          deps,
		maxLimit:      maxLimit,
		defaultWindow: defaultWindow,
	}
}

// HandleGetRanking handles GET /ranking?limit=N requests. Without a limit the
// full ranking is returned.
func (h *RankingHandler) HandleGetRanking(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_ranking"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit := h.maxLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		limit = n
	}

	entries, err := h.deps.Ranking(r.Context(), limit)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleGetPosition handles GET /ranking/{bet_id} requests.
func (h *RankingHandler) HandleGetPosition(w http.ResponseWriter, r *http.Request, rawID string) {
	const op = "api.get_position"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, err := parseID(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	entry, err := h.deps.Position(r.Context(), id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// HandleGetAround handles GET /ranking/{bet_id}/around?window=K requests:
// the subject's neighbors above and below, never the subject itself.
func (h *RankingHandler) HandleGetAround(w http.ResponseWriter, r *http.Request, rawID string) {
	const op = "api.get_around"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, err := parseID(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	window := h.defaultWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		window = n
	}

	neighborhood, err := h.deps.Around(r.Context(), id, window)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, neighborhood)
}
