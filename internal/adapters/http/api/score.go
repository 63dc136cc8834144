// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ScoreDependencies defines the interface for score reads.
type ScoreDependencies interface {
	Score(ctx context.Context, id uuid.UUID) (ScoreSummary, error)
}

// ScoreHandler handles derived score requests.
type ScoreHandler struct {
	deps ScoreDependencies
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps ScoreDependencies) *ScoreHandler {
	return &ScoreHandler{deps: deps}
}

// HandleScore handles GET /bets/{id}/score requests. A subject with no
// rating values answers with the explicit no-rating shape, never a zero
// score presented as rated.
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request, rawID string) {
	const op = "api.score"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, err := parseID(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	summary, err := h.deps.Score(r.Context(), id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
