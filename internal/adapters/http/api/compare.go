// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	comparison "github.com/RyanRaymundo99/betcompare/internal/domain/comparison"
)

// CompareDependencies defines the interface for comparison resolution.
type CompareDependencies interface {
	Compare(ctx context.Context, ids []uuid.UUID) (comparison.Matrix, error)
}

// CompareHandler handles side-by-side comparison requests.
type CompareHandler struct {
	deps        CompareDependencies
	maxSubjects int
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(deps CompareDependencies, maxSubjects int) *CompareHandler {
	return &CompareHandler{deps: deps, maxSubjects: maxSubjects}
}

// HandleCompare handles GET /compare?ids=a,b,c requests. Column order
// follows the requested ID order.
func (h *CompareHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw := strings.TrimSpace(r.URL.Query().Get("ids"))
	if raw == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	parts := strings.Split(raw, ",")
	if len(parts) > h.maxSubjects {
		writeError(w, http.StatusBadRequest, "too_many_subjects", NewKind(op, ErrTooManySubjects))
		return
	}
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := parseID(p)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		ids = append(ids, id)
	}

	matrix, err := h.deps.Compare(r.Context(), ids)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, matrix)
}
