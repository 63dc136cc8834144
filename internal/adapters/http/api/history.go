// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

// HistoryDependencies defines the interface for history reads.
type HistoryDependencies interface {
	ValueHistory(ctx context.Context, id uuid.UUID) ([]params.HistoryEntry, error)
	SubjectHistory(ctx context.Context, id uuid.UUID) ([]params.SubjectHistoryEntry, error)
}

// HistoryHandler handles append-only ledger reads.
type HistoryHandler struct {
	deps HistoryDependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps HistoryDependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

// HandleValueHistory handles GET /parameters/{id}/history requests, returning
// entries newest-first.
func (h *HistoryHandler) HandleValueHistory(w http.ResponseWriter, r *http.Request, rawID string) {
	const op = "api.value_history"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, err := parseID(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	entries, err := h.deps.ValueHistory(r.Context(), id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	out := make([]historyEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = newHistoryEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, historyResponse{Success: true, History: out})
}

// HandleSubjectHistory handles GET /bets/{id}/history requests: the flattened
// ledger across every parameter of one subject, newest-first.
func (h *HistoryHandler) HandleSubjectHistory(w http.ResponseWriter, r *http.Request, rawID string) {
	const op = "api.subject_history"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, err := parseID(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	entries, err := h.deps.SubjectHistory(r.Context(), id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	out := make([]subjectHistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = subjectHistoryEntryResponse{
			historyEntryResponse: newHistoryEntryResponse(e.HistoryEntry),
			Parameter:            parameterRef{Name: e.ParameterName, Category: e.ParameterCategory},
		}
	}
	writeJSON(w, http.StatusOK, historyResponse{Success: true, History: out})
}
