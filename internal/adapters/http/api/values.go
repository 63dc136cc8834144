// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

// ValueDependencies defines the interface for parameter value writes.
type ValueDependencies interface {
	WriteValue(ctx context.Context, in WriteValueInput) (params.Value, bool, error)
	UpdateValue(ctx context.Context, id uuid.UUID, raw any, note string) (params.Value, error)
	Regenerate(ctx context.Context, id uuid.UUID) (int, error)
}

// ValuesHandler handles parameter value write requests.
type ValuesHandler struct {
	deps ValueDependencies
}

// NewValuesHandler creates a new values handler.
func NewValuesHandler(deps ValueDependencies) *ValuesHandler {
	return &ValuesHandler{deps: deps}
}

// valueRequest mirrors the OpenAPI schema for POST /parameters. At most one
// of the value_* slots may be set; which slot is expected follows from the
// parameter's type.
type valueRequest struct {
	BetID        string   `json:"bet_id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Type         string   `json:"type"`
	Unit         string   `json:"unit"`
	Options      []string `json:"options"`
	ValueText    *string  `json:"value_text"`
	ValueNumber  *float64 `json:"value_number"`
	ValueBoolean *bool    `json:"value_boolean"`
	ValueRating  *float64 `json:"value_rating"`
	Notes        string   `json:"notes"`
}

func (req valueRequest) validate() error {
	switch {
	case strings.TrimSpace(req.BetID) == "":
		return errors.New("missing bet_id")
	case strings.TrimSpace(req.Name) == "":
		return errors.New("missing name")
	}
	if _, err := uuid.Parse(req.BetID); err != nil {
		return errors.New("invalid bet_id; must be a UUID")
	}
	populated := 0
	for _, set := range []bool{
		req.ValueText != nil, req.ValueNumber != nil,
		req.ValueBoolean != nil, req.ValueRating != nil,
	} {
		if set {
			populated++
		}
	}
	if populated > 1 {
		return errors.New("more than one value slot populated")
	}
	return nil
}

// rawValue returns the populated value slot, nil when none is set. Coercion
// against the catalog's typing happens downstream; an unset value is rejected
// there as a validation error.
func (req valueRequest) rawValue() any {
	switch {
	case req.ValueText != nil:
		return *req.ValueText
	case req.ValueNumber != nil:
		return *req.ValueNumber
	case req.ValueBoolean != nil:
		return *req.ValueBoolean
	case req.ValueRating != nil:
		return *req.ValueRating
	}
	return nil
}

// HandleWriteValue handles POST /parameters requests. A write for an
// existing (bet, name) pair overwrites it and answers 200; a first write
// answers 201.
func (h *ValuesHandler) HandleWriteValue(w http.ResponseWriter, r *http.Request) {
	const op = "api.write_value"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req valueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	betID, _ := uuid.Parse(req.BetID)
	stored, created, err := h.deps.WriteValue(r.Context(), WriteValueInput{
		SubjectID: betID,
		Name:      strings.TrimSpace(req.Name),
		Category:  req.Category,
		Type:      req.Type,
		Unit:      req.Unit,
		Options:   req.Options,
		Value:     req.rawValue(),
		Note:      req.Notes,
	})
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, newValueResponse(stored))
}

// updateValueRequest mirrors the OpenAPI schema for PUT /parameters/{id}.
type updateValueRequest struct {
	Value any    `json:"value"`
	Notes string `json:"notes"`
}

// HandleUpdateValue handles PUT /parameters/{id} requests.
func (h *ValuesHandler) HandleUpdateValue(w http.ResponseWriter, r *http.Request, rawID string) {
	const op = "api.update_value"
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	id, err := parseID(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	var req updateValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	updated, err := h.deps.UpdateValue(r.Context(), id, req.Value, req.Notes)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, newValueResponse(updated))
}

// regenerateResponse reports a bulk parameter regeneration.
type regenerateResponse struct {
	BetID     string `json:"bet_id"`
	Generated int    `json:"generated"`
}

// HandleRegenerate handles POST /bets/{id}/parameters/regenerate requests.
func (h *ValuesHandler) HandleRegenerate(w http.ResponseWriter, r *http.Request, rawID string) {
	const op = "api.regenerate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	id, err := parseID(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	generated, err := h.deps.Regenerate(r.Context(), id)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, regenerateResponse{BetID: id.String(), Generated: generated})
}
