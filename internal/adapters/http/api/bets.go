// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	bet "github.com/RyanRaymundo99/betcompare/internal/domain/bet"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

// BetDependencies defines the interface for subject CRUD operations.
type BetDependencies interface {
	CreateBet(ctx context.Context, b bet.Bet) (bet.Bet, error)
	ListBets(ctx context.Context) ([]bet.Bet, error)
	GetBet(ctx context.Context, id uuid.UUID) (bet.Bet, error)
	UpdateBet(ctx context.Context, b bet.Bet) (bet.Bet, error)
	DeleteBet(ctx context.Context, id uuid.UUID) error
	SubjectValues(ctx context.Context, id uuid.UUID) ([]params.Value, error)
}

// BetsHandler handles subject CRUD requests.
type BetsHandler struct {
	deps BetDependencies
}

// NewBetsHandler creates a new bets handler.
func NewBetsHandler(deps BetDependencies) *BetsHandler {
	return &BetsHandler{deps: deps}
}

// betRequest mirrors the OpenAPI schema for bet create/update payloads.
type betRequest struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Domain       string `json:"domain"`
	Status       string `json:"status"`
	Scope        string `json:"scope"`
	PlatformType string `json:"platform_type"`
	LogoURL      string `json:"logo_url"`
	CoverURL     string `json:"cover_url"`
}

func (req betRequest) toDomain(id uuid.UUID) bet.Bet {
	status := bet.Status(strings.ToLower(strings.TrimSpace(req.Status)))
	if status == "" {
		status = bet.StatusActive
	}
	return bet.Bet{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		Company:      req.Company,
		Domain:       req.Domain,
		Status:       status,
		Scope:        req.Scope,
		PlatformType: req.PlatformType,
		LogoURL:      req.LogoURL,
		CoverURL:     req.CoverURL,
	}
}

// HandleCollection handles POST /bets and GET /bets requests.
func (h *BetsHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	const op = "api.bets"
	switch r.Method {
	case http.MethodPost:
		var req betRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		created, err := h.deps.CreateBet(r.Context(), req.toDomain(uuid.Nil))
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	case http.MethodGet:
		bets, err := h.deps.ListBets(r.Context())
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, bets)

	default:
		http.NotFound(w, r)
	}
}

// HandleItem handles GET, PUT and DELETE /bets/{id} requests.
func (h *BetsHandler) HandleItem(w http.ResponseWriter, r *http.Request, rawID string) {
	const op = "api.bets_item"
	id, err := parseID(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch r.Method {
	case http.MethodGet:
		b, err := h.deps.GetBet(r.Context(), id)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		values, err := h.deps.SubjectValues(r.Context(), id)
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, newBetDetailResponse(b, values))

	case http.MethodPut:
		var req betRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		updated, err := h.deps.UpdateBet(r.Context(), req.toDomain(id))
		if err != nil {
			writeDomainError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := h.deps.DeleteBet(r.Context(), id); err != nil {
			writeDomainError(w, op, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.NotFound(w, r)
	}
}
