// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	repository "github.com/RyanRaymundo99/betcompare/internal/adapters/repository"
	bet "github.com/RyanRaymundo99/betcompare/internal/domain/bet"
	comparison "github.com/RyanRaymundo99/betcompare/internal/domain/comparison"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
	ranking "github.com/RyanRaymundo99/betcompare/internal/domain/ranking"
	scoring "github.com/RyanRaymundo99/betcompare/internal/domain/scoring"
	types "github.com/RyanRaymundo99/betcompare/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Subject CRUD.
	CreateBet(ctx context.Context, b bet.Bet) (bet.Bet, error)
	ListBets(ctx context.Context) ([]bet.Bet, error)
	GetBet(ctx context.Context, id uuid.UUID) (bet.Bet, error)
	UpdateBet(ctx context.Context, b bet.Bet) (bet.Bet, error)
	DeleteBet(ctx context.Context, id uuid.UUID) error

	// Parameter value writes and reads.
	WriteValue(ctx context.Context, in WriteValueInput) (params.Value, bool, error)
	UpdateValue(ctx context.Context, id uuid.UUID, raw any, note string) (params.Value, error)
	SubjectValues(ctx context.Context, id uuid.UUID) ([]params.Value, error)
	ValueHistory(ctx context.Context, id uuid.UUID) ([]params.HistoryEntry, error)
	SubjectHistory(ctx context.Context, id uuid.UUID) ([]params.SubjectHistoryEntry, error)

	// Derived reads.
	Score(ctx context.Context, id uuid.UUID) (ScoreSummary, error)
	Ranking(ctx context.Context, limit int) ([]Entry, error)
	Position(ctx context.Context, id uuid.UUID) (Entry, error)
	Around(ctx context.Context, id uuid.UUID, window int) (Neighborhood, error)
	Compare(ctx context.Context, ids []uuid.UUID) (comparison.Matrix, error)

	// Tooling.
	Regenerate(ctx context.Context, id uuid.UUID) (int, error)
}

// WriteValueInput carries one validated-at-the-edge value write. Value holds
// the raw JSON payload; coercion against the catalog happens downstream.
type WriteValueInput struct {
	SubjectID uuid.UUID
	Name      string
	Category  string
	Type      string
	Unit      string
	Options   []string
	Value     any
	Note      string
}

// Entry and Neighborhood mirror the read shapes returned by ranking queries.
type (
	Entry        = types.Entry
	Neighborhood = types.Neighborhood
)

// ScoreSummary is one subject's derived score.
type ScoreSummary struct {
	BetID string `json:"bet_id"`
	Name  string `json:"name"`
	scoring.Result
}

// Limits bound the read endpoints, sourced from configuration.
type Limits struct {
	MaxCompareSubjects int
	MaxRankingLimit    int
	AroundWindow       int
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	betsHandler    *BetsHandler
	valuesHandler  *ValuesHandler
	historyHandler *HistoryHandler
	scoreHandler   *ScoreHandler
	rankingHandler *RankingHandler
	compareHandler *CompareHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, limits Limits) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		betsHandler:    NewBetsHandler(deps),
		valuesHandler:  NewValuesHandler(deps),
		historyHandler: NewHistoryHandler(deps),
		scoreHandler:   NewScoreHandler(deps),
		rankingHandler: NewRankingHandler(deps, limits.MaxRankingLimit, limits.AroundWindow),
		compareHandler: NewCompareHandler(deps, limits.MaxCompareSubjects),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/bets", MetricsMiddleware(s.betsHandler.HandleCollection, "bets"))
	mux.HandleFunc("/bets/", MetricsMiddleware(s.handleBetSubtree, "bets"))
	mux.HandleFunc("/parameters", MetricsMiddleware(s.valuesHandler.HandleWriteValue, "parameters"))
	mux.HandleFunc("/parameters/", MetricsMiddleware(s.handleParameterSubtree, "parameters"))
	mux.HandleFunc("/ranking", MetricsMiddleware(s.rankingHandler.HandleGetRanking, "ranking"))
	mux.HandleFunc("/ranking/", MetricsMiddleware(s.handleRankingSubtree, "ranking"))
	mux.HandleFunc("/compare", MetricsMiddleware(s.compareHandler.HandleCompare, "compare"))
}

// handleBetSubtree dispatches /bets/{id} and its nested resources.
func (s *Server) handleBetSubtree(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/bets/")
	switch {
	case len(segments) == 1:
		s.betsHandler.HandleItem(w, r, segments[0])
	case len(segments) == 2 && segments[1] == "history":
		s.historyHandler.HandleSubjectHistory(w, r, segments[0])
	case len(segments) == 2 && segments[1] == "score":
		s.scoreHandler.HandleScore(w, r, segments[0])
	case len(segments) == 3 && segments[1] == "parameters" && segments[2] == "regenerate":
		s.valuesHandler.HandleRegenerate(w, r, segments[0])
	default:
		http.NotFound(w, r)
	}
}

// handleParameterSubtree dispatches /parameters/{id} and /parameters/{id}/history.
func (s *Server) handleParameterSubtree(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/parameters/")
	switch {
	case len(segments) == 1:
		s.valuesHandler.HandleUpdateValue(w, r, segments[0])
	case len(segments) == 2 && segments[1] == "history":
		s.historyHandler.HandleValueHistory(w, r, segments[0])
	default:
		http.NotFound(w, r)
	}
}

// handleRankingSubtree dispatches /ranking/{id} and /ranking/{id}/around.
func (s *Server) handleRankingSubtree(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/ranking/")
	switch {
	case len(segments) == 1:
		s.rankingHandler.HandleGetPosition(w, r, segments[0])
	case len(segments) == 2 && segments[1] == "around":
		s.rankingHandler.HandleGetAround(w, r, segments[0])
	default:
		http.NotFound(w, r)
	}
}

func pathSegments(path, prefix string) []string {
	trimmed := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// valueResponse is the wire shape for a current parameter value.
type valueResponse struct {
	ID        string    `json:"id"`
	BetID     string    `json:"bet_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Type      string    `json:"type"`
	Unit      string    `json:"unit,omitempty"`
	Options   []string  `json:"options,omitempty"`
	Value     any       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newValueResponse(v params.Value) valueResponse {
	return valueResponse{
		ID:        v.ID.String(),
		BetID:     v.SubjectID.String(),
		Name:      v.Name,
		Category:  v.Category,
		Type:      string(v.Type),
		Unit:      v.Unit,
		Options:   v.Options,
		Value:     slotValue(v.Slot),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// betDetail is the read-one shape: the subject with its current parameter
// values embedded.
type betDetail struct {
	bet.Bet
	Parameters []valueResponse `json:"parameters"`
}

type betDetailResponse struct {
	Success bool      `json:"success"`
	Bet     betDetail `json:"bet"`
}

func newBetDetailResponse(b bet.Bet, values []params.Value) betDetailResponse {
	parameters := make([]valueResponse, len(values))
	for i, v := range values {
		parameters[i] = newValueResponse(v)
	}
	return betDetailResponse{
		Success: true,
		Bet:     betDetail{Bet: b, Parameters: parameters},
	}
}

type historyEntryResponse struct {
	ID        string    `json:"id"`
	ValueID   string    `json:"value_id"`
	Value     any       `json:"value"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newHistoryEntryResponse(e params.HistoryEntry) historyEntryResponse {
	return historyEntryResponse{
		ID:        e.ID.String(),
		ValueID:   e.ValueID.String(),
		Value:     slotValue(e.Slot),
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

// parameterRef annotates a flattened ledger entry with its owning parameter.
type parameterRef struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type subjectHistoryEntryResponse struct {
	historyEntryResponse
	Parameter parameterRef `json:"parameter"`
}

// historyResponse is the ledger read envelope.
type historyResponse struct {
	Success bool `json:"success"`
	History any  `json:"history"`
}

// slotValue renders the populated slot field for JSON encoding.
func slotValue(s params.Slot) any {
	switch {
	case s.Text != nil:
		return *s.Text
	case s.Number != nil:
		return *s.Number
	case s.Boolean != nil:
		return *s.Boolean
	case s.Rating != nil:
		return *s.Rating
	}
	return nil
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Error: msg})
}

// writeDomainError translates domain and store errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrBetNotFound),
		errors.Is(err, repository.ErrValueNotFound),
		errors.Is(err, ranking.ErrNotRanked):
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
	case errors.Is(err, params.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_failed", Wrap(op, err))
	case errors.Is(err, bet.ErrInvalidBet), errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

// parseID rejects malformed UUID path parameters before they reach storage.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, ErrBadRequest
	}
	return id, nil
}
