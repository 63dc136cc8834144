// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"

	api "github.com/RyanRaymundo99/betcompare/internal/adapters/http/api"
	repository "github.com/RyanRaymundo99/betcompare/internal/adapters/repository"
	bet "github.com/RyanRaymundo99/betcompare/internal/domain/bet"
	catalog "github.com/RyanRaymundo99/betcompare/internal/domain/catalog"
	comparison "github.com/RyanRaymundo99/betcompare/internal/domain/comparison"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
	ranking "github.com/RyanRaymundo99/betcompare/internal/domain/ranking"
	scoring "github.com/RyanRaymundo99/betcompare/internal/domain/scoring"
	types "github.com/RyanRaymundo99/betcompare/internal/domain/types"
	seeder "github.com/RyanRaymundo99/betcompare/internal/seeder"
	"github.com/RyanRaymundo99/betcompare/pkg/logger"
	"github.com/RyanRaymundo99/betcompare/pkg/metrics"
)

// Service implements the API dependencies for the comparison engine.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	catalog   *catalog.Catalog
	resolver  *comparison.Resolver
	generator *seeder.Generator

	// Configuration
	databaseURL     string
	currencyUnit    string
	seedProbability float64

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore injects a store, bypassing the database URL. Used by tests.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDatabaseURL sets the postgres DSN. Empty keeps the in-memory store.
func WithDatabaseURL(url string) Option {
	return func(s *Service) {
		s.databaseURL = strings.TrimSpace(url)
	}
}

// WithCatalog overrides the default parameter catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithCurrencyUnit sets the unit appended to currency values without one.
func WithCurrencyUnit(unit string) Option {
	return func(s *Service) {
		if unit != "" {
			s.currencyUnit = unit
		}
	}
}

// WithSeedProbability sets the chance each catalog definition gets a value
// during regeneration.
func WithSeedProbability(p float64) Option {
	return func(s *Service) {
		if p >= 0 && p <= 1 {
			s.seedProbability = p
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		currencyUnit:    "R$",
		seedProbability: 0.85,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting comparison service...")

	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.store == nil {
		if s.databaseURL != "" {
			store, err := repository.NewGormStore(postgres.Open(s.databaseURL))
			if err != nil {
				return err
			}
			s.store = store
			s.logger.Info(ctx, "using postgres store")
		} else {
			s.store = repository.NewMemStore()
			s.logger.Info(ctx, "using in-memory store")
		}
	}
	s.resolver = comparison.NewResolver(s.catalog, s.currencyUnit)
	s.generator = seeder.New(s.catalog, s.seedProbability)

	metrics.UpdateCatalogSize(s.catalog.Len())

	s.started = true
	s.logger.Info(ctx, "comparison service started",
		logger.Int("catalogSize", s.catalog.Len()),
		logger.String("currencyUnit", s.currencyUnit),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.logger.Info(context.Background(), "stopping comparison service...")

	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "comparison service stopped")
}

// CreateBet validates and persists a new subject.
func (s *Service) CreateBet(ctx context.Context, b bet.Bet) (bet.Bet, error) {
	if err := b.Validate(); err != nil {
		return bet.Bet{}, err
	}
	if err := s.store.CreateBet(ctx, &b); err != nil {
		return bet.Bet{}, err
	}
	metrics.UpdateTotalSubjects(s.store.CountBets(ctx))
	s.logger.Info(ctx, "bet created",
		logger.String("betID", b.ID.String()),
		logger.String("name", b.Name),
	)
	return b, nil
}

// ListBets returns every subject in creation order.
func (s *Service) ListBets(ctx context.Context) ([]bet.Bet, error) {
	return s.store.ListBets(ctx)
}

// GetBet returns one subject.
func (s *Service) GetBet(ctx context.Context, id uuid.UUID) (bet.Bet, error) {
	return s.store.GetBet(ctx, id)
}

// UpdateBet validates and overwrites a subject's descriptive fields.
func (s *Service) UpdateBet(ctx context.Context, b bet.Bet) (bet.Bet, error) {
	if err := b.Validate(); err != nil {
		return bet.Bet{}, err
	}
	if err := s.store.UpdateBet(ctx, b); err != nil {
		return bet.Bet{}, err
	}
	return s.store.GetBet(ctx, b.ID)
}

// DeleteBet removes a subject with its values and history.
func (s *Service) DeleteBet(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteBet(ctx, id); err != nil {
		return err
	}
	metrics.UpdateTotalSubjects(s.store.CountBets(ctx))
	return nil
}

// WriteValue validates one value against the catalog and writes it. For
// catalog-backed names the definition's type, category, unit and options win
// over anything in the request; free-form names fall back to the request's
// own typing. Nothing reaches storage on a validation failure.
func (s *Service) WriteValue(ctx context.Context, in api.WriteValueInput) (params.Value, bool, error) {
	if _, err := s.store.GetBet(ctx, in.SubjectID); err != nil {
		return params.Value{}, false, err
	}

	v := params.Value{
		SubjectID: in.SubjectID,
		Name:      in.Name,
	}
	var constraints params.Constraints
	if def, ok := s.catalog.Get(in.Name); ok {
		v.Category = string(def.Category)
		v.Type = def.Type
		v.Unit = def.Unit
		v.Options = def.Options
		constraints = def.Constraints()
	} else {
		kind := params.KindText
		if strings.TrimSpace(in.Type) != "" {
			parsed, err := params.ParseKind(in.Type)
			if err != nil {
				metrics.RecordValidationRejection(in.Type, "unknown_type")
				return params.Value{}, false, err
			}
			kind = parsed
		}
		v.Category = in.Category
		v.Type = kind
		v.Unit = in.Unit
		v.Options = in.Options
		constraints = params.Constraints{Options: in.Options}
	}

	slot, err := params.Coerce(v.Type, in.Value, constraints)
	if err != nil {
		metrics.RecordValidationRejection(string(v.Type), rejectionReason(err))
		return params.Value{}, false, err
	}
	v.Slot = slot

	stored, created, err := s.store.UpsertValue(ctx, v, in.Note)
	if err != nil {
		return params.Value{}, false, err
	}
	if created {
		metrics.RecordValueWrite()
	} else {
		metrics.RecordValueUpdate()
	}
	metrics.UpdateTotalValues(s.store.CountValues(ctx))
	return stored, created, nil
}

// UpdateValue coerces raw against the existing row's typing and overwrites
// the slot by identity. The catalog's constraints win when the name is still
// defined there.
func (s *Service) UpdateValue(ctx context.Context, id uuid.UUID, raw any, note string) (params.Value, error) {
	existing, err := s.store.GetValue(ctx, id)
	if err != nil {
		return params.Value{}, err
	}

	kind := existing.Type
	constraints := params.Constraints{Options: existing.Options}
	if def, ok := s.catalog.Get(existing.Name); ok {
		kind = def.Type
		constraints = def.Constraints()
	}

	slot, err := params.Coerce(kind, raw, constraints)
	if err != nil {
		metrics.RecordValidationRejection(string(kind), rejectionReason(err))
		return params.Value{}, err
	}

	updated, err := s.store.UpdateValue(ctx, id, slot, note)
	if err != nil {
		return params.Value{}, err
	}
	metrics.RecordValueUpdate()
	return updated, nil
}

// SubjectValues lists one subject's current parameter values.
func (s *Service) SubjectValues(ctx context.Context, id uuid.UUID) ([]params.Value, error) {
	if _, err := s.store.GetBet(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListValues(ctx, id)
}

// ValueHistory returns one value's ledger, newest-first.
func (s *Service) ValueHistory(ctx context.Context, id uuid.UUID) ([]params.HistoryEntry, error) {
	return s.store.ListHistory(ctx, id)
}

// SubjectHistory returns the flattened ledger across one subject's values.
func (s *Service) SubjectHistory(ctx context.Context, id uuid.UUID) ([]params.SubjectHistoryEntry, error) {
	if _, err := s.store.GetBet(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListSubjectHistory(ctx, id)
}

// Score derives one subject's score from its current rating values.
func (s *Service) Score(ctx context.Context, id uuid.UUID) (api.ScoreSummary, error) {
	b, err := s.store.GetBet(ctx, id)
	if err != nil {
		return api.ScoreSummary{}, err
	}
	values, err := s.store.ListValues(ctx, id)
	if err != nil {
		return api.ScoreSummary{}, err
	}
	metrics.RecordScoreComputation()
	return api.ScoreSummary{
		BetID:  b.ID.String(),
		Name:   b.Name,
		Result: scoring.Compute(values),
	}, nil
}

// Ranking returns the top entries of the global ranking.
func (s *Service) Ranking(ctx context.Context, limit int) ([]types.Entry, error) {
	r, err := s.buildRanking(ctx)
	if err != nil {
		return nil, err
	}
	metrics.RecordRankingRequest()
	return r.Top(limit), nil
}

// Position returns one subject's ranking entry.
func (s *Service) Position(ctx context.Context, id uuid.UUID) (types.Entry, error) {
	if _, err := s.store.GetBet(ctx, id); err != nil {
		return types.Entry{}, err
	}
	r, err := s.buildRanking(ctx)
	if err != nil {
		return types.Entry{}, err
	}
	metrics.RecordRankingRequest()
	return r.Position(id.String())
}

// Around returns the entries immediately above and below one subject.
func (s *Service) Around(ctx context.Context, id uuid.UUID, window int) (types.Neighborhood, error) {
	if _, err := s.store.GetBet(ctx, id); err != nil {
		return types.Neighborhood{}, err
	}
	r, err := s.buildRanking(ctx)
	if err != nil {
		return types.Neighborhood{}, err
	}
	metrics.RecordRankingRequest()
	return r.Around(id.String(), window)
}

// buildRanking scores every subject in creation order, which doubles as the
// tie-break for equal scores.
func (s *Service) buildRanking(ctx context.Context) (*ranking.Ranking, error) {
	bets, err := s.store.ListBets(ctx)
	if err != nil {
		return nil, err
	}
	scored := make([]ranking.Scored, 0, len(bets))
	for _, b := range bets {
		values, err := s.store.ListValues(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		result := scoring.Compute(values)
		scored = append(scored, ranking.Scored{
			BetID: b.ID.String(),
			Name:  b.Name,
			Score: result.Score,
			Stars: result.Stars,
			Rated: result.Rated,
		})
	}
	return ranking.New(scored), nil
}

// Compare resolves the comparison matrix for the given subjects, columns in
// request order.
func (s *Service) Compare(ctx context.Context, ids []uuid.UUID) (comparison.Matrix, error) {
	subjects := make([]comparison.Subject, 0, len(ids))
	for _, id := range ids {
		b, err := s.store.GetBet(ctx, id)
		if err != nil {
			return comparison.Matrix{}, err
		}
		values, err := s.store.ListValues(ctx, id)
		if err != nil {
			return comparison.Matrix{}, err
		}
		subjects = append(subjects, comparison.Subject{ID: b.ID, Name: b.Name, Values: values})
	}
	metrics.RecordComparisonRequest()
	return s.resolver.Resolve(subjects), nil
}

// Regenerate replaces a subject's full parameter set with generated values
// in one transaction. Returns the number of generated values.
func (s *Service) Regenerate(ctx context.Context, id uuid.UUID) (int, error) {
	if _, err := s.store.GetBet(ctx, id); err != nil {
		return 0, err
	}
	values := s.generator.Generate()
	if err := s.store.ReplaceSubjectValues(ctx, id, values); err != nil {
		return 0, err
	}
	metrics.RecordBulkRegeneration()
	metrics.UpdateTotalValues(s.store.CountValues(ctx))
	s.logger.Info(ctx, "parameters regenerated",
		logger.String("betID", id.String()),
		logger.Int("generated", len(values)),
	)
	return len(values), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":      s.started,
		"currencyUnit": s.currencyUnit,
	}
	if s.started {
		totalBets := s.store.CountBets(ctx)
		totalValues := s.store.CountValues(ctx)

		stats["totalBets"] = totalBets
		stats["totalValues"] = totalValues
		stats["catalogSize"] = s.catalog.Len()

		metrics.UpdateTotalSubjects(totalBets)
		metrics.UpdateTotalValues(totalValues)
	}
	return stats
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, params.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, params.ErrNotInOptions):
		return "not_in_options"
	default:
		return "invalid"
	}
}
