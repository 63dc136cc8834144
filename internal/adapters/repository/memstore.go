package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	bet "github.com/RyanRaymundo99/betcompare/internal/domain/bet"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
	metrics "github.com/RyanRaymundo99/betcompare/pkg/metrics"
)

// MemStore is an in-memory Store. It backs local development runs without a
// database and keeps service tests hermetic. Semantics mirror GormStore.
type MemStore struct {
	mu sync.RWMutex

	bets     map[uuid.UUID]bet.Bet
	betOrder []uuid.UUID

	values  map[uuid.UUID]params.Value
	byName  map[uuid.UUID]map[string]uuid.UUID
	history map[uuid.UUID][]params.HistoryEntry
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		bets:    make(map[uuid.UUID]bet.Bet),
		values:  make(map[uuid.UUID]params.Value),
		byName:  make(map[uuid.UUID]map[string]uuid.UUID),
		history: make(map[uuid.UUID][]params.HistoryEntry),
	}
}

// CreateBet persists a new subject, assigning an ID when none is set.
func (s *MemStore) CreateBet(_ context.Context, b *bet.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now

	s.bets[b.ID] = *b
	s.betOrder = append(s.betOrder, b.ID)
	s.byName[b.ID] = make(map[string]uuid.UUID)
	return nil
}

// GetBet returns one subject by ID.
func (s *MemStore) GetBet(_ context.Context, id uuid.UUID) (bet.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bets[id]
	if !ok {
		return bet.Bet{}, ErrBetNotFound
	}
	return b, nil
}

// ListBets returns every subject in creation order.
func (s *MemStore) ListBets(_ context.Context) ([]bet.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]bet.Bet, 0, len(s.betOrder))
	for _, id := range s.betOrder {
		if b, ok := s.bets[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

// UpdateBet overwrites a subject's descriptive fields.
func (s *MemStore) UpdateBet(_ context.Context, b bet.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.bets[b.ID]
	if !ok {
		return ErrBetNotFound
	}
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	s.bets[b.ID] = b
	return nil
}

// DeleteBet removes a subject along with its values and their history.
func (s *MemStore) DeleteBet(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bets[id]; !ok {
		return ErrBetNotFound
	}
	delete(s.bets, id)
	for i, bid := range s.betOrder {
		if bid == id {
			s.betOrder = append(s.betOrder[:i], s.betOrder[i+1:]...)
			break
		}
	}
	for _, vid := range s.byName[id] {
		delete(s.values, vid)
		delete(s.history, vid)
	}
	delete(s.byName, id)
	return nil
}

// UpsertValue writes the current value for (v.SubjectID, v.Name) and appends
// one history entry.
func (s *MemStore) UpsertValue(_ context.Context, v params.Value, note string) (params.Value, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names, ok := s.byName[v.SubjectID]
	if !ok {
		names = make(map[string]uuid.UUID)
		s.byName[v.SubjectID] = names
	}

	now := time.Now().UTC()
	created := false
	if existingID, found := names[v.Name]; found {
		existing := s.values[existingID]
		v.ID = existing.ID
		v.CreatedAt = existing.CreatedAt
	} else {
		created = true
		v.ID = uuid.New()
		v.CreatedAt = now
		names[v.Name] = v.ID
	}
	v.UpdatedAt = now
	s.values[v.ID] = v

	s.appendHistory(v.ID, v.Slot, note, now)
	metrics.RecordHistoryAppend()
	return v, created, nil
}

// GetValue returns one value row by ID.
func (s *MemStore) GetValue(_ context.Context, id uuid.UUID) (params.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[id]
	if !ok {
		return params.Value{}, ErrValueNotFound
	}
	return v, nil
}

// UpdateValue overwrites an existing row's slot by identity and appends one
// history entry.
func (s *MemStore) UpdateValue(_ context.Context, id uuid.UUID, slot params.Slot, note string) (params.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[id]
	if !ok {
		return params.Value{}, ErrValueNotFound
	}
	now := time.Now().UTC()
	v.Slot = slot
	v.UpdatedAt = now
	s.values[id] = v

	s.appendHistory(id, slot, note, now)
	metrics.RecordHistoryAppend()
	return v, nil
}

// ListValues returns a subject's current values ordered by name.
func (s *MemStore) ListValues(_ context.Context, subjectID uuid.UUID) ([]params.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]params.Value, 0, len(s.byName[subjectID]))
	for _, vid := range s.byName[subjectID] {
		out = append(out, s.values[vid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListHistory returns a value's history newest-first.
func (s *MemStore) ListHistory(_ context.Context, valueID uuid.UUID) ([]params.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.values[valueID]; !ok {
		return nil, ErrValueNotFound
	}
	entries := s.history[valueID]
	out := make([]params.HistoryEntry, len(entries))
	// Stored oldest-first; serve newest-first.
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out, nil
}

// ListSubjectHistory flattens history across a subject's values, newest-first.
func (s *MemStore) ListSubjectHistory(_ context.Context, subjectID uuid.UUID) ([]params.SubjectHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []params.SubjectHistoryEntry
	for _, vid := range s.byName[subjectID] {
		owner := s.values[vid]
		for _, e := range s.history[vid] {
			out = append(out, params.SubjectHistoryEntry{
				HistoryEntry:      e,
				ParameterName:     owner.Name,
				ParameterCategory: owner.Category,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ReplaceSubjectValues swaps a subject's full value set atomically under the
// store lock.
func (s *MemStore) ReplaceSubjectValues(_ context.Context, subjectID uuid.UUID, values []params.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, vid := range s.byName[subjectID] {
		delete(s.values, vid)
		delete(s.history, vid)
	}
	names := make(map[string]uuid.UUID, len(values))
	s.byName[subjectID] = names

	now := time.Now().UTC()
	for _, v := range values {
		v.SubjectID = subjectID
		v.ID = uuid.New()
		v.CreatedAt, v.UpdatedAt = now, now
		s.values[v.ID] = v
		names[v.Name] = v.ID
		s.appendHistory(v.ID, v.Slot, "regenerated", now)
	}
	return nil
}

// CountBets reports the number of stored subjects.
func (s *MemStore) CountBets(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bets)
}

// CountValues reports the number of stored value rows.
func (s *MemStore) CountValues(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// appendHistory assumes the caller holds the write lock.
func (s *MemStore) appendHistory(valueID uuid.UUID, slot params.Slot, note string, at time.Time) {
	s.history[valueID] = append(s.history[valueID], params.HistoryEntry{
		ID:        uuid.New(),
		ValueID:   valueID,
		Slot:      slot,
		Note:      note,
		CreatedAt: at,
	})
}
