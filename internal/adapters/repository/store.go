// Package repository defines the parameter store interface and errors.
package repository

import (
	"context"

	"github.com/google/uuid"

	bet "github.com/RyanRaymundo99/betcompare/internal/domain/bet"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

// Store provides read/write access to subjects, their current parameter
// values and the append-only history ledger.
//
// Write-path invariants the implementations uphold:
//   - one value row per (subject, name); updates overwrite in place
//   - every successful value write appends exactly one history entry,
//     unconditionally, in the same transaction as the row write
//   - history entries are never updated or deleted individually
type Store interface {
	// CreateBet persists a new subject. The ID is assigned when zero.
	CreateBet(ctx context.Context, b *bet.Bet) error
	// GetBet returns one subject. Returns ErrBetNotFound when unknown.
	GetBet(ctx context.Context, id uuid.UUID) (bet.Bet, error)
	// ListBets returns every subject ordered by creation time ascending.
	ListBets(ctx context.Context) ([]bet.Bet, error)
	// UpdateBet overwrites a subject's descriptive fields.
	UpdateBet(ctx context.Context, b bet.Bet) error
	// DeleteBet removes a subject along with its values and history.
	DeleteBet(ctx context.Context, id uuid.UUID) error

	// UpsertValue writes the current value for (v.SubjectID, v.Name),
	// creating the row on first write and overwriting it afterwards, and
	// appends one history entry carrying note. Returns the stored value
	// and whether a new row was created.
	UpsertValue(ctx context.Context, v params.Value, note string) (params.Value, bool, error)
	// GetValue returns one value row. Returns ErrValueNotFound when unknown.
	GetValue(ctx context.Context, id uuid.UUID) (params.Value, error)
	// UpdateValue overwrites the slot of an existing row by identity and
	// appends one history entry. Returns the updated row.
	UpdateValue(ctx context.Context, id uuid.UUID, slot params.Slot, note string) (params.Value, error)
	// ListValues returns a subject's current values ordered by name.
	ListValues(ctx context.Context, subjectID uuid.UUID) ([]params.Value, error)

	// ListHistory returns a value's history newest-first.
	ListHistory(ctx context.Context, valueID uuid.UUID) ([]params.HistoryEntry, error)
	// ListSubjectHistory flattens history across all of a subject's values,
	// newest-first, annotated with the owning parameter.
	ListSubjectHistory(ctx context.Context, subjectID uuid.UUID) ([]params.SubjectHistoryEntry, error)

	// ReplaceSubjectValues deletes a subject's values (with their history)
	// and writes the given set in their place, inside one transaction.
	// Used by the bulk regenerate tooling.
	ReplaceSubjectValues(ctx context.Context, subjectID uuid.UUID, values []params.Value) error

	// CountBets and CountValues report store scale for monitoring.
	CountBets(ctx context.Context) int
	CountValues(ctx context.Context) int
}
