package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	bet "github.com/RyanRaymundo99/betcompare/internal/domain/bet"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

// betRow is the persisted form of a subject.
type betRow struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null;index"`
	Company      string
	Domain       string
	Status       string `gorm:"not null;default:active"`
	Scope        string
	PlatformType string
	LogoURL      string
	CoverURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (betRow) TableName() string { return "bets" }

// valueRow is the persisted current value for one (subject, name) pair.
// The slot is stored as one nullable column per kind family; exactly one is
// set for validated writes.
type valueRow struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BetID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_values_bet_name,priority:1;index"`
	Name         string    `gorm:"not null;uniqueIndex:idx_values_bet_name,priority:2"`
	Category     string
	Type         string `gorm:"not null"`
	Unit         string
	Options      datatypes.JSON
	TextValue    *string
	NumberValue  *float64
	BooleanValue *bool
	RatingValue  *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (valueRow) TableName() string { return "parameter_values" }

// historyRow is one immutable entry of the append-only ledger.
type historyRow struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ValueID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TextValue    *string
	NumberValue  *float64
	BooleanValue *bool
	RatingValue  *float64
	Note         string
	CreatedAt    time.Time `gorm:"index"`
}

func (historyRow) TableName() string { return "parameter_history" }

func toBetRow(b bet.Bet) betRow {
	return betRow{
		ID:           b.ID,
		Name:         b.Name,
		Company:      b.Company,
		Domain:       b.Domain,
		Status:       string(b.Status),
		Scope:        b.Scope,
		PlatformType: b.PlatformType,
		LogoURL:      b.LogoURL,
		CoverURL:     b.CoverURL,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (r betRow) toDomain() bet.Bet {
	return bet.Bet{
		ID:           r.ID,
		Name:         r.Name,
		Company:      r.Company,
		Domain:       r.Domain,
		Status:       bet.Status(r.Status),
		Scope:        r.Scope,
		PlatformType: r.PlatformType,
		LogoURL:      r.LogoURL,
		CoverURL:     r.CoverURL,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toValueRow(v params.Value) valueRow {
	row := valueRow{
		ID:           v.ID,
		BetID:        v.SubjectID,
		Name:         v.Name,
		Category:     v.Category,
		Type:         string(v.Type),
		Unit:         v.Unit,
		TextValue:    v.Slot.Text,
		NumberValue:  v.Slot.Number,
		BooleanValue: v.Slot.Boolean,
		RatingValue:  v.Slot.Rating,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if len(v.Options) > 0 {
		if raw, err := json.Marshal(v.Options); err == nil {
			row.Options = datatypes.JSON(raw)
		}
	}
	return row
}

func (r valueRow) toDomain() params.Value {
	v := params.Value{
		ID:        r.ID,
		SubjectID: r.BetID,
		Name:      r.Name,
		Category:  r.Category,
		Type:      params.Kind(r.Type),
		Unit:      r.Unit,
		Slot: params.Slot{
			Text:    r.TextValue,
			Number:  r.NumberValue,
			Boolean: r.BooleanValue,
			Rating:  r.RatingValue,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if len(r.Options) > 0 {
		// Corrupt options JSON degrades to an empty list rather than failing
		// the read.
		_ = json.Unmarshal(r.Options, &v.Options)
	}
	return v
}

func toHistoryRow(valueID uuid.UUID, slot params.Slot, note string, at time.Time) historyRow {
	return historyRow{
		ID:           uuid.New(),
		ValueID:      valueID,
		TextValue:    slot.Text,
		NumberValue:  slot.Number,
		BooleanValue: slot.Boolean,
		RatingValue:  slot.Rating,
		Note:         note,
		CreatedAt:    at,
	}
}

func (r historyRow) toDomain() params.HistoryEntry {
	return params.HistoryEntry{
		ID:      r.ID,
		ValueID: r.ValueID,
		Slot: params.Slot{
			Text:    r.TextValue,
			Number:  r.NumberValue,
			Boolean: r.BooleanValue,
			Rating:  r.RatingValue,
		},
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}
