// Package params defines parameter value types and the write-path
// validation/coercion rules applied before anything reaches storage.
package params

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind enumerates the supported parameter value types.
type Kind string

// Supported parameter kinds.
const (
	KindText       Kind = "text"
	KindNumber     Kind = "number"
	KindCurrency   Kind = "currency"
	KindPercentage Kind = "percentage"
	KindBoolean    Kind = "boolean"
	KindRating     Kind = "rating"
	KindSelect     Kind = "select"
)

// Default rating bounds when a definition carries none.
const (
	DefaultRatingMin = 0.0
	DefaultRatingMax = 5.0
)

// ParseKind validates a raw type string against the supported kinds.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case KindText, KindNumber, KindCurrency, KindPercentage, KindBoolean, KindRating, KindSelect:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown type %q", ErrValidation, raw)
}

// Numeric reports whether the kind stores into the number slot.
func (k Kind) Numeric() bool {
	return k == KindNumber || k == KindCurrency || k == KindPercentage
}

// Slot holds the single populated value of a parameter. Exactly one field is
// non-nil after a successful coercion; the populated field is determined by
// the definition's kind.
type Slot struct {
	Text    *string
	Number  *float64
	Boolean *bool
	Rating  *float64
}

// Populated reports whether any field of the slot is set.
func (s Slot) Populated() bool {
	return s.Text != nil || s.Number != nil || s.Boolean != nil || s.Rating != nil
}

// Value is the current-value row for one (subject, parameter name) pair.
// Category, Type, Unit and Options are denormalized from the catalog so that
// values whose definition was later removed stay renderable; the catalog is
// the source of truth when they diverge.
type Value struct {
	ID        uuid.UUID
	SubjectID uuid.UUID
	Name      string
	Category  string
	Type      Kind
	Unit      string
	Options   []string
	Slot      Slot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HistoryEntry is one immutable snapshot from the append-only ledger.
type HistoryEntry struct {
	ID        uuid.UUID
	ValueID   uuid.UUID
	Slot      Slot
	Note      string
	CreatedAt time.Time
}

// SubjectHistoryEntry annotates a history entry with its owning parameter,
// for the flattened per-subject audit view.
type SubjectHistoryEntry struct {
	HistoryEntry
	ParameterName     string
	ParameterCategory string
}

// Constraints carries the definition-side restrictions used during coercion.
type Constraints struct {
	Min     *float64
	Max     *float64
	Options []string
}

// Coerce validates raw input against the kind and constraints and produces a
// Slot with exactly one populated field. All validation happens here, before
// persistence is attempted; a returned error always wraps ErrValidation.
func Coerce(kind Kind, raw any, c Constraints) (Slot, error) {
	if isEmpty(raw) {
		return Slot{}, fmt.Errorf("%w: value cannot be empty", ErrValidation)
	}

	switch kind {
	case KindBoolean:
		b, err := coerceBool(raw)
		if err != nil {
			return Slot{}, err
		}
		return Slot{Boolean: &b}, nil

	case KindRating:
		r, err := coerceFloat(raw)
		if err != nil {
			return Slot{}, fmt.Errorf("%w: rating must be numeric", ErrValidation)
		}
		lo, hi := DefaultRatingMin, DefaultRatingMax
		if c.Min != nil {
			lo = *c.Min
		}
		if c.Max != nil {
			hi = *c.Max
		}
		// Out-of-range ratings are rejected, never clamped.
		if r < lo || r > hi {
			return Slot{}, fmt.Errorf("%w: rating %.2f outside [%g, %g]", ErrOutOfRange, r, lo, hi)
		}
		return Slot{Rating: &r}, nil

	case KindNumber, KindCurrency, KindPercentage:
		n, err := coerceFloat(raw)
		if err != nil {
			return Slot{}, fmt.Errorf("%w: %s requires a numeric value", ErrValidation, kind)
		}
		return Slot{Number: &n}, nil

	case KindSelect:
		s := strings.TrimSpace(fmt.Sprintf("%v", raw))
		if s == "" {
			return Slot{}, fmt.Errorf("%w: value cannot be empty", ErrValidation)
		}
		// Free text is only allowed when the definition carries no options.
		if len(c.Options) > 0 && !contains(c.Options, s) {
			return Slot{}, fmt.Errorf("%w: %q is not an allowed option", ErrNotInOptions, s)
		}
		return Slot{Text: &s}, nil

	case KindText:
		fallthrough
	default:
		s := strings.TrimSpace(fmt.Sprintf("%v", raw))
		if s == "" {
			return Slot{}, fmt.Errorf("%w: value cannot be empty", ErrValidation)
		}
		return Slot{Text: &s}, nil
	}
}

func isEmpty(raw any) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return true
	}
	return false
}

func coerceBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "sim", "yes":
			return true, nil
		case "false", "0", "não", "nao", "no":
			return false, nil
		}
		return false, fmt.Errorf("%w: %q is not a boolean", ErrValidation, v)
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	}
	return false, fmt.Errorf("%w: value is not a boolean", ErrValidation)
}

func coerceFloat(raw any) (float64, error) {
	var (
		n   float64
		err error
	)
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		n, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrValidation, v)
		}
	default:
		return 0, fmt.Errorf("%w: value is not numeric", ErrValidation)
	}
	// A NaN after parsing is an error, not a stored zero.
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: value is not a finite number", ErrValidation)
	}
	return n, nil
}

func contains(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
