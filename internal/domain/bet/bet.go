// Package bet defines the subject entity that parameter values attach to.
package bet

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status enumerates the subject lifecycle states.
type Status string

// Subject statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// Bet is a betting house: the subject parameter values are attached to.
type Bet struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	Domain       string    `json:"domain,omitempty"`
	Status       Status    `json:"status"`
	Scope        string    `json:"scope,omitempty"`
	PlatformType string    `json:"platform_type,omitempty"`
	LogoURL      string    `json:"logo_url,omitempty"`
	CoverURL     string    `json:"cover_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks the descriptive fields before persistence.
func (b Bet) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidBet)
	}
	switch b.Status {
	case StatusActive, StatusInactive, StatusPending:
		return nil
	}
	return fmt.Errorf("%w: unknown status %q", ErrInvalidBet, b.Status)
}
