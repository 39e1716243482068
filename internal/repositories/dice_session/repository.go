// Package dicesession stores recent rolls for display, grouped by entity and
// context. Sessions expire and are never part of a character record.
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/paranormal-api/internal/repositories/dice_session Repository

// RollKind says what produced a roll
type RollKind string

// Roll kinds
const (
	RollKindNotation  RollKind = "notation"
	RollKindCustom    RollKind = "custom"
	RollKindAttribute RollKind = "attribute"
	RollKindSkill     RollKind = "skill"
	RollKindAttack    RollKind = "attack"
	RollKindDamage    RollKind = "damage"
)

// DiceSession is the recent roll history of one entity in one context
type DiceSession struct {
	// Entity that owns these rolls (e.g. a character ID)
	EntityID string `json:"entity_id"`

	// Context groups related rolls (e.g. "sheet", "combat")
	Context string `json:"context"`

	// Rolls, oldest first
	Rolls []DiceRoll `json:"rolls"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DiceRoll is one displayed roll
type DiceRoll struct {
	RollID string   `json:"roll_id"`
	Kind   RollKind `json:"kind"`

	// Notation that was rolled (e.g. "2d6+3", "1d20+7")
	Notation string `json:"notation"`

	// Individual faces
	Results []int `json:"results"`

	Modifier int `json:"modifier"`
	Total    int `json:"total"`

	// Description is a human label such as "Pontaria" or "Revólver"
	Description string `json:"description,omitempty"`

	IsCritical bool `json:"is_critical,omitempty"`
	IsFumble   bool `json:"is_fumble,omitempty"`

	RolledAt time.Time `json:"rolled_at"`
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	TTL      time.Duration // How long the session should live
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int
}

// AppendInput adds rolls to a session, creating it when absent
type AppendInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	// TTL applies only when the session is created
	TTL time.Duration
}

// AppendOutput holds the session after the append
type AppendOutput struct {
	Session *DiceSession
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a new dice session with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dice session by entity ID and context
	// Returns errors.NotFound when missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing dice session, keeping its expiry
	Update(ctx context.Context, session *DiceSession) error

	// Append adds rolls to a session atomically, trimming the oldest rolls
	// beyond the repository's limit
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)
}
