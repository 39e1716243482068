package dice

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

// Bounds on a single roll. Anything outside them is an invalid die spec.
const (
	MinSides    = 2
	MaxSides    = 1000
	MaxQuantity = 100
	// MaxModifier bounds the flat modifier in absolute value
	MaxModifier = 1000
)

// Primitive draws uniformly distributed faces from a roller
type Primitive struct {
	roller toolkitdice.Roller
}

// NewPrimitive wraps roller. A nil roller uses the toolkit's crypto-backed default.
func NewPrimitive(roller toolkitdice.Roller) *Primitive {
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}
	return &Primitive{roller: roller}
}

// RollOne returns a single face in [1, sides]
func (p *Primitive) RollOne(sides int) (int, error) {
	if sides < MinSides || sides > MaxSides {
		return 0, errors.InvalidDieSpec(1, sides)
	}

	face, err := p.roller.Roll(sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", sides)
	}
	if face < 1 || face > sides {
		return 0, errors.Internalf("roller produced %d for d%d", face, sides)
	}
	return face, nil
}

// RollMany returns quantity independent faces, each in [1, sides], in draw order
func (p *Primitive) RollMany(quantity, sides int) ([]int, error) {
	if err := (DieSpec{Quantity: quantity, Sides: sides}).Validate(); err != nil {
		return nil, err
	}

	faces, err := p.roller.RollN(quantity, sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", quantity, sides)
	}
	if len(faces) != quantity {
		return nil, errors.Internalf("roller returned %d faces for %dd%d", len(faces), quantity, sides)
	}
	for _, face := range faces {
		if face < 1 || face > sides {
			return nil, errors.Internalf("roller produced %d for d%d", face, sides)
		}
	}
	return faces, nil
}
