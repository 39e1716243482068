package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

var notationRegex = regexp.MustCompile(`^(\d+)[dD](\d+)(?:([+-])(\d+))?$`)

// DieSpec is a quantity of same-sided dice
type DieSpec struct {
	Quantity int `json:"quantity"`
	Sides    int `json:"sides"`
}

// Validate enforces 1 <= quantity <= MaxQuantity and MinSides <= sides <= MaxSides
func (d DieSpec) Validate() error {
	if d.Quantity < 1 || d.Quantity > MaxQuantity || d.Sides < MinSides || d.Sides > MaxSides {
		return errors.InvalidDieSpec(d.Quantity, d.Sides)
	}
	return nil
}

// RollRequest is a set of dice plus a flat modifier
type RollRequest struct {
	Dice     DieSpec `json:"dice"`
	Modifier int     `json:"modifier"`
}

// NewRollRequest builds a request from its parts
func NewRollRequest(quantity, sides, modifier int) RollRequest {
	return RollRequest{Dice: DieSpec{Quantity: quantity, Sides: sides}, Modifier: modifier}
}

// String renders canonical notation: 3d8, 2d6+3, 1d20-1
func (r RollRequest) String() string {
	switch {
	case r.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", r.Dice.Quantity, r.Dice.Sides, r.Modifier)
	case r.Modifier < 0:
		return fmt.Sprintf("%dd%d-%d", r.Dice.Quantity, r.Dice.Sides, -r.Modifier)
	default:
		return fmt.Sprintf("%dd%d", r.Dice.Quantity, r.Dice.Sides)
	}
}

// Validate checks the dice and keeps the modifier within MaxModifier
func (r RollRequest) Validate() error {
	if err := r.Dice.Validate(); err != nil {
		return err
	}
	if r.Modifier < -MaxModifier || r.Modifier > MaxModifier {
		return errors.InvalidArgumentf("modifier %d outside [-%d, %d]", r.Modifier, MaxModifier, MaxModifier)
	}
	return nil
}

// WithModifier returns a copy with delta added to the modifier
func (r RollRequest) WithModifier(delta int) RollRequest {
	r.Modifier += delta
	return r
}

// Parse reads QdS, QdS+M or QdS-M. Surrounding whitespace is ignored and the
// separator may be d or D. It returns false for anything else, including specs
// that could never be rolled (0d6, 1d1, 1000d6) and numbers too large for an int.
func Parse(text string) (RollRequest, bool) {
	matches := notationRegex.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return RollRequest{}, false
	}

	quantity, err := strconv.Atoi(matches[1])
	if err != nil {
		return RollRequest{}, false
	}
	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return RollRequest{}, false
	}

	modifier := 0
	if matches[4] != "" {
		modifier, err = strconv.Atoi(matches[4])
		if err != nil {
			return RollRequest{}, false
		}
		if matches[3] == "-" {
			modifier = -modifier
		}
	}

	req := NewRollRequest(quantity, sides, modifier)
	if req.Validate() != nil {
		return RollRequest{}, false
	}
	return req, true
}

// MustParse is Parse for notation known at compile time
func MustParse(text string) RollRequest {
	req, ok := Parse(text)
	if !ok {
		panic(fmt.Sprintf("dice: invalid notation %q", text))
	}
	return req
}

// ParseError explains a failed Parse at a transport edge
func ParseError(text string) error {
	return errors.FormulaParseFailure(text)
}
