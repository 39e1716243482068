package dice

import (
	"log/slog"

	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

// RollOutcome is the immutable record of an evaluated roll
type RollOutcome struct {
	Notation string `json:"notation"`
	Results  []int  `json:"results"`
	Modifier int    `json:"modifier"`
	Total    int    `json:"total"`
}

// Sum is the total of the faces without the modifier
func (o RollOutcome) Sum() int {
	sum := 0
	for _, r := range o.Results {
		sum += r
	}
	return sum
}

// Max returns the highest face, 0 when there are none
func (o RollOutcome) Max() int {
	highest := 0
	for _, r := range o.Results {
		if r > highest {
			highest = r
		}
	}
	return highest
}

// Min returns the lowest face, 0 when there are none
func (o RollOutcome) Min() int {
	if len(o.Results) == 0 {
		return 0
	}
	lowest := o.Results[0]
	for _, r := range o.Results[1:] {
		if r < lowest {
			lowest = r
		}
	}
	return lowest
}

// HasMaxFace reports whether any die showed its highest face
func (o RollOutcome) HasMaxFace(sides int) bool {
	for _, r := range o.Results {
		if r == sides {
			return true
		}
	}
	return false
}

// HasMinFace reports whether any die showed a 1
func (o RollOutcome) HasMinFace() bool {
	for _, r := range o.Results {
		if r == 1 {
			return true
		}
	}
	return false
}

// Verify checks Total == Sum() + Modifier
func (o RollOutcome) Verify() error {
	if o.Total != o.Sum()+o.Modifier {
		return errors.Internalf("roll total %d does not match faces %v %+d", o.Total, o.Results, o.Modifier)
	}
	return nil
}

// Evaluator executes roll requests
type Evaluator struct {
	primitive *Primitive
}

// NewEvaluator creates an evaluator drawing from primitive
func NewEvaluator(primitive *Primitive) *Evaluator {
	if primitive == nil {
		primitive = NewPrimitive(nil)
	}
	return &Evaluator{primitive: primitive}
}

// Primitive exposes the underlying primitive for single-die callers
func (e *Evaluator) Primitive() *Primitive {
	return e.primitive
}

// Evaluate draws the dice, sums them and applies the modifier
func (e *Evaluator) Evaluate(req RollRequest) (RollOutcome, error) {
	if err := req.Validate(); err != nil {
		return RollOutcome{}, err
	}

	faces, err := e.primitive.RollMany(req.Dice.Quantity, req.Dice.Sides)
	if err != nil {
		return RollOutcome{}, err
	}

	outcome := RollOutcome{
		Notation: req.String(),
		Results:  faces,
		Modifier: req.Modifier,
	}
	outcome.Total = outcome.Sum() + req.Modifier

	slog.Debug("dice evaluated",
		"notation", outcome.Notation,
		"results", outcome.Results,
		"modifier", outcome.Modifier,
		"total", outcome.Total,
	)

	return outcome, nil
}

// EvaluateFormula parses and evaluates notation. ok is false when the formula
// does not parse, in which case no dice are drawn.
func (e *Evaluator) EvaluateFormula(formula string) (outcome RollOutcome, ok bool, err error) {
	req, ok := Parse(formula)
	if !ok {
		return RollOutcome{}, false, nil
	}
	outcome, err = e.Evaluate(req)
	return outcome, true, err
}
