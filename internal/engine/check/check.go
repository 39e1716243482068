// Package check resolves d20 tests: attribute and skill tests, and attacks with
// their damage rolls.
//
// Critical and fumble are decided by the die face alone. A weapon's threat range
// is reported next to the test (InThreatRange) but never changes IsCritical; the
// two rules disagree in the game as played and are kept apart here on purpose
// until the rule is settled.
package check

import (
	"log/slog"

	"github.com/KirkDiggler/paranormal-api/internal/engine/dice"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
)

// Test die and classification faces
const (
	TestDie      = 20
	CriticalFace = 20
	FumbleFace   = 1

	// DefaultThreat is the threat range of a weapon that declares none
	DefaultThreat = 20
	// MinThreat is the floor for a threat range widened by modifications
	MinThreat = 2
)

// AttributeTestResult is a single d20 test
type AttributeTestResult struct {
	Die            int  `json:"die"`
	AttributeValue int  `json:"attribute_value"`
	Bonus          int  `json:"bonus"`
	Total          int  `json:"total"`
	IsCritical     bool `json:"is_critical"`
	IsFumble       bool `json:"is_fumble"`
}

// RollTest classifies a d20 face and totals it with the attribute and bonus
func RollTest(die, attributeValue, bonus int) AttributeTestResult {
	return AttributeTestResult{
		Die:            die,
		AttributeValue: attributeValue,
		Bonus:          bonus,
		Total:          die + attributeValue + bonus,
		IsCritical:     die == CriticalFace,
		IsFumble:       die == FumbleFace,
	}
}

// Evaluator draws d20s and damage dice
type Evaluator struct {
	dice *dice.Evaluator
}

// NewEvaluator creates a test evaluator over a dice evaluator
func NewEvaluator(evaluator *dice.Evaluator) *Evaluator {
	if evaluator == nil {
		evaluator = dice.NewEvaluator(nil)
	}
	return &Evaluator{dice: evaluator}
}

// Test rolls one d20 plus attributeValue plus bonus
func (e *Evaluator) Test(attributeValue, bonus int) (AttributeTestResult, error) {
	die, err := e.dice.Primitive().RollOne(TestDie)
	if err != nil {
		return AttributeTestResult{}, err
	}

	result := RollTest(die, attributeValue, bonus)

	slog.Debug("test rolled",
		"die", result.Die,
		"attribute", attributeValue,
		"bonus", bonus,
		"total", result.Total,
		"critical", result.IsCritical,
		"fumble", result.IsFumble,
	)

	return result, nil
}

// SkillTest adds the training bonus of level and any extra flat bonus
func (e *Evaluator) SkillTest(attributeValue int, level paranormal.TrainingLevel, extra int) (AttributeTestResult, error) {
	return e.Test(attributeValue, level.Bonus()+extra)
}
