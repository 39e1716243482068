package dice

import (
	"github.com/KirkDiggler/paranormal-api/internal/engine/check"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	dicesession "github.com/KirkDiggler/paranormal-api/internal/repositories/dice_session"
)

// RollDiceInput defines the request for rolling a notation such as 2d6+3
type RollDiceInput struct {
	EntityID    string
	Context     string // Optional, defaults to "sheet"
	Notation    string
	Description string
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// RollCustomInput defines the request for rolling dice built from parts
type RollCustomInput struct {
	EntityID    string
	Context     string
	Quantity    int
	Sides       int
	Modifier    int
	Description string
}

// RollCustomOutput defines the response for a custom roll
type RollCustomOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// RollAttributeInput defines the request for an attribute test
type RollAttributeInput struct {
	CharacterID string
	Context     string
	Attribute   string
	// Bonus is a situational modifier
	Bonus int
}

// RollAttributeOutput defines the response for an attribute test
type RollAttributeOutput struct {
	Test    check.AttributeTestResult
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// RollSkillInput defines the request for a skill test
type RollSkillInput struct {
	CharacterID string
	Context     string
	Skill       string
	// Attribute overrides the skill's catalog attribute
	Attribute string
	Bonus     int
}

// RollSkillOutput defines the response for a skill test
type RollSkillOutput struct {
	Test      check.AttributeTestResult
	Skill     string
	Attribute paranormal.Attribute
	Level     paranormal.TrainingLevel
	Roll      *dicesession.DiceRoll
	Session   *dicesession.DiceSession
}

// RollAttackInput defines the request for an attack. The weapon is looked up
// in the character's inventory first, then in the weapons catalog.
type RollAttackInput struct {
	CharacterID string
	Context     string
	Weapon      string
	Bonus       int
}

// RollAttackOutput defines the response for an attack
type RollAttackOutput struct {
	Attack check.AttackResult
	Weapon string
	Skill  string
	// Rolls holds the attack roll and, when damage was rolled, the damage roll
	Rolls   []dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int
}
