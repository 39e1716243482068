package v1alpha1

// DiceRoll is one recorded roll
type DiceRoll struct {
	RollId      string  `json:"roll_id"`
	Kind        string  `json:"kind"`
	Notation    string  `json:"notation"`
	Dice        []int32 `json:"dice"`
	Modifier    int32   `json:"modifier"`
	Total       int32   `json:"total"`
	Description string  `json:"description,omitempty"`
	IsCritical  bool    `json:"is_critical,omitempty"`
	IsFumble    bool    `json:"is_fumble,omitempty"`
	RolledAt    int64   `json:"rolled_at"`
}

// TestResult is a d20 test
type TestResult struct {
	Die            int32 `json:"die"`
	AttributeValue int32 `json:"attribute_value"`
	Bonus          int32 `json:"bonus"`
	Total          int32 `json:"total"`
	IsCritical     bool  `json:"is_critical"`
	IsFumble       bool  `json:"is_fumble"`
}

// RollSession is the recent roll history of an entity in a context
type RollSession struct {
	EntityId  string      `json:"entity_id"`
	Context   string      `json:"context"`
	Rolls     []*DiceRoll `json:"rolls"`
	CreatedAt int64       `json:"created_at"`
	ExpiresAt int64       `json:"expires_at"`
}

// RollDiceRequest rolls a notation such as "2d6+3"
type RollDiceRequest struct {
	EntityId    string `json:"entity_id"`
	Context     string `json:"context,omitempty"`
	Notation    string `json:"notation"`
	Description string `json:"description,omitempty"`
}

// RollDiceResponse returns the roll and the session it joined
type RollDiceResponse struct {
	Roll    *DiceRoll    `json:"roll"`
	Session *RollSession `json:"session"`
}

// RollCustomRequest rolls dice built from parts
type RollCustomRequest struct {
	EntityId    string `json:"entity_id"`
	Context     string `json:"context,omitempty"`
	Quantity    int32  `json:"quantity"`
	Sides       int32  `json:"sides"`
	Modifier    int32  `json:"modifier,omitempty"`
	Description string `json:"description,omitempty"`
}

// RollCustomResponse returns the roll and the session it joined
type RollCustomResponse struct {
	Roll    *DiceRoll    `json:"roll"`
	Session *RollSession `json:"session"`
}

// RollAttributeRequest makes an attribute test for a character
type RollAttributeRequest struct {
	CharacterId string `json:"character_id"`
	Context     string `json:"context,omitempty"`
	Attribute   string `json:"attribute"`
	Bonus       int32  `json:"bonus,omitempty"`
}

// RollAttributeResponse returns the test
type RollAttributeResponse struct {
	Test    *TestResult  `json:"test"`
	Roll    *DiceRoll    `json:"roll"`
	Session *RollSession `json:"session"`
}

// RollSkillRequest makes a skill test. Attribute overrides the skill's own.
type RollSkillRequest struct {
	CharacterId string `json:"character_id"`
	Context     string `json:"context,omitempty"`
	Skill       string `json:"skill"`
	Attribute   string `json:"attribute,omitempty"`
	Bonus       int32  `json:"bonus,omitempty"`
}

// RollSkillResponse returns the test
type RollSkillResponse struct {
	Test      *TestResult  `json:"test"`
	Skill     string       `json:"skill"`
	Attribute string       `json:"attribute"`
	Level     string       `json:"level"`
	Roll      *DiceRoll    `json:"roll"`
	Session   *RollSession `json:"session"`
}

// RollAttackRequest attacks with a carried or catalog weapon
type RollAttackRequest struct {
	CharacterId string `json:"character_id"`
	Context     string `json:"context,omitempty"`
	Weapon      string `json:"weapon"`
	Bonus       int32  `json:"bonus,omitempty"`
}

// RollAttackResponse returns the attack test and, when the weapon's damage
// is rollable, the damage roll
type RollAttackResponse struct {
	Test          *TestResult  `json:"test"`
	Weapon        string       `json:"weapon"`
	Skill         string       `json:"skill"`
	AttackBonus   int32        `json:"attack_bonus"`
	ThreatRange   int32        `json:"threat_range"`
	InThreatRange bool         `json:"in_threat_range"`
	DamageFormula string       `json:"damage_formula"`
	Damage        *DiceRoll    `json:"damage,omitempty"`
	Rolls         []*DiceRoll  `json:"rolls"`
	Session       *RollSession `json:"session"`
}

// GetRollSessionRequest fetches a roll session
type GetRollSessionRequest struct {
	EntityId string `json:"entity_id"`
	Context  string `json:"context,omitempty"`
}

// GetRollSessionResponse returns the session
type GetRollSessionResponse struct {
	Session *RollSession `json:"session"`
}

// ClearRollSessionRequest removes a roll session
type ClearRollSessionRequest struct {
	EntityId string `json:"entity_id"`
	Context  string `json:"context,omitempty"`
}

// ClearRollSessionResponse reports how many rolls were dropped
type ClearRollSessionResponse struct {
	Message      string `json:"message"`
	RollsCleared int32  `json:"rolls_cleared"`
}
