package check

import (
	"log/slog"

	"github.com/KirkDiggler/paranormal-api/internal/engine/dice"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
)

// AttackInput describes one attack with a carried weapon
type AttackInput struct {
	AttributeValue int
	Training       paranormal.TrainingLevel
	Weapon         paranormal.WeaponStats
	Modifications  []paranormal.Modification
	// ExtraBonus is a situational bonus chosen by the player or game master
	ExtraBonus int
}

// AttackResult is the test plus the optional damage roll
type AttackResult struct {
	Test        AttributeTestResult `json:"test"`
	AttackBonus int                 `json:"attack_bonus"`
	// ThreatRange is the adjusted lowest threatening face, informational only
	ThreatRange   int  `json:"threat_range"`
	InThreatRange bool `json:"in_threat_range"`
	// DamageFormula is the weapon formula with damage effects folded in
	DamageFormula string `json:"damage_formula"`
	// Damage is nil when the weapon formula does not parse
	Damage *dice.RollOutcome `json:"damage,omitempty"`
}

// AttackBonus is the training bonus plus every attack effect and the extra bonus
func AttackBonus(in AttackInput) int {
	return in.Training.Bonus() + sumEffects(in.Modifications, paranormal.EffectAttack) + in.ExtraBonus
}

// ThreatRange lowers the weapon threat by every threat effect, floored at 2
func ThreatRange(weapon paranormal.WeaponStats, mods []paranormal.Modification) int {
	threat := weapon.Threat
	if threat == 0 {
		threat = DefaultThreat
	}
	threat -= sumEffects(mods, paranormal.EffectThreat)
	if threat < MinThreat {
		return MinThreat
	}
	if threat > DefaultThreat {
		return DefaultThreat
	}
	return threat
}

// DamageRequest folds damage effects into the weapon formula. ok is false when
// the formula is not rollable.
func DamageRequest(weapon paranormal.WeaponStats, mods []paranormal.Modification) (dice.RollRequest, bool) {
	req, ok := dice.Parse(weapon.Damage)
	if !ok {
		return dice.RollRequest{}, false
	}
	return req.WithModifier(sumEffects(mods, paranormal.EffectDamage)), true
}

// Attack rolls the attack test and, when the weapon formula parses, its damage
func (e *Evaluator) Attack(in AttackInput) (AttackResult, error) {
	bonus := AttackBonus(in)
	test, err := e.Test(in.AttributeValue, bonus)
	if err != nil {
		return AttackResult{}, err
	}

	threat := ThreatRange(in.Weapon, in.Modifications)
	result := AttackResult{
		Test:          test,
		AttackBonus:   bonus,
		ThreatRange:   threat,
		InThreatRange: test.Die >= threat,
		DamageFormula: in.Weapon.Damage,
	}

	req, ok := DamageRequest(in.Weapon, in.Modifications)
	if !ok {
		slog.Debug("attack without damage roll", "formula", in.Weapon.Damage)
		return result, nil
	}

	damage, err := e.dice.Evaluate(req)
	if err != nil {
		return AttackResult{}, err
	}
	result.DamageFormula = req.String()
	result.Damage = &damage

	return result, nil
}

func sumEffects(mods []paranormal.Modification, kind paranormal.EffectKind) int {
	total := 0
	for _, m := range mods {
		total += m.Total(kind)
	}
	return total
}
