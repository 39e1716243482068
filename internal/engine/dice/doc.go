// Package dice rolls the game's dice: a validated primitive over an entropy
// source, a QdS±M notation parser, and an evaluator that sums faces and applies
// a flat modifier.
//
// The parser never fails loudly. Parse reports success with a bool so callers
// can treat an unparsable formula (a placeholder damage string on an item, say)
// as "no roll performed":
//
//	req, ok := dice.Parse(weapon.Damage)
//	if !ok {
//	    return nil // nothing to roll
//	}
//	outcome, err := evaluator.Evaluate(req)
package dice
