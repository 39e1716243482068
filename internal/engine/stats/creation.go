package stats

import (
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

// Mandatory Occultist skills
const (
	SkillOccultism = "Ocultismo"
	SkillWill      = "Vontade"
)

// Combatant skill choices
const (
	SkillFight     = "Luta"
	SkillAim       = "Pontaria"
	SkillFortitude = "Fortitude"
	SkillReflexes  = "Reflexos"
)

// Capacity by rank
const (
	CapacityRecruit  = 10
	CapacityOperator = 15
	CapacityDefault  = 20
)

// SkillAllowance is how many skills a new character picks freely: the
// archetype base plus Intellect
func SkillAllowance(archetype paranormal.Archetype, intellect int) (int, error) {
	row, ok := archetypeTable[archetype]
	if !ok {
		return 0, errors.UnknownArchetype(string(archetype))
	}
	allowance := row.skillBase + intellect
	if allowance < 0 {
		return 0, nil
	}
	return allowance, nil
}

// MandatorySkills are granted as trained at creation, outside the allowance
func MandatorySkills(archetype paranormal.Archetype) []string {
	if archetype == paranormal.Occultist {
		return []string{SkillOccultism, SkillWill}
	}
	return nil
}

// RequiredChoices are skill groups of which a new character trains exactly
// one. The pick counts against the allowance.
func RequiredChoices(archetype paranormal.Archetype) [][]string {
	if archetype == paranormal.Combatant {
		return [][]string{
			{SkillFight, SkillAim},
			{SkillFortitude, SkillReflexes},
		}
	}
	return nil
}

// CapacityForRank is the inventory space budget of a rank
func CapacityForRank(rank string) int {
	switch rank {
	case paranormal.RankRecruit:
		return CapacityRecruit
	case paranormal.RankOperator:
		return CapacityOperator
	default:
		return CapacityDefault
	}
}

// ValidatePointBuy checks every attribute is in [1, 5] and exactly the five
// creation points were spent on top of the base set
func ValidatePointBuy(attrs paranormal.AttributeSet) error {
	vb := errors.NewValidationBuilder()

	for _, attr := range paranormal.Attributes {
		value, ok := attrs[attr]
		if !ok {
			vb.RequiredField("attributes." + string(attr))
			continue
		}
		errors.ValidateRange("attributes."+string(attr), value, paranormal.MinCreationAttribute, paranormal.MaxCreationAttribute, vb)
	}
	for attr := range attrs {
		if _, ok := paranormal.ParseAttribute(string(attr)); !ok {
			vb.InvalidField("attributes."+string(attr), "unknown attribute")
		}
	}

	expected := paranormal.BaseAttributeSet().Sum() + paranormal.CreationPoints
	if sum := attrs.Sum(); sum != expected {
		vb.Fieldf("attributes", "must spend exactly %d points (total %d), got total %d", paranormal.CreationPoints, expected, sum)
	}

	return vb.Build()
}
