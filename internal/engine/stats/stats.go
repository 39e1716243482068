// Package stats derives a character's pool maximums and combat numbers from
// attributes and archetype, along with the creation rules that depend on them.
package stats

import (
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

// Base defense and movement before Agility
const (
	BaseDefense  = 10
	BaseMovement = 9
)

// DerivedStats are recomputed whenever Vigor, Presence, Agility or the archetype change
type DerivedStats struct {
	HealthMax int `json:"health_max"`
	EffortMax int `json:"effort_max"`
	SanityMax int `json:"sanity_max"`
	Defense   int `json:"defense"`
	Movement  int `json:"movement"`
}

type archetypeRow struct {
	healthBase int
	effortBase int
	sanityMax  int
	skillBase  int
}

var archetypeTable = map[paranormal.Archetype]archetypeRow{
	paranormal.Combatant:  {healthBase: 20, effortBase: 2, sanityMax: 12, skillBase: 3},
	paranormal.Specialist: {healthBase: 16, effortBase: 3, sanityMax: 16, skillBase: 7},
	paranormal.Occultist:  {healthBase: 12, effortBase: 4, sanityMax: 20, skillBase: 3},
}

// Compute applies the archetype table. Archetypes outside the closed set fail
// with UnknownArchetype.
func Compute(attrs paranormal.AttributeSet, archetype paranormal.Archetype) (DerivedStats, error) {
	row, ok := archetypeTable[archetype]
	if !ok {
		return DerivedStats{}, errors.UnknownArchetype(string(archetype))
	}
	return derive(attrs, row), nil
}

// ComputeWithFallback treats unknown archetypes as Specialist, the way stored
// sheets have always been read, and reports fallback=true so callers can flag it.
func ComputeWithFallback(attrs paranormal.AttributeSet, archetype paranormal.Archetype) (DerivedStats, bool) {
	row, ok := archetypeTable[archetype]
	if !ok {
		return derive(attrs, archetypeTable[paranormal.Specialist]), true
	}
	return derive(attrs, row), false
}

func derive(attrs paranormal.AttributeSet, row archetypeRow) DerivedStats {
	agility := attrs.Get(paranormal.Agility)
	return DerivedStats{
		HealthMax: row.healthBase + attrs.Get(paranormal.Vigor),
		EffortMax: row.effortBase + attrs.Get(paranormal.Presence),
		SanityMax: row.sanityMax,
		Defense:   BaseDefense + agility,
		Movement:  BaseMovement + agility,
	}
}

// Apply writes the maximums and combat stats onto c and clamps the current
// pools. Current values are never raised.
func Apply(c *paranormal.Character, derived DerivedStats) {
	c.Health.Max = derived.HealthMax
	c.Sanity.Max = derived.SanityMax
	c.Effort.Max = derived.EffortMax
	c.Defense = derived.Defense
	c.Movement = derived.Movement
	ClampPools(c)
}

// ClampPools forces every current pool value into [0, max]
func ClampPools(c *paranormal.Character) {
	c.Health = c.Health.Clamp()
	c.Sanity = c.Sanity.Clamp()
	c.Effort = c.Effort.Clamp()
}

// FillPools sets every current value to its maximum, as at creation
func FillPools(c *paranormal.Character) {
	c.Health = paranormal.Full(c.Health.Max)
	c.Sanity = paranormal.Full(c.Sanity.Max)
	c.Effort = paranormal.Full(c.Effort.Max)
}
