package paranormal

import (
	"strings"
)

// Archetype is the character's trilha. Values outside the known set are kept
// verbatim so that old records survive a round trip.
type Archetype string

// Known archetypes
const (
	Combatant  Archetype = "Combatente"
	Specialist Archetype = "Especialista"
	Occultist  Archetype = "Ocultista"
)

// Archetypes lists the closed set
var Archetypes = []Archetype{Combatant, Specialist, Occultist}

// ParseArchetype maps Portuguese labels and English names, case-insensitively,
// to a known archetype. Anything else is returned trimmed but otherwise verbatim.
func ParseArchetype(raw string) Archetype {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "combatente", "combatant":
		return Combatant
	case "especialista", "specialist":
		return Specialist
	case "ocultista", "occultist":
		return Occultist
	default:
		return Archetype(trimmed)
	}
}

// Known reports whether a is in the closed set
func (a Archetype) Known() bool {
	switch a {
	case Combatant, Specialist, Occultist:
		return true
	default:
		return false
	}
}

// String returns the label
func (a Archetype) String() string {
	return string(a)
}
