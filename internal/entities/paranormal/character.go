package paranormal

import (
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCharacter is the core.Entity type of Character
const EntityTypeCharacter = "character"

// PoolKind names a resource pool
type PoolKind string

// Pools
const (
	PoolHealth PoolKind = "health"
	PoolSanity PoolKind = "sanity"
	PoolEffort PoolKind = "effort"
)

// Pool is a current/maximum pair such as PV, SAN or PE
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Full returns a pool at its maximum
func Full(max int) Pool {
	return Pool{Current: max, Max: max}
}

// Adjust adds delta to Current, clamped to [0, Max]
func (p Pool) Adjust(delta int) Pool {
	p = p.Clamp()
	switch {
	case delta > p.Max-p.Current:
		p.Current = p.Max
	case delta < -p.Current:
		p.Current = 0
	default:
		p.Current += delta
	}
	return p.Clamp()
}

// Clamp forces Current into [0, Max]
func (p Pool) Clamp() Pool {
	if p.Current > p.Max {
		p.Current = p.Max
	}
	if p.Current < 0 {
		p.Current = 0
	}
	return p
}

// Ranks (patentes)
const (
	RankRecruit           = "Recruta"
	RankOperator          = "Operador"
	RankSpecialAgent      = "Agente Especial"
	RankOperationsOfficer = "Oficial de Operações"
	RankEliteAgent        = "Agente de Elite"
)

// Ranks lists the ranks in promotion order
var Ranks = []string{RankRecruit, RankOperator, RankSpecialAgent, RankOperationsOfficer, RankEliteAgent}

// ParseRank matches a rank name case-insensitively
func ParseRank(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, rank := range Ranks {
		if strings.EqualFold(rank, trimmed) {
			return rank, true
		}
	}
	return "", false
}

// PersonalDetails are free-form biography fields
type PersonalDetails struct {
	Age      string `json:"age,omitempty"`
	Birthday string `json:"birthday,omitempty"`
	Hometown string `json:"hometown,omitempty"`
	Weight   string `json:"weight,omitempty"`
}

// Character is the canonical character record
type Character struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	Name      string    `json:"name"`
	Origin    string    `json:"origin,omitempty"`
	Archetype Archetype `json:"archetype"`
	Class     string    `json:"class,omitempty"`
	Rank      string    `json:"rank"`
	NEX       int       `json:"nex"`
	Prestige  int       `json:"prestige"`

	Attributes AttributeSet             `json:"attributes"`
	Skills     map[string]TrainingLevel `json:"skills"`

	Health   Pool `json:"health"`
	Sanity   Pool `json:"sanity"`
	Effort   Pool `json:"effort"`
	Defense  int  `json:"defense"`
	Movement int  `json:"movement"`

	Inventory []InventoryItem `json:"inventory"`
	Capacity  int             `json:"capacity"`

	Rituals        []string `json:"rituals,omitempty"`
	OriginPowers   []string `json:"origin_powers,omitempty"`
	ClassAbilities []string `json:"class_abilities,omitempty"`

	Description string          `json:"description,omitempty"`
	Backstory   string          `json:"backstory,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Details     PersonalDetails `json:"details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var _ core.Entity = (*Character)(nil)

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// Pool returns a pointer to the named pool
func (c *Character) Pool(kind PoolKind) (*Pool, bool) {
	switch kind {
	case PoolHealth:
		return &c.Health, true
	case PoolSanity:
		return &c.Sanity, true
	case PoolEffort:
		return &c.Effort, true
	default:
		return nil, false
	}
}

// Training returns the skill's training level, untrained when absent
func (c *Character) Training(skill string) TrainingLevel {
	if level, ok := c.Skills[skill]; ok {
		return level
	}
	return Numeric(0)
}

// Clone deep-copies the character
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Attributes = c.Attributes.Clone()
	if c.Skills != nil {
		out.Skills = make(map[string]TrainingLevel, len(c.Skills))
		for k, v := range c.Skills {
			out.Skills[k] = v
		}
	}
	out.Inventory = CloneItems(c.Inventory)
	out.Rituals = cloneStrings(c.Rituals)
	out.OriginPowers = cloneStrings(c.OriginPowers)
	out.ClassAbilities = cloneStrings(c.ClassAbilities)
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
