package paranormal

// EffectKind names what a modification effect changes
type EffectKind string

// Effect kinds
const (
	// EffectSpace reduces the item's space cost per unit
	EffectSpace EffectKind = "space"
	// EffectAttack adds to attack tests made with the item
	EffectAttack EffectKind = "attack"
	// EffectDamage adds to the item's damage rolls
	EffectDamage EffectKind = "damage"
	// EffectThreat lowers the threat-range threshold
	EffectThreat EffectKind = "threat"
)

// Known reports whether k is a supported effect kind
func (k EffectKind) Known() bool {
	switch k {
	case EffectSpace, EffectAttack, EffectDamage, EffectThreat:
		return true
	default:
		return false
	}
}

// Effect is one numeric adjustment carried by a modification
type Effect struct {
	Kind  EffectKind `json:"kind" yaml:"kind"`
	Value int        `json:"value" yaml:"value"`
}

// Modification is an upgrade applied to an inventory item
type Modification struct {
	Name    string   `json:"name" yaml:"name"`
	Effects []Effect `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// Total sums the values of every effect of kind
func (m Modification) Total(kind EffectKind) int {
	total := 0
	for _, e := range m.Effects {
		if e.Kind == kind {
			total += e.Value
		}
	}
	return total
}

// WeaponStats are the combat numbers of a carried weapon
type WeaponStats struct {
	// Damage is dice notation; anything unparsable means no damage roll
	Damage string `json:"damage" yaml:"damage"`
	// Threat is the lowest natural die that threatens a critical, 20 when unset
	Threat int `json:"threat,omitempty" yaml:"threat,omitempty"`
	// Multiplier is the critical damage multiplier
	Multiplier int `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	// Skill is the skill used for attack tests (e.g. Luta, Pontaria)
	Skill string `json:"skill,omitempty" yaml:"skill,omitempty"`
	// Attribute overrides the skill's attribute for the attack test
	Attribute Attribute `json:"attribute,omitempty" yaml:"attribute,omitempty"`
}

// InventoryItem is a carried stack of one item
type InventoryItem struct {
	Name          string         `json:"name"`
	Category      string         `json:"category,omitempty"`
	SpaceCost     int            `json:"space"`
	Quantity      int            `json:"quantity"`
	Modifications []Modification `json:"modifications,omitempty"`
	Weapon        *WeaponStats   `json:"weapon,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

// EffectTotal sums effects of kind across every modification
func (i InventoryItem) EffectTotal(kind EffectKind) int {
	total := 0
	for _, m := range i.Modifications {
		total += m.Total(kind)
	}
	return total
}

// Clone deep-copies the item
func (i InventoryItem) Clone() InventoryItem {
	out := i
	if i.Modifications != nil {
		out.Modifications = make([]Modification, len(i.Modifications))
		for idx, m := range i.Modifications {
			out.Modifications[idx] = Modification{Name: m.Name}
			if m.Effects != nil {
				out.Modifications[idx].Effects = append([]Effect(nil), m.Effects...)
			}
		}
	}
	if i.Weapon != nil {
		w := *i.Weapon
		out.Weapon = &w
	}
	return out
}

// CloneItems deep-copies an inventory
func CloneItems(items []InventoryItem) []InventoryItem {
	if items == nil {
		return nil
	}
	out := make([]InventoryItem, len(items))
	for idx, item := range items {
		out[idx] = item.Clone()
	}
	return out
}
