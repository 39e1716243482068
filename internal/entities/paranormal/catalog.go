package paranormal

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/paranormal-api/internal/engine/dice"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

// CatalogKind names a reference table
type CatalogKind string

// Reference tables
const (
	KindSkills        CatalogKind = "skills"
	KindWeapons       CatalogKind = "weapons"
	KindRituals       CatalogKind = "rituals"
	KindEquipment     CatalogKind = "equipment"
	KindProtections   CatalogKind = "protections"
	KindAmmunition    CatalogKind = "ammunition"
	KindModifications CatalogKind = "modifications"
	KindOrigins       CatalogKind = "origins"
)

// CatalogKinds lists every reference table
var CatalogKinds = []CatalogKind{
	KindSkills, KindWeapons, KindRituals, KindEquipment,
	KindProtections, KindAmmunition, KindModifications, KindOrigins,
}

// ParseCatalogKind accepts a kind name case-insensitively
func ParseCatalogKind(raw string) (CatalogKind, bool) {
	kind := CatalogKind(strings.ToLower(strings.TrimSpace(raw)))
	for _, k := range CatalogKinds {
		if k == kind {
			return k, true
		}
	}
	return "", false
}

// CatalogEntry is one row of a reference table
type CatalogEntry interface {
	EntryName() string
	Validate() error
}

// NewCatalogEntry returns an empty entry of kind, ready to unmarshal into
func NewCatalogEntry(kind CatalogKind) (CatalogEntry, error) {
	switch kind {
	case KindSkills:
		return &Skill{}, nil
	case KindWeapons:
		return &Weapon{}, nil
	case KindRituals:
		return &Ritual{}, nil
	case KindEquipment:
		return &Equipment{}, nil
	case KindProtections:
		return &Protection{}, nil
	case KindAmmunition:
		return &Ammunition{}, nil
	case KindModifications:
		return &ModificationDef{}, nil
	case KindOrigins:
		return &Origin{}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown catalog kind %q", kind)
	}
}

func validateName(name string, vb *errors.ValidationBuilder) {
	errors.ValidateRequired("name", name, vb)
}

// Skill is a perícia and the attribute it tests
type Skill struct {
	Name         string    `json:"name" yaml:"name"`
	Attribute    Attribute `json:"attribute" yaml:"attribute"`
	TrainedOnly  bool      `json:"trained_only,omitempty" yaml:"trained_only,omitempty"`
	ArmorPenalty bool      `json:"armor_penalty,omitempty" yaml:"armor_penalty,omitempty"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntryName implements CatalogEntry
func (s *Skill) EntryName() string { return s.Name }

// Validate requires a name and a known attribute
func (s *Skill) Validate() error {
	vb := errors.NewValidationBuilder()
	validateName(s.Name, vb)
	if _, ok := ParseAttribute(string(s.Attribute)); !ok {
		vb.Fieldf("attribute", "must be one of FOR, AGI, INT, PRE, VIG, got %q", s.Attribute)
	}
	return vb.Build()
}

// Weapon is an armas row
type Weapon struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Category    int    `json:"category,omitempty" yaml:"category,omitempty"`
	Proficiency string `json:"proficiency,omitempty" yaml:"proficiency,omitempty"`
	WeaponStats `yaml:",inline"`
	Range       string `json:"range,omitempty" yaml:"range,omitempty"`
	Space       int    `json:"space" yaml:"space"`
	Ammunition  string `json:"ammunition,omitempty" yaml:"ammunition,omitempty"`
	// Placeholder marks a damage string that is descriptive rather than rollable
	Placeholder bool   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntryName implements CatalogEntry
func (w *Weapon) EntryName() string { return w.Name }

// Validate requires a rollable damage formula unless the weapon is a placeholder
func (w *Weapon) Validate() error {
	vb := errors.NewValidationBuilder()
	validateName(w.Name, vb)
	if !w.Placeholder {
		if _, ok := dice.Parse(w.Damage); !ok {
			vb.Fieldf("damage", "must be dice notation like 1d8+2, got %q", w.Damage)
		}
	}
	if w.Threat != 0 && (w.Threat < 2 || w.Threat > 20) {
		vb.Fieldf("threat", "must be between 2 and 20, got %d", w.Threat)
	}
	errors.ValidateRange("space", w.Space, 0, 100, vb)
	return vb.Build()
}

// ItemStats projects the weapon onto inventory weapon stats
func (w *Weapon) ItemStats() *WeaponStats {
	stats := w.WeaponStats
	return &stats
}

// Ritual is a rituais row
type Ritual struct {
	Name        string `json:"name" yaml:"name"`
	Circle      int    `json:"circle" yaml:"circle"`
	Element     string `json:"element" yaml:"element"`
	Execution   string `json:"execution,omitempty" yaml:"execution,omitempty"`
	Range       string `json:"range,omitempty" yaml:"range,omitempty"`
	Target      string `json:"target,omitempty" yaml:"target,omitempty"`
	Duration    string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Resistance  string `json:"resistance,omitempty" yaml:"resistance,omitempty"`
	Cost        int    `json:"cost" yaml:"cost"`
	Damage      string `json:"damage,omitempty" yaml:"damage,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntryName implements CatalogEntry
func (r *Ritual) EntryName() string { return r.Name }

// Validate checks circle, cost and any damage formula
func (r *Ritual) Validate() error {
	vb := errors.NewValidationBuilder()
	validateName(r.Name, vb)
	errors.ValidateRange("circle", r.Circle, 1, 4, vb)
	errors.ValidateMin("cost", r.Cost, 0, vb)
	if r.Damage != "" {
		if _, ok := dice.Parse(r.Damage); !ok {
			vb.Fieldf("damage", "must be dice notation like 3d6, got %q", r.Damage)
		}
	}
	return vb.Build()
}

// Equipment is a general equipamentos row
type Equipment struct {
	Name        string `json:"name" yaml:"name"`
	Category    int    `json:"category,omitempty" yaml:"category,omitempty"`
	Space       int    `json:"space" yaml:"space"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntryName implements CatalogEntry
func (e *Equipment) EntryName() string { return e.Name }

// Validate requires a name and a non-negative space
func (e *Equipment) Validate() error {
	vb := errors.NewValidationBuilder()
	validateName(e.Name, vb)
	errors.ValidateMin("space", e.Space, 0, vb)
	return vb.Build()
}

// Protection is a protecoes row
type Protection struct {
	Name        string `json:"name" yaml:"name"`
	Category    int    `json:"category,omitempty" yaml:"category,omitempty"`
	Defense     int    `json:"defense" yaml:"defense"`
	Space       int    `json:"space" yaml:"space"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntryName implements CatalogEntry
func (p *Protection) EntryName() string { return p.Name }

// Validate requires a name and non-negative numbers
func (p *Protection) Validate() error {
	vb := errors.NewValidationBuilder()
	validateName(p.Name, vb)
	errors.ValidateMin("defense", p.Defense, 0, vb)
	errors.ValidateMin("space", p.Space, 0, vb)
	return vb.Build()
}

// Ammunition is a municoes row
type Ammunition struct {
	Name        string `json:"name" yaml:"name"`
	Category    int    `json:"category,omitempty" yaml:"category,omitempty"`
	Space       int    `json:"space" yaml:"space"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntryName implements CatalogEntry
func (a *Ammunition) EntryName() string { return a.Name }

// Validate requires a name and a non-negative space
func (a *Ammunition) Validate() error {
	vb := errors.NewValidationBuilder()
	validateName(a.Name, vb)
	errors.ValidateMin("space", a.Space, 0, vb)
	return vb.Build()
}

// ModificationDef is a catalog modification that can be applied to items
type ModificationDef struct {
	Name        string   `json:"name" yaml:"name"`
	AppliesTo   string   `json:"applies_to,omitempty" yaml:"applies_to,omitempty"`
	Category    int      `json:"category,omitempty" yaml:"category,omitempty"`
	Effects     []Effect `json:"effects,omitempty" yaml:"effects,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntryName implements CatalogEntry
func (m *ModificationDef) EntryName() string { return m.Name }

// MaxEffectValue bounds a single effect value in absolute value
const MaxEffectValue = 20

// Validate checks every effect kind and value
func (m *ModificationDef) Validate() error {
	vb := errors.NewValidationBuilder()
	validateName(m.Name, vb)
	for i, e := range m.Effects {
		if !e.Kind.Known() {
			vb.Fieldf(fmt.Sprintf("effects[%d].kind", i), "must be one of space, attack, damage, threat, got %q", e.Kind)
		}
		errors.ValidateRange(fmt.Sprintf("effects[%d].value", i), e.Value, -MaxEffectValue, MaxEffectValue, vb)
	}
	return vb.Build()
}

// Modification projects the definition onto an item modification
func (m *ModificationDef) Modification() Modification {
	return Modification{Name: m.Name, Effects: append([]Effect(nil), m.Effects...)}
}

// Origin is an origens row; Skills are granted as trained at creation
type Origin struct {
	Name        string   `json:"name" yaml:"name"`
	Skills      []string `json:"skills" yaml:"skills"`
	Power       string   `json:"power,omitempty" yaml:"power,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntryName implements CatalogEntry
func (o *Origin) EntryName() string { return o.Name }

// Validate requires a name
func (o *Origin) Validate() error {
	vb := errors.NewValidationBuilder()
	validateName(o.Name, vb)
	return vb.Build()
}
