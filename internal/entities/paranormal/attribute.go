package paranormal

import (
	"strings"
)

// Attribute is one of the five character attributes
type Attribute string

// Attribute keys use the sheet abbreviations
const (
	Strength  Attribute = "FOR"
	Agility   Attribute = "AGI"
	Intellect Attribute = "INT"
	Presence  Attribute = "PRE"
	Vigor     Attribute = "VIG"
)

// Attributes lists every attribute in sheet order
var Attributes = []Attribute{Strength, Agility, Intellect, Presence, Vigor}

var attributeAliases = map[string]Attribute{
	"for":       Strength,
	"forca":     Strength,
	"força":     Strength,
	"strength":  Strength,
	"agi":       Agility,
	"agilidade": Agility,
	"agility":   Agility,
	"int":       Intellect,
	"intelecto": Intellect,
	"intellect": Intellect,
	"pre":       Presence,
	"presenca":  Presence,
	"presença":  Presence,
	"presence":  Presence,
	"vig":       Vigor,
	"vigor":     Vigor,
}

// ParseAttribute accepts abbreviations and full names in Portuguese or English
func ParseAttribute(raw string) (Attribute, bool) {
	attr, ok := attributeAliases[strings.ToLower(strings.TrimSpace(raw))]
	return attr, ok
}

// Creation limits for point-buy
const (
	MinCreationAttribute = 1
	MaxCreationAttribute = 5
	CreationPoints       = 5
)

// AttributeSet maps every attribute to its value
type AttributeSet map[Attribute]int

// NewAttributeSet builds a set in sheet order
func NewAttributeSet(strength, agility, intellect, presence, vigor int) AttributeSet {
	return AttributeSet{
		Strength:  strength,
		Agility:   agility,
		Intellect: intellect,
		Presence:  presence,
		Vigor:     vigor,
	}
}

// BaseAttributeSet is the point-buy starting point with every attribute at 1
func BaseAttributeSet() AttributeSet {
	return NewAttributeSet(1, 1, 1, 1, 1)
}

// Get returns the value of attr, 0 when unset
func (a AttributeSet) Get(attr Attribute) int {
	return a[attr]
}

// Sum totals every attribute
func (a AttributeSet) Sum() int {
	total := 0
	for _, attr := range Attributes {
		total += a[attr]
	}
	return total
}

// Clone copies the set
func (a AttributeSet) Clone() AttributeSet {
	if a == nil {
		return nil
	}
	out := make(AttributeSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
