package paranormal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TrainingTier is a legacy named training grade
type TrainingTier string

// Legacy tiers
const (
	Trained TrainingTier = "treinado"
	Veteran TrainingTier = "veterano"
	Expert  TrainingTier = "expert"
)

// Numeric scale limits
const (
	MinTrainingLevel = 0
	MaxTrainingLevel = 5
	BonusPerLevel    = 5
	MaxTrainingBonus = MaxTrainingLevel * BonusPerLevel
)

var tierLevels = map[TrainingTier]int{
	Trained: 1,
	Veteran: 2,
	Expert:  3,
}

// ParseTrainingTier accepts the tier names case-insensitively, along with the
// English spellings
func ParseTrainingTier(raw string) (TrainingTier, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "treinado", "trained":
		return Trained, true
	case "veterano", "veteran":
		return Veteran, true
	case "expert":
		return Expert, true
	default:
		return "", false
	}
}

// TrainingLevel is either a legacy tier or a numeric level 0-5. Stored data
// contains both forms; each is written back the way it was read.
type TrainingLevel struct {
	tier  TrainingTier
	level int
}

// Legacy wraps a named tier
func Legacy(tier TrainingTier) TrainingLevel {
	return TrainingLevel{tier: tier}
}

// Numeric wraps a level, clamped to 0-5
func Numeric(level int) TrainingLevel {
	if level < MinTrainingLevel {
		level = MinTrainingLevel
	}
	if level > MaxTrainingLevel {
		level = MaxTrainingLevel
	}
	return TrainingLevel{level: level}
}

// IsLegacy reports whether t is a named tier
func (t TrainingLevel) IsLegacy() bool {
	return t.tier != ""
}

// Tier returns the named tier, empty for numeric levels
func (t TrainingLevel) Tier() TrainingTier {
	return t.tier
}

// Level returns the numeric level; legacy tiers map to 1, 2 and 3
func (t TrainingLevel) Level() int {
	if t.IsLegacy() {
		return tierLevels[t.tier]
	}
	return t.level
}

// Bonus is the flat test bonus: 5/10/15 for legacy tiers, level x 5 capped at
// 25 for numeric levels
func (t TrainingLevel) Bonus() int {
	bonus := t.Level() * BonusPerLevel
	if bonus > MaxTrainingBonus {
		return MaxTrainingBonus
	}
	return bonus
}

// Raise moves one level up the numeric scale, saturating at 5
func (t TrainingLevel) Raise() TrainingLevel {
	return Numeric(t.Level() + 1)
}

// Lower moves one level down the numeric scale, saturating at 0
func (t TrainingLevel) Lower() TrainingLevel {
	return Numeric(t.Level() - 1)
}

// String renders the tier name or the numeric level
func (t TrainingLevel) String() string {
	if t.IsLegacy() {
		return string(t.tier)
	}
	return strconv.Itoa(t.level)
}

// MarshalJSON writes legacy tiers as strings and numeric levels as numbers
func (t TrainingLevel) MarshalJSON() ([]byte, error) {
	if t.IsLegacy() {
		return json.Marshal(string(t.tier))
	}
	return json.Marshal(t.level)
}

// UnmarshalJSON reads either a tier string, a numeric string or a number
func (t *TrainingLevel) UnmarshalJSON(data []byte) error {
	var level int
	if err := json.Unmarshal(data, &level); err == nil {
		*t = Numeric(level)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("training level must be a tier name or a number: %s", string(data))
	}

	parsed, err := ParseTrainingLevel(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTrainingLevel reads a tier name or a decimal level
func ParseTrainingLevel(raw string) (TrainingLevel, error) {
	if tier, ok := ParseTrainingTier(raw); ok {
		return Legacy(tier), nil
	}

	if level, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		if level < MinTrainingLevel || level > MaxTrainingLevel {
			return TrainingLevel{}, fmt.Errorf("training level %d outside %d-%d", level, MinTrainingLevel, MaxTrainingLevel)
		}
		return Numeric(level), nil
	}

	return TrainingLevel{}, fmt.Errorf("unknown training level %q", raw)
}
