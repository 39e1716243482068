package v1alpha1

import (
	"time"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/paranormal-api/internal/engine/inventory"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

func convertCharacterToProto(char *paranormal.Character) *apiv1alpha1.Character {
	if char == nil {
		return nil
	}

	attributes := make(map[string]int32, len(char.Attributes))
	for attr, value := range char.Attributes {
		attributes[string(attr)] = int32(value)
	}

	var skills map[string]string
	if len(char.Skills) > 0 {
		skills = make(map[string]string, len(char.Skills))
		for name, level := range char.Skills {
			skills[name] = level.String()
		}
	}

	items := make([]*apiv1alpha1.InventoryItem, 0, len(char.Inventory))
	for _, item := range char.Inventory {
		items = append(items, convertItemToProto(item))
	}

	return &apiv1alpha1.Character{
		Id:             char.ID,
		PlayerId:       char.PlayerID,
		Name:           char.Name,
		Origin:         char.Origin,
		Archetype:      char.Archetype.String(),
		Class:          char.Class,
		Rank:           char.Rank,
		Nex:            int32(char.NEX),
		Prestige:       int32(char.Prestige),
		Attributes:     attributes,
		Skills:         skills,
		Health:         convertPoolToProto(char.Health),
		Sanity:         convertPoolToProto(char.Sanity),
		Effort:         convertPoolToProto(char.Effort),
		Defense:        int32(char.Defense),
		Movement:       int32(char.Movement),
		Inventory:      items,
		Capacity:       int32(char.Capacity),
		SpaceUsed:      int32(inventory.TotalSpace(char.Inventory)),
		Rituals:        char.Rituals,
		OriginPowers:   char.OriginPowers,
		ClassAbilities: char.ClassAbilities,
		Description:    char.Description,
		Backstory:      char.Backstory,
		Notes:          char.Notes,
		Details:        convertDetailsToProto(char.Details),
		CreatedAt:      unixOrZero(char.CreatedAt),
		UpdatedAt:      unixOrZero(char.UpdatedAt),
	}
}

func convertPoolToProto(pool paranormal.Pool) *apiv1alpha1.Pool {
	return &apiv1alpha1.Pool{Current: int32(pool.Current), Max: int32(pool.Max)}
}

func convertDetailsToProto(details paranormal.PersonalDetails) *apiv1alpha1.PersonalDetails {
	if details == (paranormal.PersonalDetails{}) {
		return nil
	}
	return &apiv1alpha1.PersonalDetails{
		Age:      details.Age,
		Birthday: details.Birthday,
		Hometown: details.Hometown,
		Weight:   details.Weight,
	}
}

func convertItemToProto(item paranormal.InventoryItem) *apiv1alpha1.InventoryItem {
	out := &apiv1alpha1.InventoryItem{
		Name:     item.Name,
		Category: item.Category,
		Space:    int32(item.SpaceCost),
		Quantity: int32(item.Quantity),
		Notes:    item.Notes,
	}
	for _, mod := range item.Modifications {
		protoMod := &apiv1alpha1.Modification{Name: mod.Name}
		for _, effect := range mod.Effects {
			protoMod.Effects = append(protoMod.Effects, &apiv1alpha1.Effect{
				Kind:  string(effect.Kind),
				Value: int32(effect.Value),
			})
		}
		out.Modifications = append(out.Modifications, protoMod)
	}
	if item.Weapon != nil {
		out.Weapon = &apiv1alpha1.WeaponStats{
			Damage:     item.Weapon.Damage,
			Threat:     int32(item.Weapon.Threat),
			Multiplier: int32(item.Weapon.Multiplier),
			Skill:      item.Weapon.Skill,
			Attribute:  string(item.Weapon.Attribute),
		}
	}
	return out
}

func convertCharactersToProto(chars []*paranormal.Character) []*apiv1alpha1.Character {
	out := make([]*apiv1alpha1.Character, 0, len(chars))
	for _, char := range chars {
		out = append(out, convertCharacterToProto(char))
	}
	return out
}

func convertProtoAttributes(raw map[string]int32) (paranormal.AttributeSet, error) {
	out := make(paranormal.AttributeSet, len(raw))
	for key, value := range raw {
		attr, ok := paranormal.ParseAttribute(key)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown attribute %q", key)
		}
		out[attr] = int(value)
	}
	return out, nil
}

func convertProtoDetails(details *apiv1alpha1.PersonalDetails) paranormal.PersonalDetails {
	if details == nil {
		return paranormal.PersonalDetails{}
	}
	return paranormal.PersonalDetails{
		Age:      details.Age,
		Birthday: details.Birthday,
		Hometown: details.Hometown,
		Weight:   details.Weight,
	}
}

func convertProtoItem(item *apiv1alpha1.InventoryItem) (paranormal.InventoryItem, error) {
	if item == nil {
		return paranormal.InventoryItem{}, errors.InvalidArgument("item is required")
	}

	out := paranormal.InventoryItem{
		Name:      item.Name,
		Category:  item.Category,
		SpaceCost: int(item.Space),
		Quantity:  int(item.Quantity),
		Notes:     item.Notes,
	}
	for _, mod := range item.Modifications {
		if mod == nil {
			continue
		}
		converted := paranormal.Modification{Name: mod.Name}
		for _, effect := range mod.Effects {
			if effect == nil {
				continue
			}
			kind := paranormal.EffectKind(effect.Kind)
			if !kind.Known() {
				return paranormal.InventoryItem{}, errors.InvalidArgumentf("unknown effect kind %q", effect.Kind)
			}
			converted.Effects = append(converted.Effects, paranormal.Effect{Kind: kind, Value: int(effect.Value)})
		}
		out.Modifications = append(out.Modifications, converted)
	}
	if item.Weapon != nil {
		out.Weapon = &paranormal.WeaponStats{
			Damage:     item.Weapon.Damage,
			Threat:     int(item.Weapon.Threat),
			Multiplier: int(item.Weapon.Multiplier),
			Skill:      item.Weapon.Skill,
		}
		if item.Weapon.Attribute != "" {
			attr, ok := paranormal.ParseAttribute(item.Weapon.Attribute)
			if !ok {
				return paranormal.InventoryItem{}, errors.InvalidArgumentf("unknown attribute %q", item.Weapon.Attribute)
			}
			out.Weapon.Attribute = attr
		}
	}
	return out, nil
}

// convertProtoCharacter reads a full sheet sent for a game master edit.
// Derived fields (space used, timestamps) are ignored.
func convertProtoCharacter(char *apiv1alpha1.Character) (*paranormal.Character, error) {
	if char == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	attributes, err := convertProtoAttributes(char.Attributes)
	if err != nil {
		return nil, err
	}

	skills := make(map[string]paranormal.TrainingLevel, len(char.Skills))
	for name, raw := range char.Skills {
		level, err := paranormal.ParseTrainingLevel(raw)
		if err != nil {
			return nil, errors.InvalidArgumentf("skill %q: %v", name, err)
		}
		skills[name] = level
	}

	items := make([]paranormal.InventoryItem, 0, len(char.Inventory))
	for _, item := range char.Inventory {
		converted, err := convertProtoItem(item)
		if err != nil {
			return nil, err
		}
		items = append(items, converted)
	}

	return &paranormal.Character{
		ID:             char.Id,
		PlayerID:       char.PlayerId,
		Name:           char.Name,
		Origin:         char.Origin,
		Archetype:      paranormal.ParseArchetype(char.Archetype),
		Class:          char.Class,
		Rank:           char.Rank,
		NEX:            int(char.Nex),
		Prestige:       int(char.Prestige),
		Attributes:     attributes,
		Skills:         skills,
		Health:         convertProtoPool(char.Health),
		Sanity:         convertProtoPool(char.Sanity),
		Effort:         convertProtoPool(char.Effort),
		Defense:        int(char.Defense),
		Movement:       int(char.Movement),
		Inventory:      items,
		Capacity:       int(char.Capacity),
		Rituals:        char.Rituals,
		OriginPowers:   char.OriginPowers,
		ClassAbilities: char.ClassAbilities,
		Description:    char.Description,
		Backstory:      char.Backstory,
		Notes:          char.Notes,
		Details:        convertProtoDetails(char.Details),
	}, nil
}

func convertProtoPool(pool *apiv1alpha1.Pool) paranormal.Pool {
	if pool == nil {
		return paranormal.Pool{}
	}
	return paranormal.Pool{Current: int(pool.Current), Max: int(pool.Max)}
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
