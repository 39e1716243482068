package character

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

// Defaults applied to legacy records that omit a field
const (
	legacyDefaultNEX      = 5
	legacyDefaultDefense  = 10
	legacyDefaultMovement = 9
	legacyDefaultCapacity = 10
)

// DecodeRecord turns a stored record into a canonical Character. Records
// written by this service decode directly. Older records with camelCase,
// snake_case or Portuguese keys are normalized field by field.
func DecodeRecord(data []byte) (*paranormal.Character, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Internal("character record is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.Internal("character record is not an object")
	}

	if isCanonical(root) {
		var char paranormal.Character
		if err := json.Unmarshal(data, &char); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal character record")
		}
		return &char, nil
	}

	return decodeLegacy(root)
}

func isCanonical(root gjson.Result) bool {
	return root.Get("attributes").Exists() || root.Get("health").IsObject()
}

// first returns the first key present on obj
func first(obj gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		if v := obj.Get(key); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

func intOr(v gjson.Result, fallback int) int {
	if !v.Exists() {
		return fallback
	}
	return int(v.Int())
}

// name reads either a plain string or an object carrying nome/name
func name(v gjson.Result) string {
	if v.IsObject() {
		return first(v, "nome", "name").String()
	}
	return v.String()
}

func names(v gjson.Result) []string {
	var out []string
	v.ForEach(func(_, item gjson.Result) bool {
		if n := strings.TrimSpace(name(item)); n != "" {
			out = append(out, n)
		}
		return true
	})
	return out
}

func decodeLegacy(root gjson.Result) (*paranormal.Character, error) {
	char := &paranormal.Character{
		ID:        first(root, "id").String(),
		PlayerID:  first(root, "player_id", "playerId", "jogador").String(),
		Name:      first(root, "name", "nome").String(),
		Origin:    name(first(root, "origem", "origin")),
		Archetype: paranormal.ParseArchetype(first(root, "trilha", "archetype").String()),
		Class:     first(root, "classe", "class").String(),
		Rank:      first(root, "patente", "rank").String(),
		NEX:       intOr(first(root, "nex"), legacyDefaultNEX),
		Prestige:  intOr(first(root, "prestigio", "prestige"), 0),
		Defense:   intOr(first(root, "defesa", "defense"), legacyDefaultDefense),
		Movement:  intOr(first(root, "deslocamento", "movement"), legacyDefaultMovement),
		Capacity:  intOr(first(root, "espacoTotal", "espaco_total", "capacity"), legacyDefaultCapacity),

		Rituals:        names(first(root, "rituaisConhecidos", "rituais_conhecidos", "rituais")),
		OriginPowers:   names(first(root, "poderesOrigem", "poderes_origem")),
		ClassAbilities: names(first(root, "habilidadesClasse", "habilidades_classe")),

		Description: first(root, "descricao").String(),
		Backstory:   first(root, "historia").String(),
		Notes:       first(root, "anotacoes").String(),
		Details: paranormal.PersonalDetails{
			Age:      first(root, "idade").String(),
			Birthday: first(root, "aniversario").String(),
			Hometown: first(root, "local").String(),
			Weight:   first(root, "peso").String(),
		},
	}
	if char.ID == "" {
		return nil, errors.Internal("legacy character record has no id")
	}
	if char.Rank == "" {
		char.Rank = paranormal.RankRecruit
	}

	char.Attributes = decodeAttributes(first(root, "atributos"))

	skills, err := decodeSkills(root)
	if err != nil {
		return nil, errors.Wrapf(err, "character %s has invalid skills", char.ID)
	}
	char.Skills = skills

	char.Health = decodePool(root, "pv")
	char.Sanity = decodePool(root, "san")
	char.Effort = decodePool(root, "pe")

	char.Inventory = decodeInventory(first(root, "inventario", "inventory"))

	char.CreatedAt = decodeTime(first(root, "created_at", "createdAt"))
	char.UpdatedAt = decodeTime(first(root, "updated_at", "updatedAt"))

	return char, nil
}

func decodeAttributes(v gjson.Result) paranormal.AttributeSet {
	attrs := paranormal.AttributeSet{}
	v.ForEach(func(key, value gjson.Result) bool {
		if attr, ok := paranormal.ParseAttribute(key.String()); ok {
			attrs[attr] = int(value.Int())
		}
		return true
	})
	return attrs
}

func decodeSkills(root gjson.Result) (map[string]paranormal.TrainingLevel, error) {
	skills := make(map[string]paranormal.TrainingLevel)

	var decodeErr error
	first(root, "pericias", "skills").ForEach(func(key, value gjson.Result) bool {
		var level paranormal.TrainingLevel
		switch value.Type {
		case gjson.Number:
			level = paranormal.Numeric(int(value.Int()))
		case gjson.True:
			level = paranormal.Legacy(paranormal.Trained)
		case gjson.False:
			return true
		default:
			if strings.TrimSpace(value.String()) == "" {
				return true
			}
			parsed, err := paranormal.ParseTrainingLevel(value.String())
			if err != nil {
				decodeErr = errors.WrapWithCodef(err, errors.CodeInternal, "skill %s", key.String())
				return false
			}
			level = parsed
		}
		skills[key.String()] = level
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	// A bare list of trained skills predates the tiered map
	for _, skill := range names(first(root, "periciasTrainadas", "pericias_trainadas")) {
		if _, ok := skills[skill]; !ok {
			skills[skill] = paranormal.Legacy(paranormal.Trained)
		}
	}
	return skills, nil
}

// decodePool reads <prefix>Max/<prefix>_max and <prefix>Atual/<prefix>_atual.
// A missing current value means the pool is full.
func decodePool(root gjson.Result, prefix string) paranormal.Pool {
	maxValue := intOr(first(root, prefix+"Max", prefix+"_max"), 0)
	current := intOr(first(root, prefix+"Atual", prefix+"_atual"), maxValue)
	return paranormal.Pool{Current: current, Max: maxValue}
}

func decodeInventory(v gjson.Result) []paranormal.InventoryItem {
	var items []paranormal.InventoryItem
	v.ForEach(func(_, raw gjson.Result) bool {
		if !raw.IsObject() {
			if n := strings.TrimSpace(raw.String()); n != "" {
				items = append(items, paranormal.InventoryItem{Name: n, SpaceCost: 1, Quantity: 1})
			}
			return true
		}

		item := paranormal.InventoryItem{
			Name:      first(raw, "nome", "name").String(),
			Category:  first(raw, "categoria", "tipo", "category").String(),
			SpaceCost: intOr(first(raw, "espaco", "space"), 1),
			Quantity:  intOr(first(raw, "quantidade", "quantity"), 1),
			Notes:     first(raw, "descricao", "notes").String(),
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		first(raw, "modificacoes", "modifications").ForEach(func(_, mod gjson.Result) bool {
			if n := strings.TrimSpace(name(mod)); n != "" {
				item.Modifications = append(item.Modifications, paranormal.Modification{Name: n})
			}
			return true
		})
		if dano := first(raw, "dano", "damage"); dano.Exists() {
			item.Weapon = &paranormal.WeaponStats{
				Damage:     dano.String(),
				Threat:     intOr(first(raw, "critico", "threat"), 0),
				Multiplier: intOr(first(raw, "multiplicador", "multiplier"), 0),
			}
		}
		items = append(items, item)
		return true
	})
	return items
}

func decodeTime(v gjson.Result) time.Time {
	if !v.Exists() {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, v.String()); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
