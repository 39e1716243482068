package character_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/repositories/character"
)

const legacyRecord = `{
	"id": 42,
	"nome": "Joui Jouki",
	"jogador": "Marina",
	"origem": {"nome": "Acadêmico", "pericias": ["Ciências", "Investigação"]},
	"trilha": "Ocultista",
	"classe": "Conduíte",
	"nex": 10,
	"atributos": {"FOR": 1, "AGI": 2, "INT": 3, "PRE": 3, "VIG": 1},
	"pericias": {"Ocultismo": "veterano", "Vontade": "treinado", "Ciências": 2, "Luta": ""},
	"periciasTrainadas": ["Investigação", "Vontade"],
	"pvMax": 15,
	"pv_atual": 9,
	"san_max": 23,
	"sanAtual": 12,
	"peMax": 5,
	"espacoTotal": 15,
	"defesa": 12,
	"inventario": [
		{"nome": "Revólver", "espaco": 1, "quantidade": 1, "dano": "2d6", "critico": 19, "modificacoes": ["Certeira"]},
		{"nome": "Munição curta", "espaco": 1, "quantidade": 3},
		"Lanterna"
	],
	"rituaisConhecidos": [{"nome": "Decadência"}, "Cicatrização"],
	"poderes_origem": ["Saber é Poder"],
	"historia": "Pesquisador do Ordo Realitas.",
	"idade": "27",
	"created_at": "2024-11-02T20:15:00Z"
}`

func TestDecodeRecordLegacy(t *testing.T) {
	char, err := character.DecodeRecord([]byte(legacyRecord))
	require.NoError(t, err)

	assert.Equal(t, "42", char.ID)
	assert.Equal(t, "Joui Jouki", char.Name)
	assert.Equal(t, "Marina", char.PlayerID)
	assert.Equal(t, "Acadêmico", char.Origin)
	assert.Equal(t, paranormal.Occultist, char.Archetype)
	assert.Equal(t, "Conduíte", char.Class)
	assert.Equal(t, paranormal.RankRecruit, char.Rank)
	assert.Equal(t, 10, char.NEX)
	assert.Equal(t, 3, char.Attributes.Get(paranormal.Intellect))
	assert.Equal(t, 10, char.Attributes.Sum())

	assert.Equal(t, paranormal.Legacy(paranormal.Veteran), char.Skills["Ocultismo"])
	assert.Equal(t, paranormal.Legacy(paranormal.Trained), char.Skills["Vontade"])
	assert.Equal(t, paranormal.Numeric(2), char.Skills["Ciências"])
	assert.Equal(t, paranormal.Legacy(paranormal.Trained), char.Skills["Investigação"])
	assert.NotContains(t, char.Skills, "Luta")

	assert.Equal(t, paranormal.Pool{Current: 9, Max: 15}, char.Health)
	assert.Equal(t, paranormal.Pool{Current: 12, Max: 23}, char.Sanity)
	assert.Equal(t, paranormal.Pool{Current: 5, Max: 5}, char.Effort)
	assert.Equal(t, 12, char.Defense)
	assert.Equal(t, 9, char.Movement)
	assert.Equal(t, 15, char.Capacity)

	require.Len(t, char.Inventory, 3)
	assert.Equal(t, "Revólver", char.Inventory[0].Name)
	require.NotNil(t, char.Inventory[0].Weapon)
	assert.Equal(t, "2d6", char.Inventory[0].Weapon.Damage)
	assert.Equal(t, 19, char.Inventory[0].Weapon.Threat)
	assert.Equal(t, []paranormal.Modification{{Name: "Certeira"}}, char.Inventory[0].Modifications)
	assert.Equal(t, 3, char.Inventory[1].Quantity)
	assert.Equal(t, paranormal.InventoryItem{Name: "Lanterna", SpaceCost: 1, Quantity: 1}, char.Inventory[2])

	assert.Equal(t, []string{"Decadência", "Cicatrização"}, char.Rituals)
	assert.Equal(t, []string{"Saber é Poder"}, char.OriginPowers)
	assert.Equal(t, "Pesquisador do Ordo Realitas.", char.Backstory)
	assert.Equal(t, "27", char.Details.Age)
	assert.Equal(t, 2024, char.CreatedAt.Year())
}

func TestDecodeRecordLegacyDefaults(t *testing.T) {
	char, err := character.DecodeRecord([]byte(`{"id": "abc", "nome": "Sem Nada", "trilha": "Bardo"}`))
	require.NoError(t, err)

	assert.Equal(t, paranormal.Archetype("Bardo"), char.Archetype)
	assert.False(t, char.Archetype.Known())
	assert.Equal(t, 5, char.NEX)
	assert.Equal(t, 10, char.Defense)
	assert.Equal(t, 9, char.Movement)
	assert.Equal(t, 10, char.Capacity)
	assert.Empty(t, char.Skills)
}

func TestDecodeRecordCanonicalRoundTrip(t *testing.T) {
	original := &paranormal.Character{
		ID:         "char_001",
		Name:       "Arthur",
		Archetype:  paranormal.Combatant,
		Attributes: paranormal.NewAttributeSet(1, 4, 1, 2, 3),
		Skills:     map[string]paranormal.TrainingLevel{"Luta": paranormal.Numeric(2), "Pontaria": paranormal.Legacy(paranormal.Expert)},
		Health:     paranormal.Pool{Current: 3, Max: 23},
	}
	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := character.DecodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeRecordRejectsGarbage(t *testing.T) {
	for _, raw := range []string{`not json`, `[1,2]`, `{"nome": "no id"}`, `{"id": 1, "pericias": {"Luta": "mestre"}}`} {
		_, err := character.DecodeRecord([]byte(raw))
		assert.Error(t, err, raw)
	}
}
