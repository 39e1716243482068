package v1alpha1

// Character is the wire form of a character sheet. Skills map a skill name to
// its training level: a tier name such as "treinado" or a number "0".."5".
type Character struct {
	Id         string            `json:"id"`
	PlayerId   string            `json:"player_id"`
	Name       string            `json:"name"`
	Origin     string            `json:"origin,omitempty"`
	Archetype  string            `json:"archetype"`
	Class      string            `json:"class,omitempty"`
	Rank       string            `json:"rank"`
	Nex        int32             `json:"nex"`
	Prestige   int32             `json:"prestige"`
	Attributes map[string]int32  `json:"attributes"`
	Skills     map[string]string `json:"skills,omitempty"`

	Health   *Pool `json:"health"`
	Sanity   *Pool `json:"sanity"`
	Effort   *Pool `json:"effort"`
	Defense  int32 `json:"defense"`
	Movement int32 `json:"movement"`

	Inventory []*InventoryItem `json:"inventory,omitempty"`
	Capacity  int32            `json:"capacity"`
	// SpaceUsed is derived from the inventory and ignored on input
	SpaceUsed int32 `json:"space_used"`

	Rituals        []string `json:"rituals,omitempty"`
	OriginPowers   []string `json:"origin_powers,omitempty"`
	ClassAbilities []string `json:"class_abilities,omitempty"`

	Description string           `json:"description,omitempty"`
	Backstory   string           `json:"backstory,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	Details     *PersonalDetails `json:"details,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Pool is a current/maximum pair
type Pool struct {
	Current int32 `json:"current"`
	Max     int32 `json:"max"`
}

// PersonalDetails are free-form biography fields
type PersonalDetails struct {
	Age      string `json:"age,omitempty"`
	Birthday string `json:"birthday,omitempty"`
	Hometown string `json:"hometown,omitempty"`
	Weight   string `json:"weight,omitempty"`
}

// InventoryItem is a carried stack
type InventoryItem struct {
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	Space         int32           `json:"space"`
	Quantity      int32           `json:"quantity"`
	Modifications []*Modification `json:"modifications,omitempty"`
	Weapon        *WeaponStats    `json:"weapon,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// Modification is an upgrade applied to an item
type Modification struct {
	Name    string    `json:"name"`
	Effects []*Effect `json:"effects,omitempty"`
}

// Effect is one numeric adjustment of a modification
type Effect struct {
	Kind  string `json:"kind"`
	Value int32  `json:"value"`
}

// WeaponStats are the combat numbers of a carried weapon
type WeaponStats struct {
	Damage     string `json:"damage"`
	Threat     int32  `json:"threat,omitempty"`
	Multiplier int32  `json:"multiplier,omitempty"`
	Skill      string `json:"skill,omitempty"`
	Attribute  string `json:"attribute,omitempty"`
}

// CreateCharacterRequest creates a character from a point buy
type CreateCharacterRequest struct {
	PlayerId    string           `json:"player_id"`
	Name        string           `json:"name"`
	Origin      string           `json:"origin,omitempty"`
	Archetype   string           `json:"archetype"`
	Class       string           `json:"class,omitempty"`
	Rank        string           `json:"rank,omitempty"`
	Attributes  map[string]int32 `json:"attributes"`
	Skills      []string         `json:"skills,omitempty"`
	Description string           `json:"description,omitempty"`
	Backstory   string           `json:"backstory,omitempty"`
	Details     *PersonalDetails `json:"details,omitempty"`
}

// CreateCharacterResponse returns the stored character
type CreateCharacterResponse struct {
	Character *Character `json:"character"`
}

// GetCharacterRequest fetches a character
type GetCharacterRequest struct {
	CharacterId string `json:"character_id"`
}

// GetCharacterResponse returns a character
type GetCharacterResponse struct {
	Character *Character `json:"character"`
}

// ListCharactersRequest lists characters, all of them when PlayerId is empty
type ListCharactersRequest struct {
	PlayerId string `json:"player_id,omitempty"`
}

// ListCharactersResponse returns the characters
type ListCharactersResponse struct {
	Characters []*Character `json:"characters"`
}

// DeleteCharacterRequest removes a character
type DeleteCharacterRequest struct {
	CharacterId string `json:"character_id"`
}

// DeleteCharacterResponse confirms the removal
type DeleteCharacterResponse struct {
	Message string `json:"message"`
}

// UpdateCharacterRequest replaces every editable field of a sheet
type UpdateCharacterRequest struct {
	Character *Character `json:"character"`
}

// UpdateCharacterResponse returns the recomputed sheet
type UpdateCharacterResponse struct {
	Character         *Character `json:"character"`
	ArchetypeFallback bool       `json:"archetype_fallback,omitempty"`
}

// SetAttributeRequest sets one attribute
type SetAttributeRequest struct {
	CharacterId string `json:"character_id"`
	Attribute   string `json:"attribute"`
	Value       int32  `json:"value"`
}

// SetAttributeResponse returns the recomputed sheet
type SetAttributeResponse struct {
	Character         *Character `json:"character"`
	ArchetypeFallback bool       `json:"archetype_fallback,omitempty"`
}

// ChangeArchetypeRequest moves a character to another archetype
type ChangeArchetypeRequest struct {
	CharacterId string `json:"character_id"`
	Archetype   string `json:"archetype"`
}

// ChangeArchetypeResponse returns the recomputed sheet
type ChangeArchetypeResponse struct {
	Character *Character `json:"character"`
}

// AdjustPoolRequest adds Delta to the health, sanity or effort pool
type AdjustPoolRequest struct {
	CharacterId string `json:"character_id"`
	Pool        string `json:"pool"`
	Delta       int32  `json:"delta"`
}

// AdjustPoolResponse returns the sheet and the adjusted pool
type AdjustPoolResponse struct {
	Character *Character `json:"character"`
	Pool      *Pool      `json:"pool"`
}

// TrainSkillRequest moves a skill one level "up" or "down"
type TrainSkillRequest struct {
	CharacterId string `json:"character_id"`
	Skill       string `json:"skill"`
	Direction   string `json:"direction"`
}

// TrainSkillResponse returns the sheet and the new level
type TrainSkillResponse struct {
	Character *Character `json:"character"`
	Level     string     `json:"level"`
}

// AddItemRequest adds a stack. FromCatalog names the table Item.Name is
// looked up in; empty adds the item as given.
type AddItemRequest struct {
	CharacterId string         `json:"character_id"`
	Item        *InventoryItem `json:"item"`
	FromCatalog string         `json:"from_catalog,omitempty"`
}

// AddItemResponse returns the sheet
type AddItemResponse struct {
	Character *Character `json:"character"`
}

// IncrementItemRequest changes a stack's quantity
type IncrementItemRequest struct {
	CharacterId string `json:"character_id"`
	Index       int32  `json:"index"`
	Delta       int32  `json:"delta"`
}

// IncrementItemResponse returns the sheet
type IncrementItemResponse struct {
	Character *Character `json:"character"`
}

// ModifyItemRequest applies a catalog modification to a stack
type ModifyItemRequest struct {
	CharacterId  string `json:"character_id"`
	Index        int32  `json:"index"`
	Modification string `json:"modification"`
}

// ModifyItemResponse returns the sheet
type ModifyItemResponse struct {
	Character *Character `json:"character"`
}

// RemoveItemRequest removes a stack by position
type RemoveItemRequest struct {
	CharacterId string `json:"character_id"`
	Index       int32  `json:"index"`
}

// RemoveItemResponse returns the sheet
type RemoveItemResponse struct {
	Character *Character `json:"character"`
}
