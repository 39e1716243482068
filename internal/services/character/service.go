// Package character defines the interface for character sheet operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/paranormal-api/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
)

// Service defines the interface for character operations
type Service interface {
	// Sheet lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Game master edit
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)

	// Sheet changes made at the table
	SetAttribute(ctx context.Context, input *SetAttributeInput) (*SetAttributeOutput, error)
	ChangeArchetype(ctx context.Context, input *ChangeArchetypeInput) (*ChangeArchetypeOutput, error)
	AdjustPool(ctx context.Context, input *AdjustPoolInput) (*AdjustPoolOutput, error)
	TrainSkill(ctx context.Context, input *TrainSkillInput) (*TrainSkillOutput, error)

	// Inventory
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	IncrementItem(ctx context.Context, input *IncrementItemInput) (*IncrementItemOutput, error)
	ModifyItem(ctx context.Context, input *ModifyItemInput) (*ModifyItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
}

// Sheet lifecycle types

// CreateCharacterInput defines the request for creating a character.
// Attributes must be a legal point buy. Skills lists the freely chosen
// skills; origin and archetype skills are granted on top of them.
type CreateCharacterInput struct {
	PlayerID   string
	Name       string
	Origin     string
	Archetype  string
	Class      string
	Rank       string // Optional, defaults to Recruta
	Attributes paranormal.AttributeSet
	Skills     []string

	Description string
	Backstory   string
	Details     paranormal.PersonalDetails
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *paranormal.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *paranormal.Character
}

// ListCharactersInput defines the request for listing characters.
// An empty PlayerID lists every character.
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*paranormal.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// UpdateCharacterInput replaces every editable field of the sheet. ID and
// CreatedAt are taken from the stored record; derived stats are recomputed.
type UpdateCharacterInput struct {
	Character *paranormal.Character
}

// UpdateCharacterOutput defines the response for a game master edit
type UpdateCharacterOutput struct {
	Character *paranormal.Character
	// ArchetypeFallback is true when the archetype is unknown and stats were
	// derived as Specialist
	ArchetypeFallback bool
}

// Table change types

// SetAttributeInput sets one attribute. Values are not bounded by the
// creation range once the character exists.
type SetAttributeInput struct {
	CharacterID string
	Attribute   string
	Value       int
}

// SetAttributeOutput defines the response for setting an attribute
type SetAttributeOutput struct {
	Character         *paranormal.Character
	ArchetypeFallback bool
}

// ChangeArchetypeInput moves a character to another archetype
type ChangeArchetypeInput struct {
	CharacterID string
	Archetype   string
}

// ChangeArchetypeOutput defines the response for changing archetype
type ChangeArchetypeOutput struct {
	Character *paranormal.Character
}

// AdjustPoolInput adds Delta (negative for damage) to one pool
type AdjustPoolInput struct {
	CharacterID string
	Pool        string
	Delta       int
}

// AdjustPoolOutput defines the response for adjusting a pool
type AdjustPoolOutput struct {
	Character *paranormal.Character
	Pool      paranormal.Pool
}

// TrainDirection moves a skill up or down the training scale
type TrainDirection string

// Training directions
const (
	TrainUp   TrainDirection = "up"
	TrainDown TrainDirection = "down"
)

// TrainSkillInput raises or lowers one skill a single level
type TrainSkillInput struct {
	CharacterID string
	Skill       string
	Direction   TrainDirection
}

// TrainSkillOutput defines the response for training a skill
type TrainSkillOutput struct {
	Character *paranormal.Character
	Level     paranormal.TrainingLevel
}

// Inventory types

// AddItemInput adds a stack to the inventory. When FromCatalog names a
// weapons, equipment, protections or ammunition table, Item.Name is looked up
// there and the row supplies space, category and weapon stats.
type AddItemInput struct {
	CharacterID string
	Item        paranormal.InventoryItem
	FromCatalog paranormal.CatalogKind
}

// AddItemOutput defines the response for adding an item
type AddItemOutput struct {
	Character *paranormal.Character
}

// IncrementItemInput changes a stack's quantity; reaching zero removes it
type IncrementItemInput struct {
	CharacterID string
	Index       int
	Delta       int
}

// IncrementItemOutput defines the response for changing a quantity
type IncrementItemOutput struct {
	Character *paranormal.Character
}

// ModifyItemInput applies a catalog modification to a stack
type ModifyItemInput struct {
	CharacterID      string
	Index            int
	ModificationName string
}

// ModifyItemOutput defines the response for modifying an item
type ModifyItemOutput struct {
	Character *paranormal.Character
}

// RemoveItemInput removes a stack by position
type RemoveItemInput struct {
	CharacterID string
	Index       int
}

// RemoveItemOutput defines the response for removing an item
type RemoveItemOutput struct {
	Character *paranormal.Character
}
