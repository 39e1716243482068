// Package character implements the character orchestrator
package character

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/paranormal-api/internal/engine/inventory"
	"github.com/KirkDiggler/paranormal-api/internal/engine/stats"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/clock"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/idgen"
	catalogrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
	characterrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/character"
	"github.com/KirkDiggler/paranormal-api/internal/services/character"
)

// StartingNEX is the exposure of a freshly created agent
const StartingNEX = 5

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	CatalogRepo   catalogrepo.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	catalogRepo   catalogrepo.Repository
	idGen         idgen.Generator
	clock         clock.Clock
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		catalogRepo:   cfg.CatalogRepo,
		idGen:         cfg.IDGenerator,
		clock:         clk,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// CreateCharacter validates a new sheet, derives its stats and stores it with
// every pool full
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *character.CreateCharacterInput,
) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	archetype := paranormal.ParseArchetype(input.Archetype)
	if !archetype.Known() {
		return nil, errors.UnknownArchetype(input.Archetype)
	}

	if err := stats.ValidatePointBuy(input.Attributes); err != nil {
		return nil, err
	}

	rank := paranormal.RankRecruit
	if strings.TrimSpace(input.Rank) != "" {
		parsed, ok := paranormal.ParseRank(input.Rank)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown rank %q", input.Rank)
		}
		rank = parsed
	}

	skills, err := o.creationSkills(ctx, archetype, input)
	if err != nil {
		return nil, err
	}

	derived, err := stats.Compute(input.Attributes, archetype)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	char := &paranormal.Character{
		ID:          o.idGen.Generate(),
		PlayerID:    input.PlayerID,
		Name:        strings.TrimSpace(input.Name),
		Origin:      strings.TrimSpace(input.Origin),
		Archetype:   archetype,
		Class:       strings.TrimSpace(input.Class),
		Rank:        rank,
		NEX:         StartingNEX,
		Attributes:  input.Attributes.Clone(),
		Skills:      skills,
		Inventory:   []paranormal.InventoryItem{},
		Capacity:    stats.CapacityForRank(rank),
		Description: input.Description,
		Backstory:   input.Backstory,
		Details:     input.Details,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	stats.Apply(char, derived)
	stats.FillPools(char)

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", created.Character.ID,
		"player_id", created.Character.PlayerID,
		"archetype", created.Character.Archetype,
		"skills", len(created.Character.Skills),
	)

	return &character.CreateCharacterOutput{Character: created.Character}, nil
}

// creationSkills grants origin and archetype skills and checks the free picks
// against the allowance. Every resulting skill is trained at level 1.
// validateChoice requires exactly one skill of group trained. A member granted
// by origin settles the group, so no other member may be picked.
func validateChoice(group []string, chosen, granted map[string]bool, vb *errors.ValidationBuilder) {
	var picked, grants []string
	for _, name := range group {
		switch {
		case granted[name]:
			grants = append(grants, name)
		case chosen[name]:
			picked = append(picked, name)
		}
	}

	options := strings.Join(group, " or ")
	switch {
	case len(grants) > 0 && len(picked) > 0:
		vb.Fieldf("skills", "%s is already settled by %s; choose another skill", options, grants[0])
	case len(picked) > 1:
		vb.Fieldf("skills", "choose only one of %s", options)
	case len(grants) == 0 && len(picked) == 0:
		vb.Fieldf("skills", "choose one of %s", options)
	}
}

func (o *Orchestrator) creationSkills(
	ctx context.Context,
	archetype paranormal.Archetype,
	input *character.CreateCharacterInput,
) (map[string]paranormal.TrainingLevel, error) {
	listed, err := o.catalogRepo.List(ctx, catalogrepo.ListInput{Kind: paranormal.KindSkills})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}
	known := make(map[string]string, len(listed.Entries))
	for _, entry := range listed.Entries {
		known[skillKey(entry.EntryName())] = entry.EntryName()
	}

	granted := make(map[string]bool)
	for _, name := range stats.MandatorySkills(archetype) {
		granted[name] = true
	}

	if origin := strings.TrimSpace(input.Origin); origin != "" {
		got, err := o.catalogRepo.Get(ctx, catalogrepo.GetInput{Kind: paranormal.KindOrigins, Name: origin})
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.InvalidArgumentf("unknown origin %q", origin)
			}
			return nil, errors.Wrap(err, "failed to get origin")
		}
		if def, ok := got.Entry.(*paranormal.Origin); ok {
			for _, raw := range def.Skills {
				name, ok := known[skillKey(raw)]
				if !ok {
					// "two of the master's choice" and similar are not skills
					slog.DebugContext(ctx, "origin skill skipped", "origin", def.Name, "skill", raw)
					continue
				}
				granted[name] = true
			}
		}
	}

	allowance, err := stats.SkillAllowance(archetype, input.Attributes.Get(paranormal.Intellect))
	if err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	chosen := make(map[string]bool, len(input.Skills))
	for _, raw := range input.Skills {
		name, ok := known[skillKey(raw)]
		switch {
		case !ok:
			vb.Fieldf("skills", "unknown skill %q", raw)
		case granted[name]:
			vb.Fieldf("skills", "%s is already granted by origin or archetype", name)
		case chosen[name]:
			vb.Fieldf("skills", "%s chosen more than once", name)
		default:
			chosen[name] = true
		}
	}
	if len(input.Skills) != allowance {
		vb.Fieldf("skills", "exactly %d skills must be chosen, got %d", allowance, len(input.Skills))
	}
	for _, group := range stats.RequiredChoices(archetype) {
		validateChoice(group, chosen, granted, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	skills := make(map[string]paranormal.TrainingLevel, len(granted)+len(chosen))
	for name := range granted {
		skills[name] = paranormal.Numeric(1)
	}
	for name := range chosen {
		skills[name] = paranormal.Numeric(1)
	}
	return skills, nil
}

func skillKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetCharacter retrieves a character
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &character.GetCharacterOutput{Character: got.Character}, nil
}

// ListCharacters lists every character, or one player's
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.PlayerID == "" {
		listed, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list characters")
		}
		return &character.ListCharactersOutput{Characters: listed.Characters}, nil
	}

	listed, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	return &character.ListCharactersOutput{Characters: listed.Characters}, nil
}

// DeleteCharacter removes a character
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	slog.InfoContext(ctx, "character deleted", "character_id", input.CharacterID)

	return &character.DeleteCharacterOutput{}, nil
}

// UpdateCharacter applies a game master edit. Derived stats are recomputed
// leniently so sheets with an unknown archetype stay editable.
func (o *Orchestrator) UpdateCharacter(
	ctx context.Context,
	input *character.UpdateCharacterInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	edit := input.Character.Clone()
	if err := validateEdit(edit); err != nil {
		return nil, err
	}

	var fallback bool
	mutated, err := o.characterRepo.Mutate(ctx, characterrepo.MutateInput{
		ID: edit.ID,
		Mutate: func(stored *paranormal.Character) error {
			next := edit.Clone()
			next.ID = stored.ID
			next.CreatedAt = stored.CreatedAt

			// Over-capacity sheets may still be edited as long as the edit
			// does not make it worse
			if !inventory.Fits(next.Inventory, next.Capacity) &&
				(inventory.TotalSpace(next.Inventory) > inventory.TotalSpace(stored.Inventory) ||
					next.Capacity < stored.Capacity) {
				return errors.CapacityExceeded(next.Capacity, inventory.TotalSpace(next.Inventory))
			}

			var derived stats.DerivedStats
			derived, fallback = stats.ComputeWithFallback(next.Attributes, next.Archetype)
			stats.Apply(next, derived)

			*stored = *next
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	if fallback {
		slog.WarnContext(ctx, "unknown archetype, stats derived as specialist",
			"character_id", edit.ID,
			"archetype", edit.Archetype,
		)
	}

	return &character.UpdateCharacterOutput{
		Character:         mutated.Character,
		ArchetypeFallback: fallback,
	}, nil
}

// validateEdit normalizes archetype and rank and checks the fields a game
// master may not leave broken
func validateEdit(edit *paranormal.Character) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", edit.ID, vb)
	errors.ValidateRequired("name", edit.Name, vb)
	errors.ValidateRequired("player_id", edit.PlayerID, vb)
	errors.ValidateMin("nex", edit.NEX, 0, vb)
	errors.ValidateMin("capacity", edit.Capacity, 0, vb)

	edit.Archetype = paranormal.ParseArchetype(string(edit.Archetype))

	rank, ok := paranormal.ParseRank(edit.Rank)
	if !ok {
		vb.Fieldf("rank", "unknown rank %q", edit.Rank)
	}
	edit.Rank = rank

	for attr, value := range edit.Attributes {
		if _, ok := paranormal.ParseAttribute(string(attr)); !ok {
			vb.InvalidField("attributes."+string(attr), "unknown attribute")
		}
		if value < 0 {
			vb.Fieldf("attributes."+string(attr), "must be at least 0, got %d", value)
		}
	}
	for name := range edit.Skills {
		if strings.TrimSpace(name) == "" {
			vb.InvalidField("skills", "skill names must not be empty")
		}
	}
	for i, item := range edit.Inventory {
		vb.Merge(fmt.Sprintf("inventory[%d]", i), inventory.ValidateItem(item))
	}

	return vb.Build()
}
