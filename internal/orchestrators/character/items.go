package character

import (
	"context"
	"strings"

	"github.com/KirkDiggler/paranormal-api/internal/engine/inventory"
	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	catalogrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
	characterrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/character"
	"github.com/KirkDiggler/paranormal-api/internal/services/character"
)

// AddItem appends a stack, refusing anything that would overflow capacity
func (o *Orchestrator) AddItem(
	ctx context.Context,
	input *character.AddItemInput,
) (*character.AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	item := input.Item.Clone()
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if input.FromCatalog != "" {
		fromCatalog, err := o.catalogItem(ctx, input.FromCatalog, item.Name)
		if err != nil {
			return nil, err
		}
		fromCatalog.Quantity = item.Quantity
		fromCatalog.Notes = item.Notes
		fromCatalog.Modifications = item.Modifications
		item = fromCatalog
	}

	mods, err := o.resolveModifications(ctx, item.Modifications)
	if err != nil {
		return nil, err
	}
	item.Modifications = mods

	mutated, err := o.mutateInventory(ctx, input.CharacterID, func(c *paranormal.Character) ([]paranormal.InventoryItem, error) {
		return inventory.Add(c.Inventory, item, c.Capacity)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add item")
	}

	return &character.AddItemOutput{Character: mutated}, nil
}

// catalogItem builds an inventory stack from a catalog row
func (o *Orchestrator) catalogItem(ctx context.Context, kind paranormal.CatalogKind, name string) (paranormal.InventoryItem, error) {
	switch kind {
	case paranormal.KindWeapons, paranormal.KindEquipment, paranormal.KindProtections, paranormal.KindAmmunition:
	default:
		return paranormal.InventoryItem{}, errors.InvalidArgumentf("items cannot be added from %q", kind)
	}
	if strings.TrimSpace(name) == "" {
		return paranormal.InventoryItem{}, errors.InvalidArgument("item name is required")
	}

	got, err := o.catalogRepo.Get(ctx, catalogrepo.GetInput{Kind: kind, Name: name})
	if err != nil {
		return paranormal.InventoryItem{}, errors.Wrapf(err, "failed to get %s", name)
	}

	item := paranormal.InventoryItem{Category: string(kind)}
	switch entry := got.Entry.(type) {
	case *paranormal.Weapon:
		item.Name = entry.Name
		item.SpaceCost = entry.Space
		item.Weapon = entry.ItemStats()
	case *paranormal.Equipment:
		item.Name = entry.Name
		item.SpaceCost = entry.Space
	case *paranormal.Protection:
		item.Name = entry.Name
		item.SpaceCost = entry.Space
	case *paranormal.Ammunition:
		item.Name = entry.Name
		item.SpaceCost = entry.Space
	default:
		return paranormal.InventoryItem{}, errors.Internalf("unexpected %s entry %T", kind, got.Entry)
	}
	return item, nil
}

// resolveModifications replaces client supplied modifications with their
// catalog definitions; only the names are trusted
func (o *Orchestrator) resolveModifications(ctx context.Context, mods []paranormal.Modification) ([]paranormal.Modification, error) {
	if len(mods) == 0 {
		return nil, nil
	}

	resolved := make([]paranormal.Modification, 0, len(mods))
	seen := make(map[string]bool, len(mods))
	for _, m := range mods {
		if seen[m.Name] {
			return nil, errors.InvalidArgumentf("modification %q given twice", m.Name)
		}
		seen[m.Name] = true

		def, err := o.catalogModification(ctx, m.Name)
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.InvalidArgumentf("unknown modification %q", m.Name)
			}
			return nil, err
		}
		resolved = append(resolved, def)
	}
	return resolved, nil
}

func (o *Orchestrator) catalogModification(ctx context.Context, name string) (paranormal.Modification, error) {
	if strings.TrimSpace(name) == "" {
		return paranormal.Modification{}, errors.InvalidArgument("modification name is required")
	}

	got, err := o.catalogRepo.Get(ctx, catalogrepo.GetInput{
		Kind: paranormal.KindModifications,
		Name: name,
	})
	if err != nil {
		return paranormal.Modification{}, errors.Wrap(err, "failed to get modification")
	}
	def, ok := got.Entry.(*paranormal.ModificationDef)
	if !ok {
		return paranormal.Modification{}, errors.Internalf("unexpected modification entry %T", got.Entry)
	}
	return def.Modification(), nil
}

// IncrementItem changes the quantity of a stack
func (o *Orchestrator) IncrementItem(
	ctx context.Context,
	input *character.IncrementItemInput,
) (*character.IncrementItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Delta == 0 {
		return nil, errors.InvalidArgument("delta must not be zero")
	}

	mutated, err := o.mutateInventory(ctx, input.CharacterID, func(c *paranormal.Character) ([]paranormal.InventoryItem, error) {
		return inventory.Increment(c.Inventory, input.Index, input.Delta, c.Capacity)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change item quantity")
	}

	return &character.IncrementItemOutput{Character: mutated}, nil
}

// ModifyItem applies a catalog modification to a stack
func (o *Orchestrator) ModifyItem(
	ctx context.Context,
	input *character.ModifyItemInput,
) (*character.ModifyItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateRequired("modification_name", input.ModificationName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	mod, err := o.catalogModification(ctx, input.ModificationName)
	if err != nil {
		return nil, err
	}

	mutated, err := o.mutateInventory(ctx, input.CharacterID, func(c *paranormal.Character) ([]paranormal.InventoryItem, error) {
		return inventory.Modify(c.Inventory, input.Index, mod, c.Capacity)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to modify item")
	}

	return &character.ModifyItemOutput{Character: mutated}, nil
}

// RemoveItem drops a stack
func (o *Orchestrator) RemoveItem(
	ctx context.Context,
	input *character.RemoveItemInput,
) (*character.RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	mutated, err := o.mutateInventory(ctx, input.CharacterID, func(c *paranormal.Character) ([]paranormal.InventoryItem, error) {
		return inventory.Remove(c.Inventory, input.Index)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove item")
	}

	return &character.RemoveItemOutput{Character: mutated}, nil
}

func (o *Orchestrator) mutateInventory(
	ctx context.Context,
	id string,
	edit func(c *paranormal.Character) ([]paranormal.InventoryItem, error),
) (*paranormal.Character, error) {
	mutated, err := o.characterRepo.Mutate(ctx, characterrepo.MutateInput{
		ID: id,
		Mutate: func(c *paranormal.Character) error {
			next, err := edit(c)
			if err != nil {
				return err
			}
			c.Inventory = next
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return mutated.Character, nil
}
