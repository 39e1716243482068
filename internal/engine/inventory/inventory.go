// Package inventory accounts for carried space. Every mutation returns a new
// slice; a mutation that would overflow capacity fails with CapacityExceeded
// and leaves the input untouched.
package inventory

import (
	"math"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
)

// Bounds on a single stack
const (
	MaxUnitSpace = 100
	MaxQuantity  = 1000
)

// EffectiveUnitSpace is the space one unit occupies after space effects,
// never below zero and saturating at math.MaxInt
func EffectiveUnitSpace(item paranormal.InventoryItem) int {
	cost := max(item.SpaceCost, 0)
	reduction := item.EffectTotal(paranormal.EffectSpace)
	switch {
	case reduction >= cost:
		return 0
	case reduction < -(math.MaxInt - cost):
		return math.MaxInt
	}
	return cost - reduction
}

// ItemSpace is the space the whole stack occupies, saturating at math.MaxInt
func ItemSpace(item paranormal.InventoryItem) int {
	unit := EffectiveUnitSpace(item)
	if unit == 0 || item.Quantity <= 0 {
		return 0
	}
	if item.Quantity > math.MaxInt/unit {
		return math.MaxInt
	}
	return unit * item.Quantity
}

// TotalSpace sums the space of every stack, saturating at math.MaxInt
func TotalSpace(items []paranormal.InventoryItem) int {
	total := 0
	for _, item := range items {
		space := ItemSpace(item)
		if space > math.MaxInt-total {
			return math.MaxInt
		}
		total += space
	}
	return total
}

// Fits reports whether items fit within capacity
func Fits(items []paranormal.InventoryItem, capacity int) bool {
	return TotalSpace(items) <= capacity
}

func commit(next []paranormal.InventoryItem, capacity int) ([]paranormal.InventoryItem, error) {
	if required := TotalSpace(next); required > capacity {
		return nil, errors.CapacityExceeded(capacity, required)
	}
	return next, nil
}

// ValidateItem checks the fields every stack needs
func ValidateItem(item paranormal.InventoryItem) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", item.Name, vb)
	errors.ValidateRange("space", item.SpaceCost, 0, MaxUnitSpace, vb)
	errors.ValidateRange("quantity", item.Quantity, 1, MaxQuantity, vb)
	return vb.Build()
}

func checkIndex(items []paranormal.InventoryItem, index int) error {
	if index < 0 || index >= len(items) {
		return errors.OutOfRangef("inventory index %d outside [0, %d)", index, len(items))
	}
	return nil
}

// Add appends item
func Add(items []paranormal.InventoryItem, item paranormal.InventoryItem, capacity int) ([]paranormal.InventoryItem, error) {
	if err := ValidateItem(item); err != nil {
		return nil, err
	}

	next := paranormal.CloneItems(items)
	next = append(next, item.Clone())
	return commit(next, capacity)
}

// Increment changes the quantity of the stack at index by delta. A stack that
// drops to zero is removed.
func Increment(items []paranormal.InventoryItem, index, delta, capacity int) ([]paranormal.InventoryItem, error) {
	if err := checkIndex(items, index); err != nil {
		return nil, err
	}

	next := paranormal.CloneItems(items)
	current := max(next[index].Quantity, 0)
	switch {
	case delta < -current:
		return nil, errors.InvalidArgumentf("cannot remove more than %d %s", current, next[index].Name)
	case delta == -current:
		return Remove(items, index)
	case delta <= 0:
		// Shrinking never fails, even on an inventory that is already over capacity
		next[index].Quantity = current + delta
		return next, nil
	}

	quantity := math.MaxInt
	if delta <= math.MaxInt-current {
		quantity = current + delta
	}
	next[index].Quantity = quantity
	if _, err := commit(next, capacity); err != nil {
		return nil, err
	}
	if quantity > MaxQuantity {
		return nil, errors.InvalidArgumentf("%s stack cannot exceed %d units", next[index].Name, MaxQuantity)
	}
	return next, nil
}

// Modify applies a modification to the stack at index
func Modify(items []paranormal.InventoryItem, index int, mod paranormal.Modification, capacity int) ([]paranormal.InventoryItem, error) {
	if err := checkIndex(items, index); err != nil {
		return nil, err
	}
	if mod.Name == "" {
		return nil, errors.InvalidArgument("modification name is required")
	}
	for _, existing := range items[index].Modifications {
		if existing.Name == mod.Name {
			return nil, errors.AlreadyExistsf("%s already has modification %s", items[index].Name, mod.Name)
		}
	}

	next := paranormal.CloneItems(items)
	next[index].Modifications = append(next[index].Modifications, paranormal.Modification{
		Name:    mod.Name,
		Effects: append([]paranormal.Effect(nil), mod.Effects...),
	})
	return commit(next, capacity)
}

// Remove drops the stack at index
func Remove(items []paranormal.InventoryItem, index int) ([]paranormal.InventoryItem, error) {
	if err := checkIndex(items, index); err != nil {
		return nil, err
	}

	next := make([]paranormal.InventoryItem, 0, len(items)-1)
	for i, item := range items {
		if i != index {
			next = append(next, item.Clone())
		}
	}
	return next, nil
}
