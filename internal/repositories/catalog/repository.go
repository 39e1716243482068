// Package catalog persists the reference tables (skills, weapons, rituals and
// the rest) that character sheets draw from
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/paranormal-api/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
)

// Repository defines the interface for catalog persistence. Entry names are
// matched case-insensitively.
type Repository interface {
	// List returns every entry of a kind ordered by name
	// Returns errors.InvalidArgument for unknown kinds
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get returns one entry
	// Returns errors.NotFound if no entry has that name
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put creates or replaces an entry after validating it
	// Returns errors.InvalidArgument for validation failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes an entry
	// Returns errors.NotFound if no entry has that name
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Seed loads many entries at once, optionally replacing each touched kind
	Seed(ctx context.Context, input SeedInput) (*SeedOutput, error)
}

// ListInput defines the input for listing a kind
type ListInput struct {
	Kind paranormal.CatalogKind
}

// ListOutput defines the output for listing a kind
type ListOutput struct {
	Entries []paranormal.CatalogEntry
}

// GetInput defines the input for getting an entry
type GetInput struct {
	Kind paranormal.CatalogKind
	Name string
}

// GetOutput defines the output for getting an entry
type GetOutput struct {
	Entry paranormal.CatalogEntry
}

// PutInput defines the input for storing an entry
type PutInput struct {
	Kind  paranormal.CatalogKind
	Entry paranormal.CatalogEntry
}

// PutOutput defines the output for storing an entry
type PutOutput struct {
	Entry paranormal.CatalogEntry
}

// DeleteInput defines the input for deleting an entry
type DeleteInput struct {
	Kind paranormal.CatalogKind
	Name string
}

// DeleteOutput defines the output for deleting an entry
type DeleteOutput struct{}

// Seeds groups entries by kind
type Seeds map[paranormal.CatalogKind][]paranormal.CatalogEntry

// SeedInput defines the input for seeding
type SeedInput struct {
	Entries Seeds
	// Replace clears each kind present in Entries before writing
	Replace bool
}

// SeedOutput reports how many entries were written per kind
type SeedOutput struct {
	Counts map[paranormal.CatalogKind]int
}
