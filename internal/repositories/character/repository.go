// Package character persists character records
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/paranormal-api/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
)

// MutateFunc edits a character in place. Returning an error aborts the
// mutation and nothing is written.
type MutateFunc func(char *paranormal.Character) error

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if character with same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID, normalizing legacy records
	// Returns errors.NotFound if character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character
	// Returns errors.NotFound if character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character and its index entries
	// Returns errors.NotFound if character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every character
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByPlayerID retrieves all characters for a player
	// Returns errors.InvalidArgument for empty player IDs
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// Mutate runs a read-modify-write against one character atomically.
	// Concurrent writers are retried; the function may run more than once.
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Aborted when retries are exhausted
	Mutate(ctx context.Context, input MutateInput) (*MutateOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *paranormal.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *paranormal.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *paranormal.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *paranormal.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *paranormal.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing every character
type ListInput struct{}

// ListOutput defines the output for listing every character
type ListOutput struct {
	Characters []*paranormal.Character
}

// ListByPlayerIDInput defines the input for listing characters by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing characters by player
type ListByPlayerIDOutput struct {
	Characters []*paranormal.Character
}

// MutateInput names the character and the edit to apply
type MutateInput struct {
	ID     string
	Mutate MutateFunc
}

// MutateOutput holds the character as written
type MutateOutput struct {
	Character *paranormal.Character
}
