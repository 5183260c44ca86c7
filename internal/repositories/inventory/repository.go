// Package inventory provides the interface for inventory persistence
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/emberhollow/realmd/internal/repositories/inventory Repository

import (
	"context"

	"github.com/emberhollow/realmd/internal/entities"
)

// Repository defines the interface for inventory persistence.
// Saves are all-or-nothing: a failed save leaves the stored inventory
// untouched so the in-memory copy stays the source of truth.
type Repository interface {
	// Get retrieves the fixed-length slot array for a character.
	// Characters with no stored inventory get an empty array.
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the stored inventory with the given slot array in a
	// single transaction (delete-all-then-insert-all).
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput defines the input for getting an inventory
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting an inventory
type GetOutput struct {
	Slots entities.Inventory
}

// SaveInput defines the input for saving an inventory
type SaveInput struct {
	CharacterID string
	Slots       entities.Inventory
}

// SaveOutput defines the output for saving an inventory
type SaveOutput struct {
	// Empty for now, can be extended later
}
