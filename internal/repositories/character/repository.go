// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/emberhollow/realmd/internal/repositories/character Repository

import (
	"context"

	"github.com/emberhollow/realmd/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create creates a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if character with same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// BelongsToUser reports whether the character is owned by the user.
	// Returns errors.NotFound if the character doesn't exist
	BelongsToUser(ctx context.Context, input BelongsToUserInput) (*BelongsToUserOutput, error)

	// UpdateState writes back the durable projection of a live session:
	// position and stats. All other character fields are untouched.
	// Returns errors.NotFound if the character doesn't exist
	UpdateState(ctx context.Context, input UpdateStateInput) (*UpdateStateOutput, error)

	// ListByUserID retrieves all characters owned by a user
	// Returns errors.InvalidArgument for empty/invalid user IDs
	ListByUserID(ctx context.Context, input ListByUserIDInput) (*ListByUserIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// BelongsToUserInput defines the input for the ownership check
type BelongsToUserInput struct {
	CharacterID string
	UserID      string
}

// BelongsToUserOutput defines the output for the ownership check
type BelongsToUserOutput struct {
	OK bool
}

// UpdateStateInput defines the input for the disconnect write-back
type UpdateStateInput struct {
	CharacterID string
	State       entities.CharacterState
}

// UpdateStateOutput defines the output for the disconnect write-back
type UpdateStateOutput struct {
	Character *entities.Character
}

// ListByUserIDInput defines the input for listing characters by user
type ListByUserIDInput struct {
	UserID string
}

// ListByUserIDOutput defines the output for listing characters by user
type ListByUserIDOutput struct {
	Characters []*entities.Character
}
