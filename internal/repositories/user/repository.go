// Package user provides the interface for user account persistence
package user

//go:generate mockgen -destination=mock/mock_repository.go -package=usermock github.com/emberhollow/realmd/internal/repositories/user Repository

import (
	"context"

	"github.com/emberhollow/realmd/internal/entities"
)

// Repository defines the interface for user account reads. Account
// creation and credential management live outside the session core.
type Repository interface {
	// Get retrieves a user by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the user doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// GetInput defines the input for getting a user
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a user
type GetOutput struct {
	User *entities.User
}
