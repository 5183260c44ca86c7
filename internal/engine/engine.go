// Package engine implements server-side game rule checks
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/emberhollow/realmd/internal/engine Engine

import (
	"context"

	"github.com/emberhollow/realmd/internal/entities"
)

// Engine validates untrusted client claims against game rules.
// It is deliberately coarse: it bounds cheating speed, not precise
// trajectory — there is no server-side physics simulation.
type Engine interface {
	// ValidateMovement checks a claimed position against the last
	// validated one. It never mutates player state; the caller commits
	// accepted claims and unicasts corrections for rejected ones.
	ValidateMovement(ctx context.Context, input *ValidateMovementInput) (*ValidateMovementOutput, error)
}

// ValidateMovementInput contains the movement claim to validate
type ValidateMovementInput struct {
	LastValidated entities.Position
	Claimed       entities.Position
}

// ValidateMovementOutput contains the validation verdict
type ValidateMovementOutput struct {
	Accepted bool
	// Correction is the last validated position, set when rejected.
	Correction entities.Position
	// DistanceSq is the planar squared distance that was checked.
	DistanceSq float64
}
