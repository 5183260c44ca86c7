package engine

import (
	"context"

	"github.com/emberhollow/realmd/internal/errors"
	"github.com/emberhollow/realmd/internal/tuning"
)

type movementEngine struct {
	maxDistanceSq float64
}

// Config holds the dependencies for the movement engine
type Config struct {
	Movement tuning.Movement
}

// Validate ensures the configuration is usable
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Movement.MaxSpeed <= 0 || cfg.Movement.TickRateHz <= 0 {
		return errors.InvalidArgument("movement constants must be positive")
	}
	return nil
}

// New creates a movement engine from tuning constants
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &movementEngine{
		maxDistanceSq: cfg.Movement.MaxDistanceSq(),
	}, nil
}

func (e *movementEngine) ValidateMovement(
	_ context.Context,
	input *ValidateMovementInput,
) (*ValidateMovementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// Height is excluded: the movement model is ground-based and the
	// client owns small vertical adjustments (slopes, steps).
	distSq := input.LastValidated.PlanarDistanceSq(input.Claimed)
	if distSq > e.maxDistanceSq {
		return &ValidateMovementOutput{
			Accepted:   false,
			Correction: input.LastValidated,
			DistanceSq: distSq,
		}, nil
	}

	return &ValidateMovementOutput{
		Accepted:   true,
		DistanceSq: distSq,
	}, nil
}
