// Package tuning loads deployment-specific gameplay constants from a
// YAML file. Every value has a default so a server can run without one.
package tuning

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/emberhollow/realmd/internal/entities"
)

// Tuning holds all gameplay constants for one deployment.
type Tuning struct {
	Movement Movement `yaml:"movement"`
	World    World    `yaml:"world"`
}

// Movement bounds how far a client may claim to travel per update.
type Movement struct {
	// MaxSpeed is the maximum legitimate speed in world-units/second.
	MaxSpeed float64 `yaml:"max_speed"`
	// TickRateHz is the expected client update rate.
	TickRateHz float64 `yaml:"tick_rate_hz"`
	// Tolerance absorbs network jitter and imprecise client timing.
	Tolerance float64 `yaml:"tolerance"`
}

// MaxDistancePerTick returns the accepted per-update travel distance.
func (m Movement) MaxDistancePerTick() float64 {
	return m.MaxSpeed / m.TickRateHz * m.Tolerance
}

// MaxDistanceSq returns the squared distance bound used for validation.
func (m Movement) MaxDistanceSq() float64 {
	d := m.MaxDistancePerTick()
	return d * d
}

// World configures the item population and pickup rules.
type World struct {
	ItemTypes           []entities.ItemType `yaml:"item_types"`
	MaxItemsPerType     int                 `yaml:"max_items_per_type"`
	RespawnDelaySeconds int                 `yaml:"respawn_delay_seconds"`
	Bounds              Bounds              `yaml:"bounds"`
	ItemY               float64             `yaml:"item_y"`
	PickupRadius        float64             `yaml:"pickup_radius"`
}

// RespawnDelay returns the respawn delay as a duration.
func (w World) RespawnDelay() time.Duration {
	return time.Duration(w.RespawnDelaySeconds) * time.Second
}

// Bounds is the rectangular play area items spawn into.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

// Default returns the reference constants.
func Default() Tuning {
	return Tuning{
		Movement: Movement{
			MaxSpeed:   15,
			TickRateHz: 10,
			Tolerance:  1.5,
		},
		World: World{
			ItemTypes:           []entities.ItemType{"wood", "stone", "herb", "iron"},
			MaxItemsPerType:     10,
			RespawnDelaySeconds: 30,
			Bounds:              Bounds{MinX: -25, MaxX: 25, MinZ: -25, MaxZ: 25},
			ItemY:               0.5,
			PickupRadius:        2,
		},
	}
}

// Load reads a tuning file, applying defaults for any omitted section.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate rejects configurations the server cannot run with.
func (t Tuning) Validate() error {
	if t.Movement.MaxSpeed <= 0 {
		return fmt.Errorf("tuning: movement.max_speed must be positive")
	}
	if t.Movement.TickRateHz <= 0 {
		return fmt.Errorf("tuning: movement.tick_rate_hz must be positive")
	}
	if t.Movement.Tolerance < 1 {
		return fmt.Errorf("tuning: movement.tolerance must be at least 1")
	}
	if len(t.World.ItemTypes) == 0 {
		return fmt.Errorf("tuning: world.item_types must not be empty")
	}
	if t.World.MaxItemsPerType <= 0 {
		return fmt.Errorf("tuning: world.max_items_per_type must be positive")
	}
	if t.World.RespawnDelaySeconds <= 0 {
		return fmt.Errorf("tuning: world.respawn_delay_seconds must be positive")
	}
	if t.World.Bounds.MaxX <= t.World.Bounds.MinX || t.World.Bounds.MaxZ <= t.World.Bounds.MinZ {
		return fmt.Errorf("tuning: world.bounds must describe a non-empty area")
	}
	if t.World.PickupRadius <= 0 {
		return fmt.Errorf("tuning: world.pickup_radius must be positive")
	}
	return nil
}
