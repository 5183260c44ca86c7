package protocol

import "github.com/emberhollow/realmd/internal/entities"

// MovementPayload is a client's claimed new transform.
type MovementPayload struct {
	X         float64           `json:"x"`
	Y         float64           `json:"y"`
	Z         float64           `json:"z"`
	Rotation  entities.Rotation `json:"rotation"`
	Animation string            `json:"animation"`
}

// Position returns the claimed position as an entity value.
func (p MovementPayload) Position() entities.Position {
	return entities.Position{X: p.X, Y: p.Y, Z: p.Z}
}

// PickupItemPayload asks to pick up a world item.
type PickupItemPayload struct {
	ItemID int64 `json:"itemId"`
}

// DropItemPayload asks to drop one unit from a slot.
type DropItemPayload struct {
	SlotIndex int `json:"slotIndex"`
}

// MoveItemPayload asks to move or merge a stack between two slots.
type MoveItemPayload struct {
	FromIndex int `json:"fromIndex"`
	ToIndex   int `json:"toIndex"`
}

// CorrectionPayload snaps a client back to its last validated position.
type CorrectionPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// InfoMessagePayload is a user-visible notice.
type InfoMessagePayload struct {
	Message string `json:"message"`
}
