package session

import (
	"github.com/emberhollow/realmd/internal/entities"
	"github.com/emberhollow/realmd/internal/orchestrators/world"
)

//go:generate mockgen -destination=mock/mock_session.go -package=sessionmock github.com/emberhollow/realmd/internal/orchestrators/session Notifier,WorldRegistry

// Notifier delivers events to connected sessions. The websocket hub
// implements it; tests substitute a mock.
type Notifier interface {
	// Unicast sends an event to one session.
	Unicast(sessionID, event string, payload any)
	// Broadcast sends an event to every session.
	Broadcast(event string, payload any)
	// BroadcastExcept sends an event to every session but one, used for
	// echoes the originator already knows about.
	BroadcastExcept(sessionID, event string, payload any)
}

// WorldRegistry is the slice of the world registry the session core
// drives. The concrete *world.Registry satisfies it.
type WorldRegistry interface {
	Items() []entities.WorldItem
	Get(id int64) (entities.WorldItem, error)
	Remove(id int64) (*world.RemovedItem, error)
	ScheduleRespawn(itemType entities.ItemType)
	SpawnAt(itemType entities.ItemType, pos entities.Position) entities.WorldItem
}

// ConnectInput defines the input for binding a connection to a character
type ConnectInput struct {
	SessionID   string
	UserID      string
	CharacterID string
}

// ConnectOutput defines the output for a successful connect
type ConnectOutput struct {
	Player entities.PublicState
}

// DisconnectInput defines the input for tearing down a session
type DisconnectInput struct {
	SessionID string
}

// DisconnectOutput defines the output for a disconnect
type DisconnectOutput struct {
	// Empty for now, can be extended later
}

// MoveInput defines a claimed movement for a session
type MoveInput struct {
	SessionID string
	Position  entities.Position
	Rotation  entities.Rotation
	Animation string
}

// MoveOutput defines the verdict for a movement claim
type MoveOutput struct {
	Accepted bool
}

// PickupInput defines the input for picking up a world item
type PickupInput struct {
	SessionID string
	ItemID    int64
}

// PickupOutput defines the output for a successful pickup
type PickupOutput struct {
	SlotIndex int
}

// DropInput defines the input for dropping one unit from a slot
type DropInput struct {
	SessionID string
	SlotIndex int
}

// DropOutput defines the output for a successful drop
type DropOutput struct {
	Item entities.WorldItem
}

// MoveItemInput defines the input for moving a stack between slots
type MoveItemInput struct {
	SessionID string
	FromIndex int
	ToIndex   int
}

// MoveItemOutput defines the output for a slot move
type MoveItemOutput struct {
	// Empty for now, can be extended later
}
