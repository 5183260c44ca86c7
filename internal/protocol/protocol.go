// Package protocol defines the websocket event surface: envelope
// framing, event names, and payload shapes shared by the transport and
// the session core.
package protocol

import "encoding/json"

// ServerEnvelope frames an outbound event.
type ServerEnvelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// ClientEnvelope frames an inbound event; the payload is decoded once
// the type is known.
type ClientEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Server→client event names.
const (
	// EventCurrentState carries all connected players' public states,
	// sent once to a session right after it connects.
	EventCurrentState = "currentState"
	// EventWorldItems carries the live world item set, sent once on connect.
	EventWorldItems = "worldItems"
	// EventNewPlayer announces a joined player to everyone else.
	EventNewPlayer = "newPlayer"
	// EventPlayerMoved broadcasts an accepted movement to other sessions.
	EventPlayerMoved = "playerMoved"
	// EventCorrection snaps the offending client back to its last
	// validated position. Unicast only, never broadcast.
	EventCorrection = "correction"
	// EventPlayerDisconnected announces a departed session id.
	EventPlayerDisconnected = "playerDisconnected"
	// EventItemPickedUp announces a world item's removal to all sessions.
	EventItemPickedUp = "itemPickedUp"
	// EventItemSpawned announces a new world item to all sessions.
	EventItemSpawned = "itemSpawned"
	// EventInventoryUpdate carries the owner's full slot array. Private.
	EventInventoryUpdate = "inventoryUpdate"
	// EventInfoMessage carries a user-visible notice (inventory full,
	// too far away, persistence warning).
	EventInfoMessage = "infoMessage"
)

// Client→server event names.
const (
	EventPlayerMovement = "playerMovement"
	EventPickupItem     = "pickupItem"
	EventDropItem       = "dropItem"
	EventMoveItem       = "moveItem"
)
