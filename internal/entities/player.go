package entities

// Player is the ephemeral in-memory record for one active connection.
// It is never persisted directly; its durable projection is Character +
// Inventory. The session orchestrator exclusively owns the player table
// and is the only component that mutates a Player.
type Player struct {
	SessionID   string
	CharacterID string
	UserID      string

	Name   string
	Class  string
	Gender string
	Model  string
	Color  string
	Level  int32
	Health int32
	Mana   int32

	Position  Position
	Rotation  Rotation
	Animation string

	// LastValidated is the last position accepted by the movement
	// validator; corrections snap the client back to it.
	LastValidated Position

	Inventory Inventory
}

// NewPlayer binds a freshly assigned session id to a loaded character.
func NewPlayer(sessionID string, character *Character, inventory Inventory) *Player {
	if inventory == nil {
		inventory = NewInventory()
	}
	return &Player{
		SessionID:     sessionID,
		CharacterID:   character.ID,
		UserID:        character.UserID,
		Name:          character.Name,
		Class:         character.Class,
		Gender:        character.Gender,
		Model:         character.Model,
		Color:         character.Color,
		Level:         character.Level,
		Health:        character.Health,
		Mana:          character.Mana,
		Position:      character.Position,
		Rotation:      IdentityRotation(),
		Animation:     "idle",
		LastValidated: character.Position,
		Inventory:     inventory,
	}
}

// PublicState is the projection of a player broadcast to other sessions.
// Inventory contents and the owning user id stay private to the owner.
type PublicState struct {
	SessionID string   `json:"id"`
	Name      string   `json:"name"`
	Model     string   `json:"model"`
	Color     string   `json:"color"`
	Position  Position `json:"position"`
	Rotation  Rotation `json:"rotation"`
	Animation string   `json:"animation"`
}

// PublicState returns the broadcastable view of the player.
func (p *Player) PublicState() PublicState {
	return PublicState{
		SessionID: p.SessionID,
		Name:      p.Name,
		Model:     p.Model,
		Color:     p.Color,
		Position:  p.Position,
		Rotation:  p.Rotation,
		Animation: p.Animation,
	}
}

// CharacterState returns the durable projection written on disconnect.
func (p *Player) CharacterState() CharacterState {
	return CharacterState{
		Position: p.Position,
		Level:    p.Level,
		Health:   p.Health,
		Mana:     p.Mana,
	}
}
