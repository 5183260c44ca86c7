package entities

// User represents a durable account record
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Character represents the durable game entity a user controls.
// It is created at character-creation time, read at session start, and
// written back when the session disconnects.
type Character struct {
	ID       string   `json:"id"`
	UserID   string   `json:"userId"`
	Name     string   `json:"name"`
	Class    string   `json:"class"`
	Gender   string   `json:"gender"`
	Model    string   `json:"model"`
	Color    string   `json:"color"`
	Level    int32    `json:"level"`
	Health   int32    `json:"health"`
	Mana     int32    `json:"mana"`
	Position Position `json:"position"`
}

// CharacterState is the durable projection written back on disconnect.
type CharacterState struct {
	Position Position
	Level    int32
	Health   int32
	Mana     int32
}
