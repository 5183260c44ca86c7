package entities

// WorldItem is a transient, ownerless pickable object in the shared
// world. IDs are assigned monotonically by the world registry.
type WorldItem struct {
	ID       int64    `json:"id"`
	Type     ItemType `json:"type"`
	Position Position `json:"position"`
}
