package entities

import "github.com/go-gl/mathgl/mgl64"

// Position is a location in the world. The game uses a ground-based
// movement model: Y is height and is excluded from distance checks.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PlanarDistanceSq returns the squared distance to other on the X/Z plane.
func (p Position) PlanarDistanceSq(other Position) float64 {
	a := mgl64.Vec2{p.X, p.Z}
	b := mgl64.Vec2{other.X, other.Z}
	return a.Sub(b).LenSqr()
}

// PlanarDistance returns the distance to other on the X/Z plane.
func (p Position) PlanarDistance(other Position) float64 {
	a := mgl64.Vec2{p.X, p.Z}
	b := mgl64.Vec2{other.X, other.Z}
	return a.Sub(b).Len()
}

// Rotation is a quaternion orientation as reported by the client.
type Rotation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// IdentityRotation returns the neutral orientation.
func IdentityRotation() Rotation {
	return Rotation{W: 1}
}
