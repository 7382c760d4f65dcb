package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Body is a static solid: a center position and full extents on each axis.
// Its collider is derived from it, never stored on it.
type Body struct {
	Position rl.Vector3
	Scale    rl.Vector3
}

// NewBody returns a static body centered at position with the given size.
// Zero size components are treated as 1, as for primitives drawn with scale 0.
func NewBody(position, size rl.Vector3) *Body {
	return &Body{Position: position, Scale: size}
}

// AABB returns the axis-aligned box covering the body.
func (b *Body) AABB() rl.BoundingBox {
	sx, sy, sz := b.Scale.X, b.Scale.Y, b.Scale.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	half := rl.NewVector3(sx*0.5, sy*0.5, sz*0.5)
	return rl.NewBoundingBox(rl.Vector3Subtract(b.Position, half), rl.Vector3Add(b.Position, half))
}
