package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// World holds the static bodies of a level and answers sphere overlap queries
// against their axis-aligned colliders. Bodies are added during level setup only.
type World struct {
	bodies    []*Body
	colliders []rl.BoundingBox
}

// NewWorld returns an empty world. A query against it never collides.
func NewWorld() *World {
	return &World{}
}

// AddBody appends a static body and its collider. Order is preserved so collider i
// always belongs to body i.
func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
	w.colliders = append(w.colliders, b.AABB())
}

// Colliders returns the current collider boxes. The slice must not be modified.
func (w *World) Colliders() []rl.BoundingBox {
	return w.colliders
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step re-derives every collider from its body. For static levels this rebuilds
// identical boxes; it exists so bodies moved by tooling (e.g. the console) stay in sync.
func (w *World) Step(dt float32) {
	_ = dt
	for i, b := range w.bodies {
		w.colliders[i] = b.AABB()
	}
}

// CheckSphere reports whether a sphere at center with the given radius intersects any
// collider. It stops at the first hit.
func (w *World) CheckSphere(center rl.Vector3, radius float32) bool {
	for _, box := range w.colliders {
		if SphereIntersectsBox(center, radius, box) {
			return true
		}
	}
	return false
}

// SphereIntersectsBox clamps center into box to find the closest point, then compares
// squared distances. Touching exactly at radius is not an intersection.
func SphereIntersectsBox(center rl.Vector3, radius float32, box rl.BoundingBox) bool {
	closest := rl.NewVector3(
		max(box.Min.X, min(center.X, box.Max.X)),
		max(box.Min.Y, min(center.Y, box.Max.Y)),
		max(box.Min.Z, min(center.Z, box.Max.Z)),
	)
	return rl.Vector3LengthSqr(rl.Vector3Subtract(closest, center)) < radius*radius
}
