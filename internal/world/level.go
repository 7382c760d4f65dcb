package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lanternwalk/internal/physics"
)

// GroundColor is the albedo of the ground plane.
var GroundColor = rl.NewColor(0x3a, 0x3a, 0x3a, 0xff)

// Level is a built layout: its shapes for drawing and a physics world holding one
// static body per shape, in the same order.
type Level struct {
	Layout  Layout
	Physics *physics.World
}

// Build creates the physics bodies for every shape in l. The collider set is fixed
// from here on.
func Build(l Layout) *Level {
	pw := physics.NewWorld()
	for _, s := range l.Shapes {
		pw.AddBody(physics.NewBody(s.Center(), s.Extent()))
	}
	return &Level{Layout: l, Physics: pw}
}

// Spawn is where the player starts.
func (lv *Level) Spawn() rl.Vector3 {
	p := lv.Layout.Spawn
	return rl.NewVector3(p[0], p[1], p[2])
}

// Update runs the per-frame collider refresh.
func (lv *Level) Update(dt float32) {
	lv.Physics.Step(dt)
}

// CheckSphere reports whether a sphere overlaps any solid in the level.
func (lv *Level) CheckSphere(center rl.Vector3, radius float32) bool {
	return lv.Physics.CheckSphere(center, radius)
}
