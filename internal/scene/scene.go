package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lanternwalk/internal/item"
	"lanternwalk/internal/player"
	"lanternwalk/internal/primitives"
	"lanternwalk/internal/world"
)

const (
	cameraHeight   = 8
	cameraFovy     = 60
	gridExtent     = 50
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	groundY        = -0.01 // just under the feet so the grid and legs don't z-fight with it
)

var (
	directionColor = rl.NewColor(0, 255, 0, 255)
	colliderColor  = rl.NewColor(255, 80, 80, 200)
)

// Scene holds the top-down camera and draws the level, the avatar and the lantern
// light. The camera looks straight down with world -Z at the top of the screen.
type Scene struct {
	Camera           rl.Camera3D
	GridVisible      bool
	CollidersVisible bool
	prims            *primitives.Registry
}

// New returns a scene whose camera hovers over the origin.
func New() *Scene {
	s := &Scene{prims: primitives.NewRegistry()}
	s.Camera.Up = rl.NewVector3(0, 0, -1)
	s.Camera.Fovy = cameraFovy
	s.Camera.Projection = rl.CameraPerspective
	s.Follow(rl.Vector3{})
	return s
}

// Follow keeps the camera at a fixed height directly above target.
func (s *Scene) Follow(target rl.Vector3) {
	s.Camera.Position = rl.NewVector3(target.X, cameraHeight, target.Z)
	s.Camera.Target = rl.NewVector3(target.X, 0, target.Z)
}

// Lighting builds the frame's light rig from the lantern's spot light.
// A nil or disabled light leaves only the ambient term.
func Lighting(light *item.SpotLight, glowAt rl.Vector3) primitives.Lighting {
	l := primitives.DefaultLighting()
	if light == nil || !light.Enabled {
		return l
	}
	st := light.Settings
	l.SpotPosition = light.Position
	l.SpotTarget = light.Target
	l.SpotColor = light.Color
	l.SpotIntensity = st.Intensity
	l.SpotAngle = st.Angle
	l.SpotPenumbra = st.Penumbra
	l.SpotDistance = st.Distance
	l.SpotDecay = st.Decay
	l.GlowPosition = glowAt
	l.GlowColor = light.Color
	l.GlowIntensity = st.Glow
	l.GlowRange = st.GlowRange
	return l
}

// Draw renders the 3D scene. Call between BeginDrawing and EndDrawing, before 2D overlays.
func (s *Scene) Draw(lv *world.Level, p *player.Player, light *item.SpotLight) {
	s.prims.SetView(s.Camera.Position, Lighting(light, p.ItemPosition(player.LeftHand)))

	rl.BeginMode3D(s.Camera)
	g := lv.Layout.GroundSize
	s.prims.Draw(primitives.Plane, rl.NewVector3(0, groundY, 0), rl.NewVector3(g, 1, g), world.GroundColor)
	for _, sh := range lv.Layout.Shapes {
		s.prims.Draw(sh.Primitive(), sh.Center(), sh.Extent(), sh.Color())
	}
	drawAvatar(s.prims, p)
	if s.GridVisible {
		drawGrid()
	}
	if s.CollidersVisible {
		for _, box := range lv.Physics.Colliders() {
			rl.DrawBoundingBox(box, colliderColor)
		}
	}
	rl.EndMode3D()
}

// Unload releases GPU resources.
func (s *Scene) Unload() {
	s.prims.Unload()
}

// drawGrid draws a grid on the XZ plane with major lines every gridMajorStep units.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i++ {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Z = -gridExtent, float32(i)
		end.X, end.Z = gridExtent, float32(i)
		rl.DrawLine3D(start, end, c)
	}
}
