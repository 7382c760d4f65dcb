package player

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"lanternwalk/internal/motion"
)

const (
	breathRate      = 1.5
	breathDepth     = 0.005
	walkRate        = 12
	strideLength    = 0.15
	strideLift      = 0.05
	armSway         = 0.02
	restBlendFactor = 0.2
)

// Rest positions in body-local space. Index 0 is the left side.
var (
	restLegs  = [2]rl.Vector3{rl.NewVector3(-0.12, 0.1, -0.08), rl.NewVector3(0.12, 0.1, -0.08)}
	restArms  = [numSlots]rl.Vector3{rl.NewVector3(-0.15, 0.15, 0.1), rl.NewVector3(0.15, 0.15, 0.1)}
	restItems = [numSlots]rl.Vector3{rl.NewVector3(-0.2, 0.15, 0.15), rl.NewVector3(0.2, 0.15, 0.15)}
)

// Pose is the procedural animation state of the avatar. Legs live in the lower body
// frame; arms and items in the upper body frame, which is lifted by Breath.
type Pose struct {
	Breath  float32
	Legs    [2]rl.Vector3
	Arms    [numSlots]rl.Vector3
	Items   [numSlots]rl.Vector3
	breathT float32
	walkT   float32
}

// NewPose returns a pose at rest.
func NewPose() Pose {
	return Pose{Legs: restLegs, Arms: restArms, Items: restItems}
}

// Update advances breathing and either the walk cycle or the ease back to rest.
// Only arms holding something sway or get eased.
func (ps *Pose) Update(dt float32, moving bool, holding [numSlots]bool) {
	ps.breathT += dt
	ps.Breath = math32.Sin(ps.breathT*breathRate) * breathDepth

	if !moving {
		for i := range ps.Legs {
			ps.Legs[i] = blend(ps.Legs[i], restLegs[i], restBlendFactor)
		}
		for s, held := range holding {
			if held {
				ps.Arms[s] = blend(ps.Arms[s], restArms[s], restBlendFactor)
				ps.Items[s] = blend(ps.Items[s], restItems[s], restBlendFactor)
			}
		}
		return
	}

	ps.walkT += dt * walkRate
	for i, phase := range [2]float32{ps.walkT, ps.walkT + math32.Pi} {
		step := math32.Sin(phase)
		ps.Legs[i].Z = restLegs[i].Z + step*strideLength
		ps.Legs[i].Y = restLegs[i].Y + max(0, -step)*strideLift
	}

	sway := math32.Sin(ps.walkT) * armSway
	for s, held := range holding {
		if held {
			ps.Arms[s].Z = restArms[s].Z + sway
			ps.Items[s].Z = restItems[s].Z + sway
		}
	}
}

// itemOffset is the body-local grip point of the item in slot s, breathing included.
func (ps *Pose) itemOffset(s Slot) rl.Vector3 {
	o := ps.Items[s]
	o.Y += ps.Breath
	return o
}

func blend(a, b rl.Vector3, t float32) rl.Vector3 {
	return rl.NewVector3(motion.Lerp(a.X, b.X, t), motion.Lerp(a.Y, b.Y, t), motion.Lerp(a.Z, b.Z, t))
}
