package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lanternwalk/internal/motion"
	"lanternwalk/internal/player"
	"lanternwalk/internal/primitives"
)

var (
	limbColor     = rl.NewColor(0x66, 0x66, 0x66, 0xff)
	shoulderColor = rl.NewColor(0x77, 0x77, 0x77, 0xff)
	headColor     = rl.NewColor(0x88, 0x88, 0x88, 0xff)

	legSize      = rl.NewVector3(0.08, 0.02, 0.2)
	armSize      = rl.NewVector3(0.06, 0.02, 0.2)
	shoulderSize = rl.NewVector3(0.46, 0.04, 0.24)
	shoulderAt   = rl.NewVector3(0, 0.15, 0)
	headSize     = rl.NewVector3(0.3, 0.04, 0.3)
	headAt       = rl.NewVector3(0, 0.2, 0.1)
)

// part returns the transform of a unit primitive scaled to size, placed at local inside
// a frame turned by yaw and moved to origin.
func part(size, local rl.Vector3, yaw float32, origin rl.Vector3) rl.Matrix {
	m := rl.MatrixMultiply(rl.MatrixScale(size.X, size.Y, size.Z), rl.MatrixTranslate(local.X, local.Y, local.Z))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(yaw))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(origin.X, origin.Y, origin.Z))
}

// drawAvatar draws legs in the lower-body frame, torso, head, arms and held items in the
// upper-body frame, and a short line showing which way the legs face.
func drawAvatar(prims *primitives.Registry, p *player.Player) {
	pos := p.Position
	pose := &p.Pose

	for _, leg := range pose.Legs {
		prims.DrawTransform(primitives.Cube, part(legSize, leg, p.LowerYaw, pos), limbColor, false)
	}

	lift := rl.NewVector3(0, pose.Breath, 0)
	upper := func(v rl.Vector3) rl.Vector3 { return rl.Vector3Add(v, lift) }
	prims.DrawTransform(primitives.Cube, part(shoulderSize, upper(shoulderAt), p.UpperYaw, pos), shoulderColor, false)
	prims.DrawTransform(primitives.Sphere, part(headSize, upper(headAt), p.UpperYaw, pos), headColor, false)
	for _, arm := range pose.Arms {
		prims.DrawTransform(primitives.Cube, part(armSize, upper(arm), p.UpperYaw, pos), limbColor, false)
	}

	for s := player.LeftHand; s <= player.RightHand; s++ {
		it := p.Held(s)
		if it == nil {
			continue
		}
		grip := upper(pose.Items[s])
		for _, pt := range it.Parts {
			prims.DrawTransform(pt.Type, part(pt.Scale, rl.Vector3Add(grip, pt.Offset), p.UpperYaw, pos), pt.Color, pt.Emissive)
		}
	}

	fx, fz := facing(p.LowerYaw)
	tip := rl.NewVector3(pos.X+fx, pos.Y+0.01, pos.Z+fz)
	rl.DrawLine3D(rl.NewVector3(pos.X, pos.Y+0.01, pos.Z), tip, directionColor)
}

// facing is the unit XZ direction of yaw.
func facing(yaw float32) (x, z float32) {
	return motion.RotateY(0, 1, yaw)
}
