package player

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"

	"lanternwalk/internal/input"
	"lanternwalk/internal/item"
	"lanternwalk/internal/motion"
)

// Collider answers whether a sphere overlaps any solid. physics.World implements it.
type Collider interface {
	CheckSphere(center rl.Vector3, radius float32) bool
}

// Slot is a hand that can hold one item.
type Slot int

const (
	LeftHand Slot = iota
	RightHand
	numSlots
)

func (s Slot) String() string {
	switch s {
	case LeftHand:
		return "left hand"
	case RightHand:
		return "right hand"
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// Tuning holds the movement constants. Radius is fixed for the player's lifetime.
type Tuning struct {
	Speed        float32 // units per second
	Radius       float32 // collision sphere radius
	RotationGain float32 // angular smoothing gain, per second
}

// DefaultTuning returns the stock movement constants.
func DefaultTuning() Tuning {
	return Tuning{Speed: 15, Radius: 0.3, RotationGain: 10}
}

// Merge overlays the non-zero fields of override (any struct with matching field
// names) onto t.
func (t Tuning) Merge(override any) (Tuning, error) {
	if override == nil {
		return t, nil
	}
	if err := copier.CopyWithOption(&t, override, copier.Option{IgnoreEmpty: true}); err != nil {
		return t, fmt.Errorf("player tuning: %w", err)
	}
	return t, nil
}

// Player is the avatar: a position on the ground plane, an upper body that aims at the
// mouse and a lower body that faces the way it walks. Yaw is radians about +Y with
// yaw 0 facing +Z.
type Player struct {
	Position rl.Vector3
	UpperYaw float32
	LowerYaw float32
	Moving   bool
	Pose     Pose

	tuning Tuning
	world  Collider
	hands  [numSlots]*item.Item
}

// New returns a player at the origin. A nil world never blocks movement.
func New(world Collider, t Tuning) *Player {
	return &Player{world: world, tuning: t, Pose: NewPose()}
}

// Tuning returns the active movement constants.
func (p *Player) Tuning() Tuning {
	return p.tuning
}

// SetSpeed changes the movement speed. Non-positive speeds are rejected.
func (p *Player) SetSpeed(speed float32) error {
	if speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", speed)
	}
	p.tuning.Speed = speed
	return nil
}

// SetPosition places the player without a collision check.
func (p *Player) SetPosition(pos rl.Vector3) {
	p.Position = pos
}

// Teleport moves the player to pos if the collision sphere fits there.
func (p *Player) Teleport(pos rl.Vector3) bool {
	if p.blocked(pos) {
		return false
	}
	p.Position = pos
	return true
}

// Equip puts it in slot s. Whatever was held there is disposed.
func (p *Player) Equip(s Slot, it *item.Item) {
	p.Unequip(s)
	p.hands[s] = it
	p.Pose.Arms[s] = restArms[s]
	p.Pose.Items[s] = restItems[s]
}

// Unequip drops and disposes the item in slot s, if any.
func (p *Player) Unequip(s Slot) {
	if old := p.hands[s]; old != nil {
		old.Dispose()
		p.hands[s] = nil
	}
}

// Held returns the item in slot s, or nil.
func (p *Player) Held(s Slot) *item.Item {
	return p.hands[s]
}

// ItemPosition returns the world position of slot s's grip point.
func (p *Player) ItemPosition(s Slot) rl.Vector3 {
	o := p.Pose.itemOffset(s)
	x, z := motion.RotateY(o.X, o.Z, p.UpperYaw)
	return rl.NewVector3(p.Position.X+x, p.Position.Y+o.Y, p.Position.Z+z)
}

// Update runs one frame: aim, move with wall sliding, turn the legs toward the
// walking direction, animate, then run held-item effects.
func (p *Player) Update(dt float32, in input.State) {
	gain := p.tuning.RotationGain
	aim := math32.Atan2(-in.Mouse.X, in.Mouse.Y) + math32.Pi
	p.UpperYaw = motion.SmoothAngle(p.UpperYaw, aim, gain, dt)

	dir := rl.Vector3{}
	if in.Down(input.KeyForward) {
		dir.Z--
	}
	if in.Down(input.KeyBack) {
		dir.Z++
	}
	if in.Down(input.KeyLeft) {
		dir.X--
	}
	if in.Down(input.KeyRight) {
		dir.X++
	}

	p.Moving = dir.X != 0 || dir.Z != 0
	if p.Moving {
		step := rl.Vector3Scale(rl.Vector3Normalize(dir), p.tuning.Speed*dt)
		p.Move(step)
		p.LowerYaw = motion.SmoothAngle(p.LowerYaw, math32.Atan2(step.X, step.Z), gain, dt)
	}

	var holding [numSlots]bool
	for s, it := range p.hands {
		holding[s] = it != nil
	}
	p.Pose.Update(dt, p.Moving, holding)

	for s, it := range p.hands {
		if it != nil {
			it.Update(dt, p.ItemPosition(Slot(s)), in.Mouse)
		}
	}
}

// Move applies delta, sliding along walls: if the full move is blocked, the X and Z
// components are each tried from the current position and kept when clear.
func (p *Player) Move(delta rl.Vector3) {
	next := rl.Vector3Add(p.Position, delta)
	if !p.blocked(next) {
		p.Position = next
		return
	}
	tryX, tryZ := p.Position, p.Position
	tryX.X += delta.X
	tryZ.Z += delta.Z
	if !p.blocked(tryX) {
		p.Position.X = tryX.X
	}
	if !p.blocked(tryZ) {
		p.Position.Z = tryZ.Z
	}
}

func (p *Player) blocked(pos rl.Vector3) bool {
	return p.world != nil && p.world.CheckSphere(pos, p.tuning.Radius)
}
