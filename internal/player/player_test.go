package player

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"lanternwalk/internal/input"
	"lanternwalk/internal/item"
	"lanternwalk/internal/motion"
	"lanternwalk/internal/physics"
)

const dt = 0.016

// arena builds the west and north walls of the default level.
func arena() *physics.World {
	w := physics.NewWorld()
	w.AddBody(physics.NewBody(rl.NewVector3(-5, 0.5, 0), rl.NewVector3(1, 1, 4)))
	w.AddBody(physics.NewBody(rl.NewVector3(0, 0.5, 5), rl.NewVector3(10, 1, 0.5)))
	return w
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestMoveFree(t *testing.T) {
	p := New(arena(), DefaultTuning())
	p.Move(rl.NewVector3(0.2, 0, -0.1))
	if p.Position != rl.NewVector3(0.2, 0, -0.1) {
		t.Errorf("Position = %+v", p.Position)
	}
}

func TestMoveSlides(t *testing.T) {
	tests := []struct {
		name  string
		start rl.Vector3
		delta rl.Vector3
		want  rl.Vector3
	}{
		{
			name:  "north wall blocks z, x slides",
			start: rl.NewVector3(0, 0, 4.3),
			delta: rl.NewVector3(0.3, 0, 0.3),
			want:  rl.NewVector3(0.3, 0, 4.3),
		},
		{
			name:  "west wall blocks x, z slides",
			start: rl.NewVector3(-4, 0, 0),
			delta: rl.NewVector3(-0.3, 0, -0.3),
			want:  rl.NewVector3(-4, 0, -0.3),
		},
		{
			name:  "straight into wall stops",
			start: rl.NewVector3(-4, 0, 0),
			delta: rl.NewVector3(-0.3, 0, 0),
			want:  rl.NewVector3(-4, 0, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(arena(), DefaultTuning())
			p.SetPosition(tt.start)
			p.Move(tt.delta)
			if !approx(p.Position.X, tt.want.X) || !approx(p.Position.Z, tt.want.Z) || p.Position.Y != tt.want.Y {
				t.Errorf("Position = %+v, want %+v", p.Position, tt.want)
			}
		})
	}
}

func TestMoveNilWorld(t *testing.T) {
	p := New(nil, DefaultTuning())
	p.Move(rl.NewVector3(-100, 0, 0))
	if p.Position.X != -100 {
		t.Errorf("nil world blocked movement: %+v", p.Position)
	}
}

func TestUpdateKeys(t *testing.T) {
	step := DefaultTuning().Speed * dt
	diag := step / math32.Sqrt(2)
	tests := []struct {
		name   string
		keys   []input.Key
		wantX  float32
		wantZ  float32
		moving bool
	}{
		{"idle", nil, 0, 0, false},
		{"forward is -z", []input.Key{input.KeyForward}, 0, -step, true},
		{"back is +z", []input.Key{input.KeyBack}, 0, step, true},
		{"left is -x", []input.Key{input.KeyLeft}, -step, 0, true},
		{"diagonal is normalized", []input.Key{input.KeyForward, input.KeyRight}, diag, -diag, true},
		{"opposites cancel", []input.Key{input.KeyLeft, input.KeyRight}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(nil, DefaultTuning())
			p.Update(dt, input.NewState(rl.Vector2{}, tt.keys...))
			if !approx(p.Position.X, tt.wantX) || !approx(p.Position.Z, tt.wantZ) {
				t.Errorf("Position = %+v, want (%v, _, %v)", p.Position, tt.wantX, tt.wantZ)
			}
			if p.Moving != tt.moving {
				t.Errorf("Moving = %v, want %v", p.Moving, tt.moving)
			}
		})
	}
}

func TestLowerBodyTurnsOnlyWhileMoving(t *testing.T) {
	p := New(nil, DefaultTuning())
	p.Update(dt, input.NewState(rl.Vector2{}))
	if p.LowerYaw != 0 {
		t.Fatalf("idle frame turned the legs: %v", p.LowerYaw)
	}
	p.Update(dt, input.NewState(rl.Vector2{}, input.KeyRight))
	want := math32.Pi / 2 * DefaultTuning().RotationGain * dt
	if !approx(p.LowerYaw, want) {
		t.Errorf("LowerYaw = %v, want %v", p.LowerYaw, want)
	}
}

func TestUpperBodyAimsAtMouse(t *testing.T) {
	tests := []struct {
		name  string
		mouse rl.Vector2
		want  float32
	}{
		{"mouse right", rl.NewVector2(1, 0), math32.Pi / 2},
		{"mouse left", rl.NewVector2(-1, 0), 3 * math32.Pi / 2},
		{"mouse down", rl.NewVector2(0, -1), 2 * math32.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(nil, DefaultTuning())
			for i := 0; i < 300; i++ {
				p.Update(dt, input.NewState(tt.mouse))
			}
			// Compare headings, not raw angles.
			d := math32.Abs(motion.AngleDiff(p.UpperYaw, tt.want))
			if d > 1e-3 {
				t.Errorf("UpperYaw = %v, want heading %v", p.UpperYaw, tt.want)
			}
		})
	}
}

func TestTeleport(t *testing.T) {
	p := New(arena(), DefaultTuning())
	if p.Teleport(rl.NewVector3(-5, 0, 0)) {
		t.Error("teleport into a wall succeeded")
	}
	if !p.Teleport(rl.NewVector3(2, 0, 2)) || p.Position != rl.NewVector3(2, 0, 2) {
		t.Errorf("teleport to open ground failed: %+v", p.Position)
	}
}

func TestSetSpeed(t *testing.T) {
	p := New(nil, DefaultTuning())
	if err := p.SetSpeed(0); err == nil {
		t.Error("zero speed accepted")
	}
	if err := p.SetSpeed(4); err != nil || p.Tuning().Speed != 4 {
		t.Errorf("SetSpeed(4): err=%v speed=%v", err, p.Tuning().Speed)
	}
}

func TestTuningMerge(t *testing.T) {
	got, err := DefaultTuning().Merge(&struct{ Speed float32 }{Speed: 6})
	if err != nil {
		t.Fatal(err)
	}
	if got.Speed != 6 || got.Radius != 0.3 || got.RotationGain != 10 {
		t.Errorf("Merge = %+v", got)
	}
}

type probe struct {
	pos   rl.Vector3
	mouse rl.Vector2
	calls int
	gone  bool
}

func (p *probe) Update(_ float32, pos rl.Vector3, mouse rl.Vector2) {
	p.pos, p.mouse = pos, mouse
	p.calls++
}

func (p *probe) Dispose() { p.gone = true }

func TestEquipReplacesAndDisposes(t *testing.T) {
	p := New(nil, DefaultTuning())
	first := &probe{}
	p.Equip(LeftHand, &item.Item{Effects: []item.Effect{first}})
	second := &probe{}
	p.Equip(LeftHand, &item.Item{Effects: []item.Effect{second}})
	if !first.gone {
		t.Error("replaced item was not disposed")
	}
	p.Update(dt, input.NewState(rl.Vector2{}))
	if first.calls != 0 || second.calls != 1 {
		t.Errorf("calls: first=%d second=%d", first.calls, second.calls)
	}
	p.Unequip(LeftHand)
	if !second.gone || p.Held(LeftHand) != nil {
		t.Error("unequip did not release the slot")
	}
}

func TestItemEffectGetsWorldPosition(t *testing.T) {
	p := New(nil, DefaultTuning())
	p.SetPosition(rl.NewVector3(1, 0, 1))
	pr := &probe{}
	p.Equip(LeftHand, &item.Item{Effects: []item.Effect{pr}})

	// Already facing the mouse (screen up): upper body turned by pi.
	p.UpperYaw = math32.Pi
	mouse := rl.NewVector2(0, 1)
	p.Update(dt, input.NewState(mouse))

	// Left grip (-0.2, _, 0.15) turned by pi lands at (+0.2, _, -0.15).
	if math32.Abs(pr.pos.X-1.2) > 1e-3 || math32.Abs(pr.pos.Z-0.85) > 1e-3 {
		t.Errorf("item position = %+v, want (1.2, _, 0.85)", pr.pos)
	}
	if math32.Abs(pr.pos.Y-0.15) > 0.01 {
		t.Errorf("item height = %v, want about 0.15", pr.pos.Y)
	}
	if pr.mouse != mouse {
		t.Errorf("mouse = %+v", pr.mouse)
	}
}

func TestLanternFollowsPlayer(t *testing.T) {
	p := New(nil, DefaultTuning())
	lantern, light := item.NewLantern(item.DefaultLanternSettings())
	p.Equip(LeftHand, lantern)
	for i := 0; i < 10; i++ {
		p.Update(dt, input.NewState(rl.Vector2{}, input.KeyBack))
	}
	grip := p.ItemPosition(LeftHand)
	if math32.Abs(light.Position.Z-grip.Z) > 1e-4 || math32.Abs(light.Position.Y-(grip.Y+1.2)) > 1e-4 {
		t.Errorf("light %+v not above grip %+v", light.Position, grip)
	}
}

func TestSlotString(t *testing.T) {
	if LeftHand.String() != "left hand" || Slot(7).String() != "slot(7)" {
		t.Error("unexpected slot names")
	}
}
