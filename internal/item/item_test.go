package item

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestLightEffectFollow(t *testing.T) {
	tests := []struct {
		name       string
		pos        rl.Vector3
		mouse      rl.Vector2
		wantLight  rl.Vector3
		wantTarget rl.Vector3
	}{
		{"centered mouse", rl.NewVector3(1, 0.15, 2), rl.NewVector2(0, 0), rl.NewVector3(1, 1.35, 2), rl.NewVector3(1, 0, 2)},
		{"mouse up aims at -Z", rl.NewVector3(0, 0, 0), rl.NewVector2(0, 1), rl.NewVector3(0, 1.2, 0), rl.NewVector3(0, 0, -15)},
		{"mouse right aims at +X", rl.NewVector3(0, 0, 0), rl.NewVector2(1, 0), rl.NewVector3(0, 1.2, 0), rl.NewVector3(15, 0, 0)},
		{"half deflection", rl.NewVector3(2, 0, -1), rl.NewVector2(-0.5, -0.5), rl.NewVector3(2, 1.2, -1), rl.NewVector3(-5.5, 0, 6.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewLightEffect(DefaultLanternSettings())
			e.Update(0.016, tt.pos, tt.mouse)
			if !near(e.Light.Position, tt.wantLight) {
				t.Errorf("light = %+v, want %+v", e.Light.Position, tt.wantLight)
			}
			if !near(e.Light.Target, tt.wantTarget) {
				t.Errorf("target = %+v, want %+v", e.Light.Target, tt.wantTarget)
			}
		})
	}
}

func TestLightEffectIsStateless(t *testing.T) {
	e := NewLightEffect(DefaultLanternSettings())
	e.Update(0.016, rl.NewVector3(5, 0, 5), rl.NewVector2(1, 1))
	e.Update(0.5, rl.NewVector3(0, 0, 0), rl.NewVector2(0, 0))
	if !near(e.Light.Target, rl.NewVector3(0, 0, 0)) {
		t.Errorf("target depends on history: %+v", e.Light.Target)
	}
}

type countingEffect struct {
	updates  int
	disposed bool
	last     rl.Vector3
}

func (c *countingEffect) Update(_ float32, p rl.Vector3, _ rl.Vector2) {
	c.updates++
	c.last = p
}

func (c *countingEffect) Dispose() { c.disposed = true }

func TestItemUpdateAndDispose(t *testing.T) {
	a, b := &countingEffect{}, &countingEffect{}
	it := &Item{Effects: []Effect{a, b}}
	it.Update(0.016, rl.NewVector3(1, 2, 3), rl.Vector2{})
	if a.updates != 1 || b.updates != 1 || a.last != rl.NewVector3(1, 2, 3) {
		t.Fatalf("effects not updated: %+v %+v", a, b)
	}
	it.Dispose()
	if !a.disposed || !b.disposed {
		t.Error("effects not disposed")
	}
	it.Update(0.016, rl.Vector3{}, rl.Vector2{})
	if a.updates != 1 {
		t.Error("disposed item still runs effects")
	}
}

func TestNewLantern(t *testing.T) {
	it, light := NewLantern(DefaultLanternSettings())
	if len(it.Effects) != 1 || len(it.Parts) == 0 {
		t.Fatalf("lantern = %+v", it)
	}
	it.Update(0.016, rl.NewVector3(3, 0, 0), rl.Vector2{})
	if light.Position.X != 3 {
		t.Errorf("returned light is not the one the effect drives")
	}
	it.Dispose()
	if light.Enabled {
		t.Error("light still enabled after the lantern was dropped")
	}
}

func near(a, b rl.Vector3) bool {
	d := rl.Vector3Subtract(a, b)
	return d.X*d.X+d.Y*d.Y+d.Z*d.Z < 1e-8
}

func TestLanternSettingsMerge(t *testing.T) {
	override := struct {
		Range     float32
		Intensity float32
		Unknown   string
	}{Range: 8}
	got, err := DefaultLanternSettings().Merge(override)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if got.Range != 8 {
		t.Errorf("Range = %v, want 8", got.Range)
	}
	if got.Intensity != 3 {
		t.Errorf("zero override replaced Intensity: %v", got.Intensity)
	}
}
