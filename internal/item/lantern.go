package item

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

// LanternSettings tunes the lantern light. Zero values in an override mean "default".
type LanternSettings struct {
	Height    float32 // light height above the lantern
	Range     float32 // distance from the lantern to the aim point at full mouse deflection
	Intensity float32
	Angle     float32 // spot cone half-angle, radians
	Penumbra  float32 // fraction of the cone that fades, 0..1
	Decay     float32
	Distance  float32 // light cutoff distance
	Glow      float32 // intensity of the short-range glow around the lantern
	GlowRange float32
}

// DefaultLanternSettings returns the warm, wide lantern used by the player.
func DefaultLanternSettings() LanternSettings {
	return LanternSettings{
		Height:    1.2,
		Range:     15,
		Intensity: 3,
		Angle:     math32.Pi / 2.5,
		Penumbra:  0.4,
		Decay:     1.2,
		Distance:  35,
		Glow:      0.8,
		GlowRange: 2,
	}
}

// Merge overlays the non-zero fields of override (any struct with matching field names,
// e.g. the config file's lantern section) onto s.
func (s LanternSettings) Merge(override any) (LanternSettings, error) {
	if override == nil {
		return s, nil
	}
	if err := copier.CopyWithOption(&s, override, copier.Option{IgnoreEmpty: true}); err != nil {
		return s, fmt.Errorf("lantern settings: %w", err)
	}
	return s, nil
}

// LanternColor is the warm white shared by the glass and the light.
var LanternColor = rl.NewColor(0xff, 0xf2, 0xd9, 0xff)

// SpotLight is the state of a light that points from Position at Target.
// The renderer reads it each frame; Enabled goes false once the owning item is dropped.
type SpotLight struct {
	Position rl.Vector3
	Target   rl.Vector3
	Color    rl.Color
	Settings LanternSettings
	Enabled  bool
}

// LightEffect keeps a spot light above the carried item, aimed along the mouse.
type LightEffect struct {
	Light *SpotLight
}

// NewLightEffect returns an effect driving a fresh, enabled spot light.
func NewLightEffect(s LanternSettings) *LightEffect {
	return &LightEffect{Light: &SpotLight{Color: LanternColor, Settings: s, Enabled: true}}
}

// Update places the light above position and its target on the ground, pushed away from
// the item by the mouse offset scaled to the lantern range. Screen up is world -Z.
func (e *LightEffect) Update(_ float32, position rl.Vector3, mouse rl.Vector2) {
	s := e.Light.Settings
	e.Light.Position = rl.NewVector3(position.X, position.Y+s.Height, position.Z)
	e.Light.Target = rl.NewVector3(position.X+mouse.X*s.Range, 0, position.Z-mouse.Y*s.Range)
}

// Dispose switches the light off.
func (e *LightEffect) Dispose() {
	e.Light.Enabled = false
}

// NewLantern builds a lantern item with its light effect. The returned light is the
// same one the effect updates, so the renderer can hold on to it.
func NewLantern(s LanternSettings) (*Item, *SpotLight) {
	light := NewLightEffect(s)
	it := &Item{
		Name: "lantern",
		Parts: []Part{
			{Type: "cylinder", Scale: rl.NewVector3(0.1, 0.1, 0.1), Color: rl.NewColor(0x3a, 0x3a, 0x3a, 0xff)},
			{Type: "cylinder", Offset: rl.NewVector3(0, 0.01, 0), Scale: rl.NewVector3(0.08, 0.08, 0.08), Color: LanternColor, Emissive: true},
		},
		Effects: []Effect{light},
	}
	return it, light.Light
}
