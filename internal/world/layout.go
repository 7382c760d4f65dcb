package world

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Shape kinds understood by the level builder.
const (
	KindWall   = "wall"
	KindPillar = "pillar"
	KindCrate  = "crate"
)

// Stock sizes for kinds that do not need one in the layout.
var (
	pillarSize = [3]float32{0.6, 1.5, 0.6}
	crateSize  = [3]float32{0.6, 0.6, 0.6}
)

// Shape is one solid in a layout file. Position is the center of the shape.
type Shape struct {
	Kind     string     `yaml:"kind"`
	Position [3]float32 `yaml:"position"`
	Size     [3]float32 `yaml:"size,omitempty"`
}

// Layout is the static content of a level.
type Layout struct {
	GroundSize float32    `yaml:"ground_size"`
	Spawn      [3]float32 `yaml:"spawn"`
	Shapes     []Shape    `yaml:"shapes"`
}

// DefaultLayout is the walled yard: four walls, four pillars, two crates.
func DefaultLayout() Layout {
	return Layout{
		GroundSize: 100,
		Shapes: []Shape{
			{Kind: KindWall, Position: [3]float32{-5, 0.5, 0}, Size: [3]float32{1, 1, 4}},
			{Kind: KindWall, Position: [3]float32{5, 0.5, 0}, Size: [3]float32{1, 1, 4}},
			{Kind: KindWall, Position: [3]float32{0, 0.5, 5}, Size: [3]float32{10, 1, 0.5}},
			{Kind: KindWall, Position: [3]float32{0, 0.5, -5}, Size: [3]float32{10, 1, 0.5}},
			{Kind: KindPillar, Position: [3]float32{-3, 0.75, -3}},
			{Kind: KindPillar, Position: [3]float32{3, 0.75, -3}},
			{Kind: KindPillar, Position: [3]float32{-3, 0.75, 3}},
			{Kind: KindPillar, Position: [3]float32{3, 0.75, 3}},
			{Kind: KindCrate, Position: [3]float32{-2, 0.3, 0}},
			{Kind: KindCrate, Position: [3]float32{2, 0.3, 0}},
		},
	}
}

// LoadLayout reads a YAML layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	return ParseLayout(data)
}

// ParseLayout validates a YAML layout against the layout schema, then decodes it.
// Pillars and crates get their stock size when none is given; walls must have one.
func ParseLayout(data []byte) (Layout, error) {
	if err := validateLayout(data); err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	if l.GroundSize <= 0 {
		l.GroundSize = DefaultLayout().GroundSize
	}
	for i := range l.Shapes {
		s := &l.Shapes[i]
		switch s.Kind {
		case KindWall:
			if s.Size[0] <= 0 || s.Size[1] <= 0 || s.Size[2] <= 0 {
				return Layout{}, fmt.Errorf("layout: shape %d: wall needs a positive size", i)
			}
		case KindPillar:
			if s.Size == [3]float32{} {
				s.Size = pillarSize
			}
		case KindCrate:
			if s.Size == [3]float32{} {
				s.Size = crateSize
			}
		default:
			return Layout{}, fmt.Errorf("layout: shape %d: unknown kind %q", i, s.Kind)
		}
	}
	return l, nil
}

// Extent returns the full size of the shape, falling back to the stock size of its kind.
func (s Shape) Extent() rl.Vector3 {
	size := s.Size
	if size == [3]float32{} {
		switch s.Kind {
		case KindPillar:
			size = pillarSize
		case KindCrate:
			size = crateSize
		}
	}
	return rl.NewVector3(size[0], size[1], size[2])
}

// Center returns the shape's position as a vector.
func (s Shape) Center() rl.Vector3 {
	return rl.NewVector3(s.Position[0], s.Position[1], s.Position[2])
}

// Primitive names the mesh used to draw the shape.
func (s Shape) Primitive() string {
	if s.Kind == KindPillar {
		return "cylinder"
	}
	return "cube"
}

// Color is the albedo of the shape's kind.
func (s Shape) Color() rl.Color {
	if s.Kind == KindWall {
		return rl.NewColor(0x66, 0x66, 0x66, 0xff)
	}
	return rl.NewColor(0x8b, 0x45, 0x13, 0xff)
}
