package item

import rl "github.com/gen2brain/raylib-go/raylib"

// Effect is behavior attached to a carried item. Update runs once per frame with the
// item's world position and the normalized mouse position.
type Effect interface {
	Update(dt float32, position rl.Vector3, mouse rl.Vector2)
}

// Disposer is implemented by effects that hold resources outliving a frame.
type Disposer interface {
	Dispose()
}

// Part is one primitive of an item's mesh, relative to the item's grip point.
type Part struct {
	Type     string // primitive type: cube, cylinder, sphere
	Offset   rl.Vector3
	Scale    rl.Vector3
	Color    rl.Color
	Emissive bool
}

// Item is a carried object: a mesh made of parts plus zero or more effects.
type Item struct {
	Name    string
	Parts   []Part
	Effects []Effect
}

// Update runs every effect with the item's world position.
func (it *Item) Update(dt float32, position rl.Vector3, mouse rl.Vector2) {
	for _, e := range it.Effects {
		e.Update(dt, position, mouse)
	}
}

// Dispose releases effects that hold resources. The item must not be used afterwards.
func (it *Item) Dispose() {
	for _, e := range it.Effects {
		if d, ok := e.(Disposer); ok {
			d.Dispose()
		}
	}
	it.Effects = nil
}
