package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws the FPS counter and the player's position in the top-right corner.
// Overlays are off by default.
type Debug struct {
	ShowFPS    bool
	frameCount uint32
	lines      [2]string
}

// New returns a Debug overlay with everything hidden.
func New() *Debug {
	return &Debug{}
}

// Refresh recomputes the overlay text when due. fps and pos are this frame's values.
// Returns true when the text changed.
func (d *Debug) Refresh(fps int32, pos rl.Vector3) bool {
	d.frameCount++
	if d.lines[0] != "" && d.frameCount%updateInterval != 0 {
		return false
	}
	d.lines[0] = fmt.Sprintf("FPS: %d", fps)
	d.lines[1] = fmt.Sprintf("Pos: %.2f, %.2f", pos.X, pos.Z)
	return true
}

// Lines returns the current overlay text.
func (d *Debug) Lines() []string {
	return d.lines[:]
}

// Draw renders the overlay when ShowFPS is set. Call after the 3D scene.
func (d *Debug) Draw(pos rl.Vector3) {
	if !d.ShowFPS {
		return
	}
	d.Refresh(rl.GetFPS(), pos)
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
