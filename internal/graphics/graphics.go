package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoSurface is returned when the window (and its GL context) could not be created.
var ErrNoSurface = errors.New("graphics: render surface unavailable")

// Options configures the window and the frame clock.
type Options struct {
	Width      int32
	Height     int32
	Title      string
	Fullscreen bool
	TargetFPS  int32
	// FixedStep, when positive, is passed to update every frame instead of the measured
	// frame time.
	FixedStep float32
}

// Loop receives the frame callbacks. Update runs before drawing; Draw runs between
// BeginDrawing and EndDrawing; Resize runs when the framebuffer size changes.
// Close runs once after the last frame, while the GL context is still alive.
type Loop struct {
	Update func(dt float32)
	Draw   func()
	Resize func(width, height int32)
	Close  func()
}

// Run opens the window and drives the loop until the window is closed.
// ESC is left to the console; close through the window button.
func Run(opts Options, loop Loop) error {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	w, h := opts.Width, opts.Height
	rl.InitWindow(w, h, opts.Title)
	if !rl.IsWindowReady() {
		return ErrNoSurface
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && loop.Resize != nil {
			loop.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		if loop.Update != nil {
			loop.Update(FrameStep(opts.FixedStep, rl.GetFrameTime()))
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if loop.Draw != nil {
			loop.Draw()
		}
		rl.EndDrawing()
	}
	if loop.Close != nil {
		loop.Close()
	}
	return nil
}

// FrameStep picks the update step: the fixed step when set, else the measured time.
func FrameStep(fixed, measured float32) float32 {
	if fixed > 0 {
		return fixed
	}
	return measured
}
