package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Key is a movement action. Physical keys are mapped onto these through bindings.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	numKeys
)

// DefaultBindings maps w/a/s/d onto movement. Any key not listed is ignored.
var DefaultBindings = map[int32]Key{
	rl.KeyW: KeyForward,
	rl.KeyS: KeyBack,
	rl.KeyA: KeyLeft,
	rl.KeyD: KeyRight,
}

// State is a snapshot of input for one frame.
// Mouse is in normalized device coordinates: [-1,1] on both axes, +Y up.
type State struct {
	held  [numKeys]bool
	Mouse rl.Vector2
}

// Down reports whether k was held when the snapshot was taken.
func (s State) Down(k Key) bool {
	if k < 0 || k >= numKeys {
		return false
	}
	return s.held[k]
}

// Sampler records held movement keys and the normalized mouse position.
// It is polled once per frame from the window, but can also be driven through
// HandleKey and MoveMouse (tests, replays).
type Sampler struct {
	bindings  map[int32]Key
	held      [numKeys]bool
	mouse     rl.Vector2
	suspended bool
}

// New returns a sampler using DefaultBindings.
func New() *Sampler {
	return &Sampler{bindings: DefaultBindings}
}

// HandleKey records a key transition. Keys without a binding are ignored.
func (s *Sampler) HandleKey(code int32, down bool) {
	if k, ok := s.bindings[code]; ok {
		s.held[k] = down
	}
}

// MoveMouse records a cursor position given in pixels over a surface of size w×h.
// A degenerate surface leaves the last position in place.
func (s *Sampler) MoveMouse(x, y, w, h float32) {
	if w <= 0 || h <= 0 {
		return
	}
	s.mouse = Normalize(x, y, w, h)
}

// Normalize converts pixel coordinates to [-1,1] with +Y pointing up.
func Normalize(x, y, w, h float32) rl.Vector2 {
	return rl.NewVector2(x/w*2-1, -(y/h)*2+1)
}

// Suspend stops movement keys from reaching State while the console owns the keyboard.
// The mouse keeps tracking.
func (s *Sampler) Suspend(suspended bool) {
	s.suspended = suspended
}

// Poll reads the current keyboard and mouse state from the window. Call once per frame.
func (s *Sampler) Poll() {
	for code := range s.bindings {
		s.HandleKey(code, rl.IsKeyDown(code))
	}
	pos := rl.GetMousePosition()
	s.MoveMouse(pos.X, pos.Y, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// State returns a snapshot for this frame.
func (s *Sampler) State() State {
	st := State{Mouse: s.mouse}
	if !s.suspended {
		st.held = s.held
	}
	return st
}

// NewState builds a snapshot directly, for callers that do not sample a window.
func NewState(mouse rl.Vector2, held ...Key) State {
	st := State{Mouse: mouse}
	for _, k := range held {
		if k >= 0 && k < numKeys {
			st.held[k] = true
		}
	}
	return st
}
