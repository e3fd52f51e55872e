package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyCount
)

// edge is a held flag plus the transitions seen since the last Reset.
type edge struct {
	down     bool
	pressed  bool
	released bool
}

func (e *edge) set(down bool) {
	if down && !e.down {
		e.pressed = true
	}
	if !down && e.down {
		e.released = true
	}
	e.down = down
}

func (e *edge) clearEvents() {
	e.pressed = false
	e.released = false
}

// InputState holds input state for the current frame.
// It is filled in by a platform adapter such as backend/opengl.
type InputState struct {
	MouseX, MouseY float32

	// Wheel deltas since the last Reset.
	MouseWheelX float32
	MouseWheelY float32

	mouse [MouseButtonCount]edge
	keys  [KeyCount]edge
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame events. Held buttons and keys stay held.
func (s *InputState) Reset() {
	for i := range s.mouse {
		s.mouse[i].clearEvents()
	}
	for i := range s.keys {
		s.keys[i].clearEvents()
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a button press or release.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if e := s.button(button); e != nil {
		e.set(down)
	}
}

// SetKey records a key press or release.
func (s *InputState) SetKey(key Key, down bool) {
	if e := s.key(key); e != nil {
		e.set(down)
	}
}

// AddMouseWheel adds a wheel delta. Several scroll events in one frame
// accumulate.
func (s *InputState) AddMouseWheel(x, y float32) {
	s.MouseWheelX += x
	s.MouseWheelY += y
}

func (s *InputState) button(b MouseButton) *edge {
	if b < 0 || b >= MouseButtonCount {
		return nil
	}
	return &s.mouse[b]
}

func (s *InputState) key(k Key) *edge {
	if k <= KeyNone || k >= KeyCount {
		return nil
	}
	return &s.keys[k]
}

// MouseDown reports whether a mouse button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	e := s.button(button)
	return e != nil && e.down
}

// MouseClicked reports whether a mouse button went down this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	e := s.button(button)
	return e != nil && e.pressed
}

// MouseReleased reports whether a mouse button went up this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	e := s.button(button)
	return e != nil && e.released
}

// KeyDown reports whether a key is held.
func (s *InputState) KeyDown(key Key) bool {
	e := s.key(key)
	return e != nil && e.down
}

// KeyPressed reports whether a key went down this frame.
func (s *InputState) KeyPressed(key Key) bool {
	e := s.key(key)
	return e != nil && e.pressed
}
