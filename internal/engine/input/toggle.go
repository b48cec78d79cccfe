package input

// Toggle flips a boolean on key-press edges. Holding the key down does not
// flip it again until the key is released first.
type Toggle struct {
	on   bool
	held bool
}

// NewToggle creates a toggle with the given initial state.
func NewToggle(initial bool) *Toggle {
	return &Toggle{on: initial}
}

// Feed updates the toggle with the current key state and reports whether
// the state flipped this call.
func (t *Toggle) Feed(pressed bool) bool {
	flipped := pressed && !t.held
	if flipped {
		t.on = !t.on
	}
	t.held = pressed
	return flipped
}

// On returns the current toggle state.
func (t *Toggle) On() bool {
	return t.on
}
