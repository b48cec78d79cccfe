package input

import "testing"

func TestToggleFlipsOnEdge(t *testing.T) {
	tg := NewToggle(false)

	if flipped := tg.Feed(true); !flipped || !tg.On() {
		t.Fatal("first press should flip on")
	}
	// Still held: no second flip.
	if flipped := tg.Feed(true); flipped || !tg.On() {
		t.Fatal("holding the key must not flip again")
	}
	if flipped := tg.Feed(false); flipped {
		t.Fatal("release must not flip")
	}
	if flipped := tg.Feed(true); !flipped || tg.On() {
		t.Fatal("second press should flip back off")
	}
}

func TestToggleInitialState(t *testing.T) {
	tg := NewToggle(true)
	if !tg.On() {
		t.Fatal("initial state lost")
	}
	tg.Feed(true)
	if tg.On() {
		t.Fatal("press should flip off")
	}
}
