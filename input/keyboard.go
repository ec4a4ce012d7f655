package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
	"github.com/sasha-s/go-deadlock"
)

// Key is a movement key of the keyboard scheme.
type Key uint8

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	keyCount
)

// KeyFromRune maps WASD and ZQSD style layouts to movement keys.
func KeyFromRune(r rune) (Key, bool) {
	switch r {
	case 'w', 'W', 'z', 'Z':
		return KeyForward, true
	case 's', 'S':
		return KeyBackward, true
	case 'a', 'A', 'q', 'Q':
		return KeyLeft, true
	case 'd', 'D':
		return KeyRight, true
	}
	return 0, false
}

// Keyboard produces a direction from the movement keys currently held.
type Keyboard struct {
	mu   deadlock.Mutex
	held [keyCount]bool
}

// NewKeyboard ...
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Press marks k as held.
func (k *Keyboard) Press(key Key) {
	k.set(key, true)
}

// Release marks k as released.
func (k *Keyboard) Release(key Key) {
	k.set(key, false)
}

// ReleaseAll releases every key, for example when the window loses focus.
func (k *Keyboard) ReleaseAll() {
	k.mu.Lock()
	k.held = [keyCount]bool{}
	k.mu.Unlock()
}

func (k *Keyboard) set(key Key, held bool) {
	if key >= keyCount {
		return
	}
	k.mu.Lock()
	k.held[key] = held
	k.mu.Unlock()
}

// Direction returns the held keys as a direction. Opposite keys cancel out and diagonals are
// normalised so that they are not faster than a single axis. Strafing right is negative X.
func (k *Keyboard) Direction() mgl64.Vec2 {
	k.mu.Lock()
	held := k.held
	k.mu.Unlock()

	var d mgl64.Vec2
	if held[KeyForward] {
		d[1]++
	}
	if held[KeyBackward] {
		d[1]--
	}
	if held[KeyLeft] {
		d[0]++
	}
	if held[KeyRight] {
		d[0]--
	}
	return game.ClampVec2(d)
}
