package input

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
	"github.com/sasha-s/go-deadlock"
)

// Joystick is an on-screen virtual joystick. Angles are measured counter-clockwise from the right
// of the screen, so pushing the stick up moves forward.
type Joystick struct {
	mu  deadlock.Mutex
	dir mgl64.Vec2
}

// NewJoystick ...
func NewJoystick() *Joystick {
	return &Joystick{}
}

// Move sets the stick to the angle in radians and force passed. Force is clamped to [0, 1].
func (j *Joystick) Move(angle, force float64) {
	f := mgl64.Clamp(force, 0, 1)
	d := mgl64.Vec2{-math.Cos(angle) * f, math.Sin(angle) * f}
	j.mu.Lock()
	j.dir = game.ClampVec2(d)
	j.mu.Unlock()
}

// End recentres the stick.
func (j *Joystick) End() {
	j.mu.Lock()
	j.dir = mgl64.Vec2{}
	j.mu.Unlock()
}

// Direction ...
func (j *Joystick) Direction() mgl64.Vec2 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.dir
}
