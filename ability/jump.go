package ability

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/environment"
	"github.com/oomph-ac/pawn/game"
)

// Jump launches the current player of an environment upwards. It holds no reference to the player:
// the handle is looked up every time the jump is triggered.
type Jump struct {
	env     *environment.Environment
	impulse float64
}

// NewJump returns a Jump adding impulse m/s of upward velocity. A non-positive impulse uses the
// default.
func NewJump(env *environment.Environment, impulse float64) *Jump {
	if impulse <= 0 {
		impulse = game.DefaultJumpImpulse
	}
	return &Jump{env: env, impulse: impulse}
}

// Trigger applies the jump. It returns false if there is no player. The control lock only
// suppresses input-driven movement, so a locked player still jumps.
func (j *Jump) Trigger() bool {
	h, ok := j.env.Player()
	if !ok {
		return false
	}
	vel := h.Velocity()
	vel.Set(vel.Get().Add(mgl64.Vec3{0, j.impulse, 0}))
	j.env.Log().Debugf("jump triggered (impulse=%v)", j.impulse)
	return true
}
