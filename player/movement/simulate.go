package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
)

// Input is everything the integrator reads for one frame.
type Input struct {
	// Direction is the planar input, X strafing and Y forward/back, within [-1, 1].
	Direction mgl64.Vec2
	// Orientation is the look orientation of the viewer. Only its yaw is used.
	Orientation mgl64.Quat
	// Velocity is the latest velocity reported by the physics engine.
	Velocity mgl64.Vec3
	// Dt is the frame delta in seconds.
	Dt float64

	Locked bool
	Paused bool
}

// Tuning holds the constants turning input into a velocity command.
type Tuning struct {
	Speed        float64
	StrafeFactor float64
	TickScale    float64
}

// DefaultTuning ...
func DefaultTuning() Tuning {
	return Tuning{
		Speed:        game.DefaultSpeed,
		StrafeFactor: game.DefaultStrafeFactor,
		TickScale:    game.DefaultTickScale,
	}
}

// Integrate computes the velocity command for a frame and whether it should be issued to the engine.
// Nothing is issued while the controls are locked, so that whoever locked them keeps authority over
// the body. While paused the zero vector is issued, stopping the body including its fall.
func Integrate(in Input, t Tuning) (mgl64.Vec3, bool) {
	if in.Locked {
		return mgl64.Vec3{}, false
	}

	ctx := newCtx(in, t)
	defer putCtx(ctx)

	if !in.Paused {
		ctx.moveRelative()
		ctx.faceYaw()
		ctx.preserveFall()
	}
	return ctx.vel, true
}
