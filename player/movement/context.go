package movement

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
)

type movementContext struct {
	in     Input
	tuning Tuning

	vel mgl64.Vec3
}

// moveRelative scales the planar input into a body-local displacement. Strafing is dampened by the
// strafe factor.
func (ctx *movementContext) moveRelative() {
	dir := ctx.in.Direction
	scale := ctx.in.Dt * ctx.tuning.TickScale * ctx.tuning.Speed
	ctx.vel = mgl64.Vec3{dir.X() * ctx.tuning.StrafeFactor, 0, dir.Y()}.Mul(scale)
}

// faceYaw rotates the displacement by the horizontal heading only, so that looking up or down never
// moves the body vertically.
func (ctx *movementContext) faceYaw() {
	ctx.vel = game.YawOnly(ctx.in.Orientation).Rotate(ctx.vel)
	ctx.vel[1] = 0
}

// preserveFall keeps downward velocity produced by the engine and discards upward velocity, so that
// gravity keeps acting while walking.
func (ctx *movementContext) preserveFall() {
	ctx.vel[1] = min(ctx.in.Velocity.Y(), 0)
}
