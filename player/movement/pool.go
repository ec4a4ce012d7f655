package movement

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &movementContext{}
	},
}

func newCtx(in Input, t Tuning) *movementContext {
	ctx := ctxPool.Get().(*movementContext)
	ctx.in, ctx.tuning = in, t
	return ctx
}

func putCtx(ctx *movementContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *movementContext) reset() {
	ctx.in = Input{}
	ctx.tuning = Tuning{}
	ctx.vel = mgl64.Vec3{}
}
