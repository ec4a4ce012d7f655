package state

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/assert"
	"github.com/oomph-ac/pawn/game"
	"github.com/oomph-ac/pawn/physics"
	"go.uber.org/atomic"
)

// Handle exposes the physical state of the current player to systems that hold no reference to the
// player itself. It is invalidated once the player is torn down, after which every accessor panics.
type Handle struct {
	position, velocity *physics.Proxy
	locked             *atomic.Bool
	raycaster          *game.Raycaster

	released atomic.Bool
}

// NewHandle returns a handle over the proxies, control lock and raycaster of a player.
func NewHandle(position, velocity *physics.Proxy, locked *atomic.Bool, raycaster *game.Raycaster) *Handle {
	assert.IsTrue(position != nil && velocity != nil, "state handle requires both position and velocity proxies")
	assert.IsTrue(locked != nil, "state handle requires a control lock")
	return &Handle{
		position:  position,
		velocity:  velocity,
		locked:    locked,
		raycaster: raycaster,
	}
}

// Vector is a readable and writable physical quantity. Set writes through to the physics engine.
type Vector struct {
	h     *Handle
	proxy *physics.Proxy
}

// Get returns the latest value known.
func (v Vector) Get() mgl64.Vec3 {
	v.h.mustBeLive()
	return v.proxy.Get()
}

// Set updates the physics engine and the cached value at once.
func (v Vector) Set(vec mgl64.Vec3) {
	v.h.mustBeLive()
	v.proxy.Set(vec)
}

// Controls toggles whether player input drives the body. The last call wins.
type Controls struct {
	h *Handle
}

// Lock stops input from driving the body.
func (c Controls) Lock() {
	c.h.mustBeLive()
	c.h.locked.Store(true)
}

// Unlock gives control of the body back to input.
func (c Controls) Unlock() {
	c.h.mustBeLive()
	c.h.locked.Store(false)
}

// IsLocked ...
func (c Controls) IsLocked() bool {
	c.h.mustBeLive()
	return c.h.locked.Load()
}

// Position ...
func (h *Handle) Position() Vector {
	h.mustBeLive()
	return Vector{h: h, proxy: h.position}
}

// Velocity ...
func (h *Handle) Velocity() Vector {
	h.mustBeLive()
	return Vector{h: h, proxy: h.velocity}
}

// Controls ...
func (h *Handle) Controls() Controls {
	h.mustBeLive()
	return Controls{h: h}
}

// Raycaster returns the interaction ray of the player.
func (h *Handle) Raycaster() *game.Raycaster {
	h.mustBeLive()
	return h.raycaster
}

// Release invalidates the handle. It is safe to call more than once.
func (h *Handle) Release() {
	h.released.Store(true)
}

// Released reports whether the handle was invalidated.
func (h *Handle) Released() bool {
	return h.released.Load()
}

func (h *Handle) mustBeLive() {
	assert.IsTrue(!h.released.Load(), "player state handle used after release")
}
