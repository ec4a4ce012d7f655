package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
)

// CapsuleConfig describes an upright capsule collider resting on an infinite ground plane.
type CapsuleConfig struct {
	Position mgl64.Vec3
	Radius   float64
	Height   float64
	Gravity  float64
	GroundY  float64
}

// DefaultCapsuleConfig returns a capsule of player size standing at pos.
func DefaultCapsuleConfig(pos mgl64.Vec3) CapsuleConfig {
	return CapsuleConfig{
		Position: pos,
		Radius:   game.DefaultCapsuleRadius,
		Height:   game.DefaultCapsuleHeight,
		Gravity:  game.DefaultGravity,
		GroundY:  0,
	}
}

// Capsule is a minimal in-process rigid body: it integrates gravity, stops on the ground plane and
// publishes its position and velocity after every Step. It stands in for an external engine in
// drivers and tests.
type Capsule struct {
	cfg CapsuleConfig

	mu       deadlock.Mutex
	pos, vel mgl64.Vec3
	onGround bool

	subMu  deadlock.RWMutex
	nextID uint64
	subs   map[Stream]map[uint64]func(mgl64.Vec3)

	steps atomic.Uint64
}

// NewCapsule creates a Capsule from the configuration passed.
func NewCapsule(cfg CapsuleConfig) *Capsule {
	return &Capsule{
		cfg: cfg,
		pos: cfg.Position,
		subs: map[Stream]map[uint64]func(mgl64.Vec3){
			StreamPosition: {},
			StreamVelocity: {},
		},
	}
}

// Subscribe ...
func (c *Capsule) Subscribe(stream Stream, fn func(mgl64.Vec3)) Subscription {
	c.subMu.Lock()
	c.nextID++
	id := c.nextID
	if c.subs[stream] == nil {
		c.subs[stream] = map[uint64]func(mgl64.Vec3){}
	}
	c.subs[stream][id] = fn
	c.subMu.Unlock()

	return SubscriptionFunc(func() {
		c.subMu.Lock()
		delete(c.subs[stream], id)
		c.subMu.Unlock()
	})
}

// Subscribers returns the number of active subscriptions on the stream passed.
func (c *Capsule) Subscribers(stream Stream) int {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	return len(c.subs[stream])
}

// SetPosition ...
func (c *Capsule) SetPosition(pos mgl64.Vec3) {
	c.mu.Lock()
	c.pos = pos
	c.mu.Unlock()
}

// SetVelocity ...
func (c *Capsule) SetVelocity(vel mgl64.Vec3) {
	c.mu.Lock()
	c.vel = vel
	c.mu.Unlock()
}

// Position returns the position the engine holds, bypassing subscriptions.
func (c *Capsule) Position() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

// Velocity returns the velocity the engine holds, bypassing subscriptions.
func (c *Capsule) Velocity() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vel
}

// OnGround reports whether the capsule rested on the ground after the last Step.
func (c *Capsule) OnGround() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.onGround
}

// Steps returns the number of steps integrated so far.
func (c *Capsule) Steps() uint64 {
	return c.steps.Load()
}

// BBox returns the box enclosing the capsule at its current position.
func (c *Capsule) BBox() cube.BBox {
	return game.CapsuleBox(c.Position(), c.cfg.Radius, c.cfg.Height)
}

// Step integrates dt seconds of motion and publishes the result.
func (c *Capsule) Step(dt float64) {
	c.mu.Lock()
	c.vel[1] += c.cfg.Gravity * dt
	c.pos = c.pos.Add(c.vel.Mul(dt))

	floor := c.cfg.GroundY + c.cfg.Height/2
	c.onGround = false
	if c.pos.Y() <= floor {
		c.pos[1] = floor
		if c.vel.Y() < 0 {
			c.vel[1] = 0
		}
		c.onGround = true
	}
	pos, vel := c.pos, c.vel
	c.mu.Unlock()
	c.steps.Inc()

	c.publish(StreamPosition, pos)
	c.publish(StreamVelocity, vel)
}

func (c *Capsule) publish(stream Stream, v mgl64.Vec3) {
	c.subMu.RLock()
	fns := make([]func(mgl64.Vec3), 0, len(c.subs[stream]))
	for _, fn := range c.subs[stream] {
		fns = append(fns, fn)
	}
	c.subMu.RUnlock()

	for _, fn := range fns {
		fn(v)
	}
}
