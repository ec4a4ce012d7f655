package player

import (
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/assert"
	"github.com/oomph-ac/pawn/environment"
	"github.com/oomph-ac/pawn/game"
	"github.com/oomph-ac/pawn/input"
	"github.com/oomph-ac/pawn/physics"
	"github.com/oomph-ac/pawn/player/state"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Frame describes the frame being ticked.
type Frame struct {
	// Delta is the time since the previous frame in seconds.
	Delta float64
	// Elapsed is the time since the clock started.
	Elapsed time.Duration
}

// Player is the actor driving a physics body from player input. It owns the proxies mirroring the
// body state and publishes a handle over them to its environment.
type Player struct {
	log *logrus.Logger
	cfg Config

	env      *environment.Environment
	body     physics.Body
	controls *input.Controls

	position, velocity *physics.Proxy
	locked             *atomic.Bool
	raycaster          *game.Raycaster
	camera             *Camera
	handle             *state.Handle

	handlerMu deadlock.RWMutex
	handlers  *orderedmap.OrderedMap[string, Handler]

	Dbg *Debugger

	ticks  atomic.Uint64
	closed atomic.Bool
}

// New creates a player driving body with the controls passed and publishes its handle to env. It
// panics if env already has a player.
func New(env *environment.Environment, body physics.Body, controls *input.Controls, cfg Config, log *logrus.Logger) *Player {
	assert.IsTrue(env != nil && body != nil && controls != nil, "player requires an environment, a body and controls")
	if log == nil {
		log = nopLogger()
	}
	if cfg.LookDistance <= 0 {
		cfg.LookDistance = game.DefaultLookDistance
	}
	if cfg.InteractionRange <= 0 {
		cfg.InteractionRange = game.DefaultInteractionRange
	}

	p := &Player{
		log:      log,
		cfg:      cfg,
		env:      env,
		body:     body,
		controls: controls,
		locked:   atomic.NewBool(false),
		camera:   newCamera(),
		handlers: orderedmap.NewOrderedMap[string, Handler](),
	}
	p.Dbg = &Debugger{p: p}
	for _, name := range cfg.Debug {
		if mode, ok := DebugMode(name); ok {
			p.Dbg.Toggle(mode)
		}
	}

	p.position = physics.NewProxy(body, physics.StreamPosition)
	p.velocity = physics.NewProxy(body, physics.StreamVelocity)
	published := false
	defer func() {
		if !published {
			p.position.Close()
			p.velocity.Close()
		}
	}()

	target := game.InitialLookTarget(cfg.Position, cfg.Yaw, cfg.LookDistance)
	rot := game.LookRotation(cfg.Position, target)
	controls.Orientation.Orient(rot)
	p.camera.set(cfg.Position.Add(cfg.EyeOffset), rot)

	if controls.Scheme.TouchFirst() {
		p.raycaster = env.Ambient()
	} else {
		p.raycaster = game.NewRaycaster(0, cfg.InteractionRange)
	}

	p.handle = state.NewHandle(p.position, p.velocity, p.locked, p.raycaster)
	env.SetPlayer(p.handle)
	published = true

	log.Debugf("player created (scheme=%s target=%v)", controls.Scheme, target)
	return p
}

// Tick runs one frame: the camera is moved to the body and the registered handlers are run.
func (p *Player) Tick(f Frame) {
	assert.IsTrue(!p.closed.Load(), "tick on closed player")
	p.ticks.Inc()

	p.camera.set(p.position.Get().Add(p.cfg.EyeOffset), p.controls.Orientation.Orientation())
	p.runHandlers(f)
}

// Close releases the subscriptions of the player, invalidates its handle and removes it from the
// environment. It is safe to call more than once.
func (p *Player) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	p.handle.Release()
	p.env.ClearPlayer(p.handle)
	p.position.Close()
	p.velocity.Close()
	p.log.Debugf("player closed after %d ticks", p.ticks.Load())
}

// Closed ...
func (p *Player) Closed() bool {
	return p.closed.Load()
}

// Log ...
func (p *Player) Log() *logrus.Logger {
	return p.log
}

// Config ...
func (p *Player) Config() Config {
	return p.cfg
}

// Env returns the environment the player lives in.
func (p *Player) Env() *environment.Environment {
	return p.env
}

// Body ...
func (p *Player) Body() physics.Body {
	return p.body
}

// Controls returns the input sources of the player.
func (p *Player) Controls() *input.Controls {
	return p.controls
}

// Handle returns the handle published to the environment.
func (p *Player) Handle() *state.Handle {
	return p.handle
}

// Position returns the cached position of the body.
func (p *Player) Position() mgl64.Vec3 {
	return p.position.Get()
}

// Velocity returns the cached velocity of the body.
func (p *Player) Velocity() mgl64.Vec3 {
	return p.velocity.Get()
}

// SetVelocity commands a new velocity to the body.
func (p *Player) SetVelocity(v mgl64.Vec3) {
	p.velocity.Set(v)
}

// Locked reports whether the controls of the player are locked.
func (p *Player) Locked() bool {
	return p.locked.Load()
}

// Raycaster returns the interaction ray of the player.
func (p *Player) Raycaster() *game.Raycaster {
	return p.raycaster
}

// Camera ...
func (p *Player) Camera() *Camera {
	return p.camera
}

// Ticks returns the amount of frames ticked.
func (p *Player) Ticks() uint64 {
	return p.ticks.Load()
}
