package environment

import (
	"github.com/google/uuid"
	"github.com/oomph-ac/pawn/assert"
	"github.com/oomph-ac/pawn/game"
	"github.com/oomph-ac/pawn/player/state"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Environment is the context shared by everything living in one scene: the pause flag, the ambient
// interaction ray and the handle of the current player. Consumers receive it explicitly, there is no
// process-wide instance.
type Environment struct {
	id  uuid.UUID
	log *logrus.Entry

	paused  atomic.Bool
	ambient *game.Raycaster

	mu     deadlock.RWMutex
	player *state.Handle
}

// New returns an empty environment logging to log.
func New(log *logrus.Logger) *Environment {
	id := uuid.New()
	return &Environment{
		id:      id,
		log:     log.WithField("env", id.String()),
		ambient: game.NewRaycaster(0, game.DefaultLookDistance),
	}
}

// ID ...
func (e *Environment) ID() uuid.UUID {
	return e.id
}

// Log returns the logger of the environment.
func (e *Environment) Log() *logrus.Entry {
	return e.log
}

// Pause stops input from moving the player. Physics keeps running.
func (e *Environment) Pause() {
	e.paused.Store(true)
}

// Resume undoes Pause.
func (e *Environment) Resume() {
	e.paused.Store(false)
}

// Paused ...
func (e *Environment) Paused() bool {
	return e.paused.Load()
}

// Ambient returns the ray of the scene itself, used for interaction on touch screens where there is
// no pointer ray.
func (e *Environment) Ambient() *game.Raycaster {
	return e.ambient
}

// SetPlayer publishes the handle of the current player. Only one player may be published at a
// time, publishing a second one panics.
func (e *Environment) SetPlayer(h *state.Handle) {
	assert.IsTrue(h != nil, "cannot publish a nil player handle")

	e.mu.Lock()
	defer e.mu.Unlock()
	assert.IsTrue(e.player == nil, "environment %s already has a player", e.id)
	e.player = h
	e.log.Debug("player handle published")
}

// ClearPlayer removes h from the environment. A handle that is not the current one is ignored.
func (e *Environment) ClearPlayer(h *state.Handle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.player != h {
		return
	}
	e.player = nil
	e.log.Debug("player handle cleared")
}

// Player returns the handle of the current player, if there is a live one.
func (e *Environment) Player() (*state.Handle, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.player == nil || e.player.Released() {
		return nil, false
	}
	return e.player, true
}
