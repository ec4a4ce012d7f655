package environment

import (
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
	"github.com/oomph-ac/pawn/physics"
	"github.com/oomph-ac/pawn/player/state"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

func newTestEnvironment() *Environment {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log)
}

func newTestHandle() *state.Handle {
	body := physics.NewCapsule(physics.DefaultCapsuleConfig(mgl64.Vec3{}))
	return state.NewHandle(
		physics.NewProxy(body, physics.StreamPosition),
		physics.NewProxy(body, physics.StreamVelocity),
		atomic.NewBool(false),
		game.NewRaycaster(0, 1),
	)
}

func TestSetPlayerTwicePanics(t *testing.T) {
	env := newTestEnvironment()
	first := newTestHandle()
	env.SetPlayer(first)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected publishing a second player to panic")
		}
		if h, ok := env.Player(); !ok || h != first {
			t.Fatalf("expected the first player to stay published")
		}
	}()
	env.SetPlayer(newTestHandle())
}

func TestClearPlayerOnlyClearsSameHandle(t *testing.T) {
	env := newTestEnvironment()
	h := newTestHandle()
	env.SetPlayer(h)

	env.ClearPlayer(newTestHandle())
	if _, ok := env.Player(); !ok {
		t.Fatalf("expected clearing another handle to be ignored")
	}

	env.ClearPlayer(h)
	if _, ok := env.Player(); ok {
		t.Fatalf("expected no player after clearing")
	}
	env.SetPlayer(newTestHandle())
}

func TestReleasedPlayerIsNotReturned(t *testing.T) {
	env := newTestEnvironment()
	h := newTestHandle()
	env.SetPlayer(h)
	h.Release()
	if _, ok := env.Player(); ok {
		t.Fatalf("expected a released handle not to be returned")
	}
}

func TestPause(t *testing.T) {
	env := newTestEnvironment()
	if env.Paused() {
		t.Fatalf("expected a new environment not to be paused")
	}
	env.Pause()
	if !env.Paused() {
		t.Fatalf("expected the environment to be paused")
	}
	env.Resume()
	if env.Paused() {
		t.Fatalf("expected the environment to be resumed")
	}
}
