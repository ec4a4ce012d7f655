package handler

import (
	"io"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/environment"
	"github.com/oomph-ac/pawn/game"
	"github.com/oomph-ac/pawn/input"
	"github.com/oomph-ac/pawn/network"
	"github.com/oomph-ac/pawn/physics"
	"github.com/oomph-ac/pawn/player"
	"github.com/sirupsen/logrus"
)

type testRig struct {
	env  *environment.Environment
	body *physics.Capsule
	p    *player.Player
	sim  *network.Recorder
}

func newTestRig(t *testing.T, scheme input.Scheme) *testRig {
	log := logrus.New()
	log.SetOutput(io.Discard)

	start := mgl64.Vec3{0, 1, 0}
	cfg := player.DefaultConfig()
	cfg.Position = start

	r := &testRig{
		env:  environment.New(log),
		body: physics.NewCapsule(physics.DefaultCapsuleConfig(start)),
		sim:  network.NewRecorder(game.DefaultSyncFrequency),
	}
	controls := input.NewControls(scheme, input.Sensitivity{Pointer: game.DefaultPointerSpeed, Touch: game.DefaultTouchSpeed})
	r.p = player.New(r.env, r.body, controls, cfg, log)
	RegisterHandlers(r.p, r.sim, "")
	t.Cleanup(r.p.Close)
	return r
}

func (r *testRig) movement() *MovementHandler {
	h, _ := r.p.Handler(HandlerIDMovement)
	return h.(*MovementHandler)
}

func (r *testRig) sync() *SyncHandler {
	h, _ := r.p.Handler(HandlerIDSync)
	return h.(*SyncHandler)
}

func TestRegisterHandlersOrder(t *testing.T) {
	desktop := newTestRig(t, input.SchemeKeyboardPointer)
	ids := desktop.p.HandlerIDs()
	if len(ids) != 3 || ids[0] != HandlerIDInteraction || ids[1] != HandlerIDMovement || ids[2] != HandlerIDSync {
		t.Fatalf("unexpected desktop handlers %v", ids)
	}

	touch := newTestRig(t, input.SchemeTouchFallback)
	ids = touch.p.HandlerIDs()
	if len(ids) != 2 || ids[0] != HandlerIDMovement || ids[1] != HandlerIDSync {
		t.Fatalf("unexpected touch handlers %v", ids)
	}
	if touch.p.Raycaster() != touch.env.Ambient() {
		t.Fatalf("expected touch players to use the ambient ray")
	}
}

func TestMovementForwardFromRest(t *testing.T) {
	r := newTestRig(t, input.SchemeKeyboardPointer)
	if f := r.p.Camera().Forward(game.Forward); !f.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Fatalf("expected the player to start looking at (100, 1, 0), got forward %v", f)
	}

	for _, priorY := range []float64{-3, 5} {
		r.p.Handle().Velocity().Set(mgl64.Vec3{0, priorY, 0})
		r.p.Controls().Pointer.Orient(mgl64.QuatIdent())
		r.p.Controls().Keyboard.Press(input.KeyForward)
		r.p.Tick(player.Frame{Delta: 0.1})

		want := mgl64.Vec3{0, min(priorY, 0), 32}
		if got := r.body.Velocity(); !got.ApproxEqualThreshold(want, 1e-9) {
			t.Fatalf("expected engine velocity %v, got %v", want, got)
		}
		if got := r.p.Velocity(); !got.ApproxEqualThreshold(want, 1e-9) {
			t.Fatalf("expected cached velocity %v, got %v", want, got)
		}
	}
}

func TestMovementStopsOnZeroInput(t *testing.T) {
	r := newTestRig(t, input.SchemeKeyboardPointer)
	r.p.Handle().Velocity().Set(mgl64.Vec3{4, -1, 4})
	r.p.Tick(player.Frame{Delta: 0.016})
	if got := r.body.Velocity(); got != (mgl64.Vec3{0, -1, 0}) {
		t.Fatalf("expected (0, -1, 0) without input, got %v", got)
	}
}

func TestMovementLockedIssuesNothing(t *testing.T) {
	r := newTestRig(t, input.SchemeKeyboardPointer)
	r.p.Handle().Controls().Lock()
	r.p.Handle().Velocity().Set(mgl64.Vec3{1, 2, 3})
	r.p.Controls().Keyboard.Press(input.KeyLeft)
	r.p.Tick(player.Frame{Delta: 0.016})

	if got := r.body.Velocity(); got != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("expected the engine velocity to be left alone, got %v", got)
	}
	if r.movement().Issued != 0 {
		t.Fatalf("expected no command to be issued")
	}

	r.p.Handle().Controls().Unlock()
	r.p.Tick(player.Frame{Delta: 0.016})
	if r.movement().Issued != 1 {
		t.Fatalf("expected a command after unlocking")
	}
}

func TestMovementPausedHolds(t *testing.T) {
	r := newTestRig(t, input.SchemeKeyboardPointer)
	r.env.Pause()
	r.p.Handle().Velocity().Set(mgl64.Vec3{3, -2, 3})
	r.p.Controls().Keyboard.Press(input.KeyLeft)
	r.p.Tick(player.Frame{Delta: 0.016})

	if got := r.body.Velocity(); got != (mgl64.Vec3{}) {
		t.Fatalf("expected a hold command of (0, 0, 0), got %v", got)
	}
}

func TestInteractionRayFollowsView(t *testing.T) {
	r := newTestRig(t, input.SchemeKeyboardPointer)
	r.body.Step(0.01)
	r.p.Controls().Pointer.Orient(game.YawPitch(0, 0))
	r.p.Tick(player.Frame{Delta: 0.01})

	ray := r.p.Raycaster().Ray()
	if !ray.Direction.ApproxEqualThreshold(game.Forward, 1e-9) {
		t.Fatalf("expected the ray to point forward, got %v", ray.Direction)
	}
	if ray.Origin != r.body.Position() {
		t.Fatalf("expected the ray to start at the body %v, got %v", r.body.Position(), ray.Origin)
	}
	if ray.Far != game.DefaultInteractionRange {
		t.Fatalf("expected a reach of %v, got %v", game.DefaultInteractionRange, ray.Far)
	}
}

func TestSyncIsRateLimited(t *testing.T) {
	r := newTestRig(t, input.SchemeKeyboardPointer)
	r.body.Step(0.01)
	for i := 0; i <= 6; i++ {
		r.p.Tick(player.Frame{Delta: 1.0 / 60, Elapsed: time.Duration(i) * time.Second / 60})
	}

	sent := r.sim.Sent()
	if len(sent) != 2 || r.sync().Sent != 2 {
		t.Fatalf("expected 2 poses over 2/F seconds, got %d", len(sent))
	}
	if sent[0].Channel != "player" {
		t.Fatalf("expected poses on channel player, got %q", sent[0].Channel)
	}
}

func TestSyncSkipsWhileDisconnected(t *testing.T) {
	r := newTestRig(t, input.SchemeKeyboardPointer)
	r.sim.SetConnected(false)
	for i := 0; i < 10; i++ {
		r.p.Tick(player.Frame{Delta: 0.1, Elapsed: time.Duration(i) * 100 * time.Millisecond})
	}
	if n := len(r.sim.Sent()); n != 0 {
		t.Fatalf("expected nothing to be sent while disconnected, got %d", n)
	}
}

func TestSyncDropsFailedSends(t *testing.T) {
	r := newTestRig(t, input.SchemeKeyboardPointer)
	r.sim.FailWith(io.ErrClosedPipe)
	r.p.Tick(player.Frame{Delta: 0.1, Elapsed: time.Second})
	if r.sync().Dropped != 1 || r.sync().Sent != 0 {
		t.Fatalf("expected the failed pose to be dropped")
	}

	r.sim.FailWith(nil)
	r.p.Tick(player.Frame{Delta: 0.1, Elapsed: 2 * time.Second})
	if r.sync().Sent != 1 {
		t.Fatalf("expected the next eligible frame to send")
	}
}
