package input

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
)

func TestPointerLockIgnoresMotionWhileUnlocked(t *testing.T) {
	p := NewPointerLock(0.01)
	p.Move(100, 0)
	if !p.Orientation().ApproxEqual(mgl64.QuatIdent()) {
		t.Fatalf("expected motion to be ignored while unlocked, got %v", p.Orientation())
	}

	p.Lock()
	p.Move(100, 0)
	yaw, pitch := p.angles()
	if math.Abs(yaw+1) > 1e-9 || pitch != 0 {
		t.Fatalf("expected yaw -1 and pitch 0, got %v and %v", yaw, pitch)
	}

	p.Unlock()
	p.Move(100, 0)
	if y, _ := p.angles(); math.Abs(y+1) > 1e-9 {
		t.Fatalf("expected yaw to stay at -1 after unlocking, got %v", y)
	}
}

func TestPointerLockClampsPitch(t *testing.T) {
	p := NewPointerLock(0.01)
	p.Lock()
	p.Move(0, 1e6)
	if _, pitch := p.angles(); pitch != game.MaxPitch {
		t.Fatalf("expected pitch to be clamped to %v, got %v", game.MaxPitch, pitch)
	}
	p.Move(0, -1e7)
	if _, pitch := p.angles(); pitch != -game.MaxPitch {
		t.Fatalf("expected pitch to be clamped to %v, got %v", -game.MaxPitch, pitch)
	}
	f := p.Orientation().Rotate(game.Forward)
	if f.Y() <= 0.99 {
		t.Fatalf("expected to look almost straight up, got %v", f)
	}
}

func TestOrientRoundTrip(t *testing.T) {
	p := NewPointerLock(0.01)
	want := game.YawPitch(1.2, -0.3)
	p.Orient(want)
	if got := p.Orientation(); !got.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("expected orientation %v, got %v", want, got)
	}
}

func TestTouchLookFollowsSingleFinger(t *testing.T) {
	l := NewTouchLook(0.01)
	l.Start(1, 100, 100)
	l.Start(2, 0, 0)

	l.Move(2, 500, 500)
	if y, p := l.angles(); y != 0 || p != 0 {
		t.Fatalf("expected a second finger to be ignored, got yaw %v pitch %v", y, p)
	}

	l.Move(1, 150, 90)
	yaw, pitch := l.angles()
	if math.Abs(yaw-0.5) > 1e-9 || math.Abs(pitch-0.1) > 1e-9 {
		t.Fatalf("expected yaw 0.5 and pitch 0.1, got %v and %v", yaw, pitch)
	}

	l.End(1)
	l.Move(1, 1000, 1000)
	if y, _ := l.angles(); math.Abs(y-0.5) > 1e-9 {
		t.Fatalf("expected the ended drag to be ignored, got yaw %v", y)
	}
}
