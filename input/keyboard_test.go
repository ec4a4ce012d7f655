package input

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestKeyboardDirection(t *testing.T) {
	k := NewKeyboard()
	if d := k.Direction(); d != (mgl64.Vec2{}) {
		t.Fatalf("expected no direction without keys held, got %v", d)
	}

	k.Press(KeyForward)
	if d := k.Direction(); d != (mgl64.Vec2{0, 1}) {
		t.Fatalf("expected (0, 1) while holding forward, got %v", d)
	}

	k.Press(KeyRight)
	d := k.Direction()
	if math.Abs(d.Len()-1) > 1e-9 {
		t.Fatalf("expected diagonal to be normalised, got length %v", d.Len())
	}
	if d.X() >= 0 || d.Y() <= 0 {
		t.Fatalf("expected right strafe to be negative x, got %v", d)
	}

	k.Press(KeyLeft)
	if d := k.Direction(); d != (mgl64.Vec2{0, 1}) {
		t.Fatalf("expected opposite strafe keys to cancel, got %v", d)
	}

	k.ReleaseAll()
	if d := k.Direction(); d != (mgl64.Vec2{}) {
		t.Fatalf("expected no direction after releasing all keys, got %v", d)
	}
}

func TestKeyFromRune(t *testing.T) {
	cases := map[rune]Key{'w': KeyForward, 'Z': KeyForward, 's': KeyBackward, 'q': KeyLeft, 'A': KeyLeft, 'd': KeyRight}
	for r, want := range cases {
		got, ok := KeyFromRune(r)
		if !ok || got != want {
			t.Fatalf("expected %q to map to %v, got %v (ok=%v)", r, want, got, ok)
		}
	}
	if _, ok := KeyFromRune('x'); ok {
		t.Fatalf("expected 'x' not to be a movement key")
	}
}

func TestJoystickDirection(t *testing.T) {
	j := NewJoystick()
	j.Move(math.Pi/2, 1)
	if d := j.Direction(); !d.ApproxEqualThreshold(mgl64.Vec2{0, 1}, 1e-9) {
		t.Fatalf("expected pushing up to be forward, got %v", d)
	}

	j.Move(0, 5)
	if d := j.Direction(); !d.ApproxEqualThreshold(mgl64.Vec2{-1, 0}, 1e-9) {
		t.Fatalf("expected pushing right to strafe along -x with clamped force, got %v", d)
	}

	j.Move(math.Pi, 0.5)
	if d := j.Direction(); !d.ApproxEqualThreshold(mgl64.Vec2{0.5, 0}, 1e-9) {
		t.Fatalf("expected half force left, got %v", d)
	}

	j.End()
	if d := j.Direction(); d != (mgl64.Vec2{}) {
		t.Fatalf("expected the stick to recentre, got %v", d)
	}
}
