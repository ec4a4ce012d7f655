package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
	"github.com/sasha-s/go-deadlock"
)

// look accumulates yaw and pitch from drag deltas. Pitch is clamped just short of straight up and
// down so the view never flips.
type look struct {
	mu          deadlock.Mutex
	yaw, pitch  float64
	sensitivity float64
}

func (l *look) drag(dx, dy float64) {
	l.mu.Lock()
	l.yaw -= dx * l.sensitivity
	l.pitch = mgl64.Clamp(l.pitch+dy*l.sensitivity, -game.MaxPitch, game.MaxPitch)
	l.mu.Unlock()
}

func (l *look) orientation() mgl64.Quat {
	l.mu.Lock()
	defer l.mu.Unlock()
	return game.YawPitch(l.yaw, l.pitch)
}

func (l *look) orient(q mgl64.Quat) {
	yaw, pitch := game.AnglesFromQuat(q)
	l.mu.Lock()
	l.yaw, l.pitch = yaw, mgl64.Clamp(pitch, -game.MaxPitch, game.MaxPitch)
	l.mu.Unlock()
}

func (l *look) angles() (yaw, pitch float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.yaw, l.pitch
}
