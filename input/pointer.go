package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/atomic"
)

// PointerLock turns relative mouse motion into look orientation while the pointer is captured.
type PointerLock struct {
	look
	locked atomic.Bool
}

// NewPointerLock returns a PointerLock turning sensitivity radians per pixel of motion.
func NewPointerLock(sensitivity float64) *PointerLock {
	return &PointerLock{look: look{sensitivity: sensitivity}}
}

// Lock captures the pointer.
func (p *PointerLock) Lock() { p.locked.Store(true) }

// Unlock releases the pointer. Motion is ignored until the next Lock.
func (p *PointerLock) Unlock() { p.locked.Store(false) }

// Locked ...
func (p *PointerLock) Locked() bool { return p.locked.Load() }

// Move applies relative pointer motion in pixels. Positive dx turns right, positive dy looks down.
func (p *PointerLock) Move(dx, dy float64) {
	if !p.locked.Load() {
		return
	}
	p.drag(dx, dy)
}

// Orientation ...
func (p *PointerLock) Orientation() mgl64.Quat { return p.orientation() }

// Orient ...
func (p *PointerLock) Orient(q mgl64.Quat) { p.orient(q) }
