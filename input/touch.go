package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sasha-s/go-deadlock"
)

// TouchLook turns a single-finger drag into look orientation. Only the finger that started the
// drag steers; other touches are ignored until it lifts.
type TouchLook struct {
	look

	touchMu      deadlock.Mutex
	active       bool
	id           int
	lastX, lastY float64
}

// NewTouchLook returns a TouchLook turning sensitivity radians per pixel dragged.
func NewTouchLook(sensitivity float64) *TouchLook {
	return &TouchLook{look: look{sensitivity: sensitivity}}
}

// Start begins a drag with touch id at the screen position passed.
func (t *TouchLook) Start(id int, x, y float64) {
	t.touchMu.Lock()
	defer t.touchMu.Unlock()
	if t.active {
		return
	}
	t.active, t.id, t.lastX, t.lastY = true, id, x, y
}

// Move continues a drag. Dragging right turns left and dragging down looks up, as if the finger was
// pulling the scene along.
func (t *TouchLook) Move(id int, x, y float64) {
	t.touchMu.Lock()
	if !t.active || t.id != id {
		t.touchMu.Unlock()
		return
	}
	dx, dy := x-t.lastX, y-t.lastY
	t.lastX, t.lastY = x, y
	t.touchMu.Unlock()

	t.drag(-dx, -dy)
}

// End finishes the drag of touch id.
func (t *TouchLook) End(id int) {
	t.touchMu.Lock()
	if t.active && t.id == id {
		t.active = false
	}
	t.touchMu.Unlock()
}

// Orientation ...
func (t *TouchLook) Orientation() mgl64.Quat { return t.orientation() }

// Orient ...
func (t *TouchLook) Orient(q mgl64.Quat) { t.orient(q) }
