package input

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
	"github.com/sasha-s/go-deadlock"
)

// Permission is the state of the motion sensor permission.
type Permission uint8

const (
	PermissionPrompt Permission = iota
	PermissionGranted
	PermissionDenied
)

var (
	// deviceToCamera turns the device frame, which looks out of the top of the device, into one that
	// looks out of its back.
	deviceToCamera = mgl32.Quat{W: math32.Sqrt(0.5), V: mgl32.Vec3{-math32.Sqrt(0.5), 0, 0}}
)

// Gyro derives the look orientation from device orientation events. Until permission is granted and
// a first reading arrived, or when permission is denied, it reports the fallback source instead.
type Gyro struct {
	fallback OrientationSource

	mu         deadlock.Mutex
	permission Permission
	sampled    bool

	alpha, beta, gamma float32
	screen             float32

	alphaOffset float64
	targetYaw   *float64
}

// NewGyro returns a Gyro backed by fallback.
func NewGyro(fallback OrientationSource) *Gyro {
	return &Gyro{fallback: fallback}
}

// Grant records that the user allowed access to the motion sensors.
func (g *Gyro) Grant() {
	g.mu.Lock()
	g.permission = PermissionGranted
	g.mu.Unlock()
}

// Deny records that access to the motion sensors was refused. The fallback is used from then on.
func (g *Gyro) Deny() {
	g.mu.Lock()
	g.permission = PermissionDenied
	g.mu.Unlock()
}

// Permission ...
func (g *Gyro) Permission() Permission {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.permission
}

// Active reports whether orientation currently comes from the sensors.
func (g *Gyro) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.activeLocked()
}

func (g *Gyro) activeLocked() bool {
	return g.permission == PermissionGranted && g.sampled
}

// Update records a device orientation reading, in degrees. On the first reading the heading is
// aligned with whatever the viewer was facing before.
func (g *Gyro) Update(alpha, beta, gamma float32) {
	var carry *float64
	if g.Permission() == PermissionGranted && !g.Active() {
		yaw, _ := game.AnglesFromQuat(g.fallback.Orientation())
		carry = &yaw
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.permission != PermissionGranted {
		return
	}
	g.alpha, g.beta, g.gamma = alpha, beta, gamma
	if !g.sampled {
		g.sampled = true
		if g.targetYaw == nil {
			g.targetYaw = carry
		}
	}
	if g.targetYaw != nil {
		g.alignLocked(*g.targetYaw)
		g.targetYaw = nil
	}
}

// SetScreenOrientation records the screen rotation angle in degrees.
func (g *Gyro) SetScreenOrientation(deg float32) {
	g.mu.Lock()
	g.screen = deg
	g.mu.Unlock()
}

// Orientation ...
func (g *Gyro) Orientation() mgl64.Quat {
	g.mu.Lock()
	if !g.activeLocked() {
		g.mu.Unlock()
		return g.fallback.Orientation()
	}
	q := g.sensorLocked(g.alphaOffset)
	g.mu.Unlock()
	return q
}

// Orient aligns the heading with q. Sensor pitch and roll are left alone since they follow the
// device. The fallback is oriented as well.
func (g *Gyro) Orient(q mgl64.Quat) {
	g.fallback.Orient(q)
	yaw, _ := game.AnglesFromQuat(q)

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.sampled {
		g.targetYaw = &yaw
		return
	}
	g.alignLocked(yaw)
}

func (g *Gyro) alignLocked(yaw float64) {
	current, _ := game.AnglesFromQuat(g.sensorLocked(0))
	g.alphaOffset = yaw - current
}

// sensorLocked computes the viewer orientation of the last reading.
func (g *Gyro) sensorLocked(offset float64) mgl64.Quat {
	alpha := mgl32.DegToRad(g.alpha) + float32(offset)
	beta := mgl32.DegToRad(g.beta)
	gamma := mgl32.DegToRad(g.gamma)
	orient := mgl32.DegToRad(g.screen)

	q := mgl32.QuatRotate(alpha, mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(beta, mgl32.Vec3{1, 0, 0})).
		Mul(mgl32.QuatRotate(-gamma, mgl32.Vec3{0, 0, 1})).
		Mul(deviceToCamera).
		Mul(mgl32.QuatRotate(-orient, mgl32.Vec3{0, 0, 1}))

	return game.CameraToViewer(game.Quat32To64(q))
}
