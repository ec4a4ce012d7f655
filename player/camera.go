package player

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sasha-s/go-deadlock"
)

// Pose is a position and rotation in world space.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Camera is the viewpoint of the player. It follows the body and may sit slightly off its centre.
type Camera struct {
	mu   deadlock.RWMutex
	pose Pose
}

func newCamera() *Camera {
	return &Camera{pose: Pose{Rotation: mgl64.QuatIdent()}}
}

// Pose returns the current pose of the camera.
func (c *Camera) Pose() Pose {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pose
}

// Forward returns the direction the camera looks in.
func (c *Camera) Forward(forward mgl64.Vec3) mgl64.Vec3 {
	return c.Pose().Rotation.Rotate(forward)
}

func (c *Camera) set(pos mgl64.Vec3, rot mgl64.Quat) {
	c.mu.Lock()
	c.pose = Pose{Position: pos, Rotation: rot}
	c.mu.Unlock()
}
