package game

import "github.com/go-gl/mathgl/mgl64"

const (
	// DefaultSpeed is the commanded walking speed in m/s. For reference, 1.4 is a walk, 2.2 a jog
	// and 6.6 a run.
	DefaultSpeed = 3.2
	// DefaultStrafeFactor dampens sideways input relative to forward input.
	DefaultStrafeFactor = 0.75
	// DefaultTickScale compensates for the fixed internal step the physics engine assumes when it
	// receives a velocity command. It is a tuning constant, not a physical one.
	DefaultTickScale = 100.0

	DefaultInteractionRange = 1.5
	DefaultLookDistance     = 100.0
	DefaultJumpImpulse      = 5.0

	DefaultGravity        = -9.81
	DefaultCapsuleRadius  = 0.25
	DefaultCapsuleHeight  = 1.5
	DefaultSyncFrequency  = 20.0
	DefaultTickRate       = 60
	DefaultSyncChannel    = "player"
	MaxPitch              = 1.5707963267948966 - 1e-3
	DefaultPointerSpeed   = 0.002
	DefaultTouchSpeed     = 0.005
	DefaultJoystickRadius = 1.0
)

var (
	// Forward is the local axis the viewer looks along.
	Forward = mgl64.Vec3{0, 0, 1}
	// Up is the world up axis. Gravity acts against it.
	Up = mgl64.Vec3{0, 1, 0}
	// Right is the local strafe-right axis for a viewer facing Forward.
	Right = mgl64.Vec3{-1, 0, 0}
)
