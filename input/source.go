package input

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// DirectionSource produces the planar movement direction of the current frame. X is the strafe axis
// and Y the forward/back axis, both within [-1, 1].
type DirectionSource interface {
	Direction() mgl64.Vec2
}

// OrientationSource produces the look orientation of the viewer.
type OrientationSource interface {
	Orientation() mgl64.Quat
	// Orient resets the source so that it currently reports q.
	Orient(q mgl64.Quat)
}

// Scheme is one of the fixed combinations of input sources an actor may be built with.
type Scheme uint8

const (
	// SchemeKeyboardPointer is the desktop scheme: keyboard axes and pointer-lock look.
	SchemeKeyboardPointer Scheme = iota
	// SchemeTouchGyro is the mobile scheme: virtual joystick and device orientation, falling back
	// to touch look while the sensor is unavailable.
	SchemeTouchGyro
	// SchemeTouchFallback is the mobile scheme with the gyro disabled: virtual joystick and touch look.
	SchemeTouchFallback
)

// String ...
func (s Scheme) String() string {
	switch s {
	case SchemeKeyboardPointer:
		return "keyboard+pointer"
	case SchemeTouchGyro:
		return "touch+gyro"
	case SchemeTouchFallback:
		return "touch+fallback"
	}
	return "unknown"
}

// TouchFirst reports whether the scheme targets touch screens.
func (s Scheme) TouchFirst() bool {
	return s != SchemeKeyboardPointer
}

// Platform is the capability class of the device running the actor.
type Platform struct {
	Mobile bool
}

var mobileAgents = []string{"android", "iphone", "ipad", "ipod", "mobile", "silk", "kindle", "opera mini", "iemobile"}

// DetectPlatform classifies a user agent string.
func DetectPlatform(userAgent string) Platform {
	ua := strings.ToLower(userAgent)
	for _, a := range mobileAgents {
		if strings.Contains(ua, a) {
			return Platform{Mobile: true}
		}
	}
	return Platform{}
}

// Resolve selects the scheme for a platform. It is called once when an actor is created.
func Resolve(p Platform, disableGyro bool) Scheme {
	switch {
	case !p.Mobile:
		return SchemeKeyboardPointer
	case disableGyro:
		return SchemeTouchFallback
	default:
		return SchemeTouchGyro
	}
}

// Sensitivity holds the look speeds of the orientation sources, in radians per pixel.
type Sensitivity struct {
	Pointer float64
	Touch   float64
}

// Controls is the pair of sources resolved for an actor, together with the concrete sources so that
// event producers can feed them. Sources not part of the scheme are nil.
type Controls struct {
	Scheme      Scheme
	Direction   DirectionSource
	Orientation OrientationSource

	Keyboard *Keyboard
	Pointer  *PointerLock
	Joystick *Joystick
	Touch    *TouchLook
	Gyro     *Gyro
}

// NewControls builds the sources of the scheme passed.
func NewControls(scheme Scheme, s Sensitivity) *Controls {
	c := &Controls{Scheme: scheme}
	switch scheme {
	case SchemeKeyboardPointer:
		c.Keyboard = NewKeyboard()
		c.Pointer = NewPointerLock(s.Pointer)
		c.Direction, c.Orientation = c.Keyboard, c.Pointer
	case SchemeTouchGyro:
		c.Joystick = NewJoystick()
		c.Touch = NewTouchLook(s.Touch)
		c.Gyro = NewGyro(c.Touch)
		c.Direction, c.Orientation = c.Joystick, c.Gyro
	default:
		c.Scheme = SchemeTouchFallback
		c.Joystick = NewJoystick()
		c.Touch = NewTouchLook(s.Touch)
		c.Direction, c.Orientation = c.Joystick, c.Touch
	}
	return c
}
