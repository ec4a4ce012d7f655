package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// EulerOrder is the axis order Euler angles are expressed in.
type EulerOrder string

const (
	EulerXYZ EulerOrder = "XYZ"
	EulerYXZ EulerOrder = "YXZ"
)

// Euler holds rotation angles in radians together with the order they apply in.
type Euler struct {
	X, Y, Z float64
	Order   EulerOrder
}

// YawOnly returns the quaternion with its pitch and roll components zeroed, renormalised so that
// rotating by it keeps the length of the rotated vector. A quaternion with no yaw component left
// becomes the identity.
func YawOnly(q mgl64.Quat) mgl64.Quat {
	q.V[0], q.V[2] = 0, 0
	if l := q.Len(); l < 1e-9 {
		return mgl64.QuatIdent()
	}
	return q.Normalize()
}

// YawPitch returns the quaternion rotating Forward by pitch around the X axis first, then by yaw
// around Up.
func YawPitch(yaw, pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up).Mul(mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0})).Normalize()
}

// AnglesFromQuat extracts the yaw and pitch angles of the direction q faces.
func AnglesFromQuat(q mgl64.Quat) (yaw, pitch float64) {
	f := q.Rotate(Forward)
	return math.Atan2(f.X(), f.Z()), math.Asin(mgl64.Clamp(-f.Y(), -1, 1))
}

// LookRotation returns the rotation that points Forward from eye towards target. If both points are
// the same the identity is returned.
func LookRotation(eye, target mgl64.Vec3) mgl64.Quat {
	d := target.Sub(eye)
	if d.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	d = d.Normalize()
	yaw := math.Atan2(d.X(), d.Z())
	pitch := math.Asin(mgl64.Clamp(-d.Y(), -1, 1))
	return YawPitch(yaw, pitch)
}

// InitialLookTarget returns the point distance units ahead of pos along the heading yaw, measured in
// the horizontal plane from the X axis towards the Z axis.
func InitialLookTarget(pos mgl64.Vec3, yaw, distance float64) mgl64.Vec3 {
	return mgl64.Vec3{
		pos.X() + distance*math.Cos(yaw),
		pos.Y(),
		pos.Z() + distance*math.Sin(yaw),
	}
}

// EulerFromQuat converts q to Euler angles in the order given. Unknown orders fall back to XYZ.
func EulerFromQuat(q mgl64.Quat, order EulerOrder) Euler {
	m := q.Normalize().Mat4()
	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m21, m22, m23 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m31, m32, m33 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	e := Euler{Order: order}
	switch order {
	case EulerYXZ:
		e.X = math.Asin(-mgl64.Clamp(m23, -1, 1))
		if math.Abs(m23) < 0.9999999 {
			e.Y = math.Atan2(m13, m33)
			e.Z = math.Atan2(m21, m22)
		} else {
			e.Y = math.Atan2(-m31, m11)
		}
	default:
		e.Order = EulerXYZ
		e.Y = math.Asin(mgl64.Clamp(m13, -1, 1))
		if math.Abs(m13) < 0.9999999 {
			e.X = math.Atan2(-m23, m33)
			e.Z = math.Atan2(-m12, m11)
		} else {
			e.X = math.Atan2(m32, m22)
		}
	}
	return e
}

// QuatFromEuler converts Euler angles back to a quaternion. Unknown orders are treated as XYZ.
func QuatFromEuler(e Euler) mgl64.Quat {
	qx := mgl64.QuatRotate(e.X, mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(e.Y, Up)
	qz := mgl64.QuatRotate(e.Z, mgl64.Vec3{0, 0, 1})
	if e.Order == EulerYXZ {
		return qy.Mul(qx).Mul(qz).Normalize()
	}
	return qx.Mul(qy).Mul(qz).Normalize()
}

// Vec32To64 converts a 32-bit vector to a 64-bit one.
func Vec32To64(vec3 mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(vec3[0]), float64(vec3[1]), float64(vec3[2])}
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// Quat32To64 converts a 32-bit quaternion to a 64-bit one.
func Quat32To64(q mgl32.Quat) mgl64.Quat {
	return mgl64.Quat{W: float64(q.W), V: Vec32To64(q.V)}
}

// Vec3ApproxEq reports whether every component of a and b is within 1e-9 of each other.
func Vec3ApproxEq(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}

// Vec3HzLen returns the length of the horizontal component of a vector.
func Vec3HzLen(vec3 mgl64.Vec3) float64 {
	return math.Hypot(vec3.X(), vec3.Z())
}

// ClampVec2 scales v down to unit length if it is longer than one.
func ClampVec2(v mgl64.Vec2) mgl64.Vec2 {
	if l := v.Len(); l > 1 {
		return v.Mul(1 / l)
	}
	return v
}

// cameraFlip turns the viewer frame, which looks along Forward, into the camera frame used by
// renderers, which looks down -Z.
var cameraFlip = mgl64.QuatRotate(math.Pi, Up)

// ViewerToCamera returns the rotation a renderer's camera needs to look the way a viewer with
// orientation q does.
func ViewerToCamera(q mgl64.Quat) mgl64.Quat {
	return q.Mul(cameraFlip).Normalize()
}

// CameraToViewer is the inverse of ViewerToCamera.
func CameraToViewer(q mgl64.Quat) mgl64.Quat {
	return q.Mul(cameraFlip.Inverse()).Normalize()
}
