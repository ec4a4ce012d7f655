package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sasha-s/go-deadlock"
)

// Ray is a bounded ray used for proximity and interaction queries.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	Near, Far float64
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Intercept returns the first point where the ray enters bb within [Near, Far], and the distance
// from the origin to that point.
func (r Ray) Intercept(bb cube.BBox) (mgl64.Vec3, float64, bool) {
	if r.Direction.Len() == 0 || r.Far <= r.Near {
		return mgl64.Vec3{}, 0, false
	}
	dir := r.Direction.Normalize()
	start, end := r.Origin.Add(dir.Mul(r.Near)), r.Origin.Add(dir.Mul(r.Far))

	if within(bb, start) {
		return start, r.Near, true
	}
	res, ok := trace.BBoxIntercept(bb, Vec64To32(start), Vec64To32(end))
	if !ok {
		return mgl64.Vec3{}, 0, false
	}
	hit := Vec32To64(res.Position())
	return hit, hit.Sub(r.Origin).Len(), true
}

func within(bb cube.BBox, v mgl64.Vec3) bool {
	lo, hi := Vec32To64(bb.Min()), Vec32To64(bb.Max())
	return v.X() > lo.X() && v.X() < hi.X() &&
		v.Y() > lo.Y() && v.Y() < hi.Y() &&
		v.Z() > lo.Z() && v.Z() < hi.Z()
}

// Raycaster holds a Ray that is rewritten by one goroutine and read by others.
type Raycaster struct {
	mu  deadlock.RWMutex
	ray Ray
}

// NewRaycaster returns a Raycaster limited to the range passed.
func NewRaycaster(near, far float64) *Raycaster {
	return &Raycaster{ray: Ray{Direction: Forward, Near: near, Far: far}}
}

// Ray returns a copy of the current ray.
func (r *Raycaster) Ray() Ray {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ray
}

// Set moves the ray to origin and points it along direction, keeping its range.
func (r *Raycaster) Set(origin, direction mgl64.Vec3) {
	r.mu.Lock()
	r.ray.Origin = origin
	r.ray.Direction = direction
	r.mu.Unlock()
}

// Intercept casts the current ray against bb.
func (r *Raycaster) Intercept(bb cube.BBox) (mgl64.Vec3, float64, bool) {
	return r.Ray().Intercept(bb)
}
