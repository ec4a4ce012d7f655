package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRayInterceptWithinRange(t *testing.T) {
	ray := Ray{Origin: mgl64.Vec3{-1, 0.5, 0.5}, Direction: mgl64.Vec3{1, 0, 0}, Far: DefaultInteractionRange}
	hit, dist, ok := ray.Intercept(UnitBox(mgl64.Vec3{}))
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(dist-1) > 1e-5 {
		t.Fatalf("expected distance 1, got %v", dist)
	}
	if math.Abs(hit.X()) > 1e-5 {
		t.Fatalf("expected hit on the x=0 face, got %v", hit)
	}
}

func TestRayInterceptOutOfRange(t *testing.T) {
	ray := Ray{Origin: mgl64.Vec3{-2, 0.5, 0.5}, Direction: mgl64.Vec3{1, 0, 0}, Far: DefaultInteractionRange}
	if _, _, ok := ray.Intercept(UnitBox(mgl64.Vec3{})); ok {
		t.Fatalf("expected no hit beyond range")
	}
}

func TestRayInterceptFromInside(t *testing.T) {
	ray := Ray{Origin: mgl64.Vec3{0.5, 0.5, 0.5}, Direction: Forward, Far: 1}
	if _, dist, ok := ray.Intercept(UnitBox(mgl64.Vec3{})); !ok || dist != 0 {
		t.Fatalf("expected immediate hit, got ok=%v dist=%v", ok, dist)
	}
}

func TestRaycasterSetKeepsRange(t *testing.T) {
	r := NewRaycaster(0, 1.5)
	r.Set(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, -1, 0})

	ray := r.Ray()
	if ray.Origin != (mgl64.Vec3{1, 2, 3}) || ray.Direction != (mgl64.Vec3{0, -1, 0}) {
		t.Fatalf("unexpected ray %+v", ray)
	}
	if ray.Far != 1.5 || ray.Near != 0 {
		t.Fatalf("expected range to be kept, got %+v", ray)
	}
	if p := ray.At(2); p != (mgl64.Vec3{1, 0, 3}) {
		t.Fatalf("unexpected point %v", p)
	}
}
