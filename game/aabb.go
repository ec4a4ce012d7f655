package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// CapsuleBox returns the axis aligned box enclosing an upright capsule centred on pos.
func CapsuleBox(pos mgl64.Vec3, radius, height float64) cube.BBox {
	r, h := float32(radius), float32(height)/2
	p := Vec64To32(pos)
	return cube.Box(-r, -h, -r, r, h, r).Translate(p)
}

// UnitBox returns a one-metre box with its minimum corner at pos.
func UnitBox(pos mgl64.Vec3) cube.BBox {
	return cube.Box(0, 0, 0, 1, 1, 1).Translate(Vec64To32(pos))
}
