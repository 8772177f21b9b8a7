package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a point, direction or RGB color. Arithmetic is done with the
// r3 package functions (r3.Add, r3.Sub, r3.Scale, r3.Dot, r3.Unit).
type Vec3 = r3.Vec

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func Clamp(v Vec3, minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// IsFinite reports whether no component is NaN or infinite
func IsFinite(v Vec3) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ToRGB8 converts a linear color to 8-bit channels.
// Each channel is clamped to [0,1], scaled by 255 and truncated.
func ToRGB8(v Vec3) (r, g, b uint8) {
	c := Clamp(v, 0, 1)
	return uint8(255 * c.X), uint8(255 * c.Y), uint8(255 * c.Z)
}
