package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect returns the distance along the ray to the first surface crossing.
// direction must be unit length. The entry root is preferred; when it lies
// behind the origin the exit root is used, so a ray starting inside the
// sphere reports where it leaves.
func (s Sphere) Intersect(origin, direction core.Vec3) (float64, bool) {
	// Vector from ray origin to sphere center, projected onto the ray
	l := r3.Sub(s.Center, origin)
	tca := r3.Dot(l, direction)

	// Squared distance from the center to the ray line
	d2 := r3.Dot(l, l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	thc := math.Sqrt(r2 - d2)
	t := tca - thc
	if t < 0 {
		t = tca + thc
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Normal returns the outward unit normal at a point on the surface
func (s Sphere) Normal(point core.Vec3) core.Vec3 {
	return r3.Unit(r3.Sub(point, s.Center))
}
