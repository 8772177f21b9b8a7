package lights

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-sphere-raycaster/pkg/core"
)

// PointLight is an omnidirectional light with a scalar intensity
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit direction FROM point TO the light
func (l PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return r3.Unit(r3.Sub(l.Position, point))
}
