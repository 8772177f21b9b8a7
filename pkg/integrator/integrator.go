package integrator

import (
	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/scene"
)

// Integrator defines the interface for computing the color seen along a ray
type Integrator interface {
	// RayColor returns the unclamped color for a ray and whether it hit a surface.
	// The ray direction must be unit length.
	RayColor(ray core.Ray, scene *scene.Scene) (core.Vec3, bool)
}
