package geometry

import (
	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/material"
)

// HitRecord contains information about a ray-sphere intersection
type HitRecord struct {
	T        float64           // Distance along the ray
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Outward surface normal
	Material material.Material // Material of the sphere that was hit
}
