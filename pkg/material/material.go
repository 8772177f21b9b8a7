package material

import "github.com/df07/go-sphere-raycaster/pkg/core"

// Material represents a perfectly diffuse surface.
// It is a small value type and is copied into every sphere that uses it.
type Material struct {
	DiffuseColor core.Vec3 // Base color, conventionally in [0,1] per channel
}

// NewMaterial creates a new diffuse material
func NewMaterial(diffuseColor core.Vec3) Material {
	return Material{DiffuseColor: diffuseColor}
}
