package integrator

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/lights"
	"github.com/df07/go-sphere-raycaster/pkg/material"
	"github.com/df07/go-sphere-raycaster/pkg/scene"
)

// DiffuseIntegrator shades the nearest hit with Lambertian direct lighting.
// There are no shadow rays and no secondary bounces.
type DiffuseIntegrator struct{}

// NewDiffuseIntegrator creates a new diffuse integrator
func NewDiffuseIntegrator() *DiffuseIntegrator {
	return &DiffuseIntegrator{}
}

// RayColor returns the shaded color of the nearest hit, or the scene background on a miss
func (d *DiffuseIntegrator) RayColor(ray core.Ray, s *scene.Scene) (core.Vec3, bool) {
	hit, ok := s.Intersect(ray)
	if !ok {
		return s.Background, false
	}
	return Shade(hit.Point, hit.Normal, hit.Material, s.Lights), true
}

// Shade computes the diffuse color at a surface point.
// Each light adds max(0, L·N) times its intensity; the sum scales the
// material color uniformly. Nothing is clamped here, so many bright lights
// can push channels well above 1 until the image is serialized.
func Shade(point, normal core.Vec3, mat material.Material, lightList []lights.PointLight) core.Vec3 {
	intensity := DiffuseIntensity(point, normal, lightList)
	return r3.Scale(intensity, mat.DiffuseColor)
}

// DiffuseIntensity returns the accumulated scalar light intensity at a point
func DiffuseIntensity(point, normal core.Vec3, lightList []lights.PointLight) float64 {
	total := 0.0
	for _, light := range lightList {
		cosine := r3.Dot(light.DirectionFrom(point), normal)
		total += light.Intensity * max(0, cosine)
	}
	return total
}
