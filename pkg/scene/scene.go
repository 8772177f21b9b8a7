package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/geometry"
	"github.com/df07/go-sphere-raycaster/pkg/lights"
)

// DefaultHorizon is the far cutoff: hits at or beyond it count as misses.
const DefaultHorizon = 1000.0

// DefaultBackground is the light coral color returned for rays that miss.
var DefaultBackground = core.NewVec3(1.00, 0.30, 0.20)

// Scene contains all the elements needed for rendering.
// It is read-only once constructed and safe to share between workers.
type Scene struct {
	Spheres    []geometry.Sphere   // Scanned in order; earlier spheres win distance ties
	Lights     []lights.PointLight // Lights in the scene
	Background core.Vec3           // Color for rays that hit nothing
	Horizon    float64             // Far cutoff; zero means DefaultHorizon
}

// New creates a scene with the default background and horizon
func New(spheres []geometry.Sphere, lightList []lights.PointLight) *Scene {
	return &Scene{
		Spheres:    spheres,
		Lights:     lightList,
		Background: DefaultBackground,
		Horizon:    DefaultHorizon,
	}
}

// GetHorizon returns the effective far cutoff
func (s *Scene) GetHorizon() float64 {
	if s.Horizon <= 0 {
		return DefaultHorizon
	}
	return s.Horizon
}

// Intersect finds the nearest sphere hit by the ray within the horizon
func (s *Scene) Intersect(ray core.Ray) (*geometry.HitRecord, bool) {
	return Intersect(ray, s.Spheres, s.GetHorizon())
}

// Intersect scans every sphere and returns the closest hit closer than horizon.
// ray.Direction must be unit length. Only a strictly smaller distance replaces
// the current best, so on equal distances the earlier sphere is kept.
func Intersect(ray core.Ray, spheres []geometry.Sphere, horizon float64) (*geometry.HitRecord, bool) {
	closest := math.MaxFloat64
	index := -1

	for i := range spheres {
		if dist, ok := spheres[i].Intersect(ray.Origin, ray.Direction); ok && dist < closest {
			closest = dist
			index = i
		}
	}

	if index < 0 || closest >= horizon {
		return nil, false
	}

	point := ray.At(closest)
	return &geometry.HitRecord{
		T:        closest,
		Point:    point,
		Normal:   spheres[index].Normal(point),
		Material: spheres[index].Material,
	}, true
}

// Validate reports degenerate geometry and non-finite values.
// The renderer never calls it; scenes loaded from files are checked with it.
func (s *Scene) Validate() error {
	var errs []error
	for i, sp := range s.Spheres {
		if !(sp.Radius > 0) || math.IsInf(sp.Radius, 0) {
			errs = append(errs, fmt.Errorf("sphere %d: radius must be positive and finite, got %v", i, sp.Radius))
		}
		if !core.IsFinite(sp.Center) {
			errs = append(errs, fmt.Errorf("sphere %d: center is not finite", i))
		}
		if !core.IsFinite(sp.Material.DiffuseColor) {
			errs = append(errs, fmt.Errorf("sphere %d: diffuse color is not finite", i))
		}
	}
	for i, l := range s.Lights {
		if !core.IsFinite(l.Position) {
			errs = append(errs, fmt.Errorf("light %d: position is not finite", i))
		}
		if math.IsNaN(l.Intensity) || math.IsInf(l.Intensity, 0) {
			errs = append(errs, fmt.Errorf("light %d: intensity is not finite", i))
		}
	}
	if !core.IsFinite(s.Background) {
		errs = append(errs, errors.New("background is not finite"))
	}
	return errors.Join(errs...)
}
