package renderer

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-sphere-raycaster/pkg/core"
)

// CameraConfig describes a pinhole camera looking down -Z
type CameraConfig struct {
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
	FOV    float64   // Vertical field of view in radians
	Origin core.Vec3 // Eye position
}

// DefaultCameraConfig returns the standard 1050x750 camera at the origin with a 1 radian FOV
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:  1050,
		Height: 750,
		FOV:    1.0,
		Origin: core.NewVec3(0, 0, 0),
	}
}

// Camera generates one primary ray per pixel
type Camera struct {
	config CameraConfig
	depth  float64 // Camera-space z of the image plane, same for every pixel
}

// NewCamera creates a pinhole camera
func NewCamera(config CameraConfig) *Camera {
	return &Camera{
		config: config,
		depth:  -float64(config.Height) / (2 * math.Tan(config.FOV/2)),
	}
}

// GetRay returns the normalized ray through the center of pixel (i, j).
// Row j grows downward in the image, so the y component is flipped.
func (c *Camera) GetRay(i, j int) core.Ray {
	x := (float64(i) + 0.5) - float64(c.config.Width)/2
	y := -(float64(j) + 0.5) + float64(c.config.Height)/2
	direction := r3.Unit(core.NewVec3(x, y, c.depth))
	return core.NewRay(c.config.Origin, direction)
}

// Config returns the camera configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}
