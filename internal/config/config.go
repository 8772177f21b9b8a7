// Package config handles render configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/imageio"
	"github.com/df07/go-sphere-raycaster/pkg/renderer"
)

// Config holds all render settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds camera and frame driver settings.
type RenderConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	FOV        float64 `yaml:"fov"`         // Vertical field of view in radians
	Workers    int     `yaml:"workers"`     // 1 renders single-threaded, 0 uses every CPU
	BandHeight int     `yaml:"band_height"` // Rows per parallel task
}

// OutputConfig holds image output settings.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // ppm, png, bmp or gif; empty picks by extension
}

// SceneConfig selects the scene to render.
type SceneConfig struct {
	Source  string  `yaml:"source"`  // Built-in scene name or path to a YAML scene file
	Horizon float64 `yaml:"horizon"` // Overrides the scene's far cutoff when > 0
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when nothing else is given:
// the default scene at 1050x750 with a 1 radian FOV, written to ./picture.ppm.
func Default() *Config {
	camera := renderer.DefaultCameraConfig()
	return &Config{
		Render: RenderConfig{
			Width:      camera.Width,
			Height:     camera.Height,
			FOV:        camera.FOV,
			Workers:    1,
			BandHeight: renderer.DefaultBandHeight,
		},
		Output: OutputConfig{
			Path:   "./picture.ppm",
			Format: "",
		},
		Scene: SceneConfig{
			Source: "default",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings that would make a render impossible.
func (c *Config) Validate() error {
	var errs []error
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("render: resolution must be positive, got %dx%d", c.Render.Width, c.Render.Height))
	}
	if !(c.Render.FOV > 0 && c.Render.FOV < math.Pi) {
		errs = append(errs, fmt.Errorf("render: fov must be in (0, pi) radians, got %v", c.Render.FOV))
	}
	if c.Render.Workers < 0 {
		errs = append(errs, fmt.Errorf("render: workers must not be negative, got %d", c.Render.Workers))
	}
	if c.Render.BandHeight < 0 {
		errs = append(errs, fmt.Errorf("render: band_height must not be negative, got %d", c.Render.BandHeight))
	}
	if c.Output.Path == "" {
		errs = append(errs, errors.New("output: path must not be empty"))
	}
	if _, err := c.OutputFormat(); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	if c.Scene.Source == "" {
		errs = append(errs, errors.New("scene: source must not be empty"))
	}
	if c.Scene.Horizon < 0 {
		errs = append(errs, fmt.Errorf("scene: horizon must not be negative, got %v", c.Scene.Horizon))
	}
	return errors.Join(errs...)
}

// OutputFormat resolves the image format, falling back to the output file extension.
func (c *Config) OutputFormat() (imageio.Format, error) {
	if c.Output.Format == "" {
		return imageio.FormatFromPath(c.Output.Path), nil
	}
	return imageio.ParseFormat(c.Output.Format)
}

// RendererConfig converts the render section into renderer settings.
// Workers == 0 is passed through so the worker pool picks the CPU count.
func (c *Config) RendererConfig() renderer.RenderConfig {
	return renderer.RenderConfig{
		Camera: renderer.CameraConfig{
			Width:  c.Render.Width,
			Height: c.Render.Height,
			FOV:    c.Render.FOV,
			Origin: core.NewVec3(0, 0, 0),
		},
		Workers:    c.Render.Workers,
		BandHeight: c.Render.BandHeight,
	}
}
