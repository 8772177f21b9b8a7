package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/integrator"
	"github.com/df07/go-sphere-raycaster/pkg/scene"
)

// DefaultBandHeight is the number of rows per band when rendering in parallel
const DefaultBandHeight = 16

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Camera     CameraConfig
	Workers    int // 1 renders on the calling goroutine, 0 uses every CPU
	BandHeight int // Rows per parallel band (0 = DefaultBandHeight)
}

// DefaultRenderConfig returns the single-threaded 1050x750 configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Camera:     DefaultCameraConfig(),
		Workers:    1,
		BandHeight: DefaultBandHeight,
	}
}

// Option configures a Raytracer
type Option func(*Raytracer)

// WithLogger sets the logger used for render progress
func WithLogger(logger *zap.Logger) Option {
	return func(rt *Raytracer) {
		if logger != nil {
			rt.logger = logger
		}
	}
}

// WithIntegrator replaces the default diffuse integrator
func WithIntegrator(i integrator.Integrator) Option {
	return func(rt *Raytracer) {
		if i != nil {
			rt.integrator = i
		}
	}
}

// Raytracer casts one ray per pixel and fills a framebuffer
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	config     RenderConfig
	integrator integrator.Integrator
	logger     *zap.Logger
}

// NewRaytracer creates a new raytracer for a scene
func NewRaytracer(s *scene.Scene, config RenderConfig, opts ...Option) *Raytracer {
	rt := &Raytracer{
		scene:      s,
		camera:     NewCamera(config.Camera),
		config:     config,
		integrator: integrator.NewDiffuseIntegrator(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// RenderPixel returns the unclamped color of pixel (i, j) and whether its ray hit a sphere
func (rt *Raytracer) RenderPixel(i, j int) (core.Vec3, bool) {
	return rt.integrator.RayColor(rt.camera.GetRay(i, j), rt.scene)
}

// Render computes every pixel and returns the finished framebuffer.
// The framebuffer is only returned once all slots are filled.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	width, height := rt.config.Camera.Width, rt.config.Camera.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid resolution %dx%d", width, height)
	}

	workers := rt.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	fb := NewFramebuffer(width, height)
	bands := NewBandGrid(width, height, rt.config.BandHeight)

	rt.logger.Info("render started",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float64("fov", rt.config.Camera.FOV),
		zap.Int("spheres", len(rt.scene.Spheres)),
		zap.Int("lights", len(rt.scene.Lights)),
		zap.Int("workers", workers))

	renderBand := func(ctx context.Context, b Band) (bandResult, error) {
		return rt.renderBounds(ctx, fb, b)
	}

	var results []bandResult
	var err error
	if workers == 1 {
		results = make([]bandResult, 0, len(bands))
		for _, b := range bands {
			res, bandErr := renderBand(ctx, b)
			if bandErr != nil {
				err = bandErr
				break
			}
			results = append(results, res)
		}
	} else {
		results, err = NewWorkerPool(workers, rt.logger).Run(ctx, bands, renderBand)
	}
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render aborted: %w", err)
	}

	stats := RenderStats{
		Bands:   len(bands),
		Workers: workers,
	}
	for _, res := range results {
		stats.merge(res)
	}
	stats.Duration = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(fb.ToRGBA())

	rt.logger.Info("render completed",
		zap.Duration("duration", stats.Duration),
		zap.Int("pixels", stats.TotalPixels),
		zap.Int("hits", stats.Hits),
		zap.Int("misses", stats.Misses),
		zap.Float64("avg_luminance", stats.AverageLuminance))

	return fb, stats, nil
}

// renderBounds renders the pixels of one band into fb
func (rt *Raytracer) renderBounds(ctx context.Context, fb *Framebuffer, b Band) (bandResult, error) {
	var res bandResult
	for j := b.Bounds.Min.Y; j < b.Bounds.Max.Y; j++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		for i := b.Bounds.Min.X; i < b.Bounds.Max.X; i++ {
			color, hit := rt.RenderPixel(i, j)
			fb.Set(i, j, color)
			if hit {
				res.hits++
			} else {
				res.misses++
			}
		}
	}
	return res, nil
}
