package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/df07/go-sphere-raycaster/internal/config"
	"github.com/df07/go-sphere-raycaster/internal/logger"
	"github.com/df07/go-sphere-raycaster/pkg/imageio"
	"github.com/df07/go-sphere-raycaster/pkg/renderer"
	"github.com/df07/go-sphere-raycaster/pkg/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger.Log); err != nil {
		logger.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// createScene resolves the configured scene and applies the horizon override
func createScene(cfg *config.Config) (*scene.Scene, error) {
	s, err := scene.Resolve(cfg.Scene.Source)
	if err != nil {
		return nil, err
	}
	if cfg.Scene.Horizon > 0 {
		s.Horizon = cfg.Scene.Horizon
	}
	return s, nil
}

// run renders one frame and writes it to the configured output path
func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	s, err := createScene(cfg)
	if err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}
	log.Info("scene loaded",
		zap.String("source", cfg.Scene.Source),
		zap.Int("spheres", len(s.Spheres)),
		zap.Int("lights", len(s.Lights)),
		zap.Float64("horizon", s.GetHorizon()))

	raytracer := renderer.NewRaytracer(s, cfg.RendererConfig(), renderer.WithLogger(log))
	fb, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	if err := imageio.Save(cfg.Output.Path, format, fb); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}

	outPath, _ := filepath.Abs(cfg.Output.Path)
	log.Info("render saved",
		zap.String("path", outPath),
		zap.String("format", string(format)),
		zap.Duration("render_time", stats.Duration),
		zap.Float64("hit_ratio", stats.HitRatio()))
	return nil
}
