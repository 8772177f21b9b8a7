package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagScene   = flag.String("scene", "", "Built-in scene name or path to a YAML scene file")
	flagOut     = flag.String("out", "", "Output image path")
	flagFormat  = flag.String("format", "", "Output format: ppm, png, bmp or gif")
	flagWidth   = flag.Int("width", 0, "Image width in pixels")
	flagHeight  = flag.Int("height", 0, "Image height in pixels")
	flagFOV     = flag.Float64("fov", 0, "Vertical field of view in radians")
	flagWorkers = flag.Int("workers", -1, "Parallel workers (1 = single-threaded, 0 = all CPUs)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.Source = *flagScene
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagFOV > 0 {
		cfg.Render.FOV = *flagFOV
	}
	if *flagWorkers >= 0 {
		cfg.Render.Workers = *flagWorkers
	}
}
