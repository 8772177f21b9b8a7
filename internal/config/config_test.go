package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sphere-raycaster/pkg/imageio"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Width != 1050 {
		t.Errorf("expected width 1050, got %d", cfg.Render.Width)
	}
	if cfg.Render.Height != 750 {
		t.Errorf("expected height 750, got %d", cfg.Render.Height)
	}
	if cfg.Render.FOV != 1.0 {
		t.Errorf("expected fov 1.0, got %f", cfg.Render.FOV)
	}
	if cfg.Render.Workers != 1 {
		t.Errorf("expected single-threaded default, got %d workers", cfg.Render.Workers)
	}
	if cfg.Output.Path != "./picture.ppm" {
		t.Errorf("expected output ./picture.ppm, got %s", cfg.Output.Path)
	}
	if cfg.Scene.Source != "default" {
		t.Errorf("expected default scene, got %s", cfg.Scene.Source)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to be valid, got %v", err)
	}

	format, err := cfg.OutputFormat()
	if err != nil || format != imageio.FormatPPM {
		t.Errorf("expected ppm output, got %q (%v)", format, err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "raycaster.yaml")

	yamlContent := `
render:
  width: 320
  height: 240
  fov: 0.8
  workers: 4
  band_height: 8

output:
  path: "out/render.png"

scene:
  source: "scenes/three_spheres.yaml"
  horizon: 5000

logging:
  level: "debug"
  log_file: "render.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Render.Width != 320 || cfg.Render.Height != 240 {
		t.Errorf("expected 320x240, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.FOV != 0.8 {
		t.Errorf("expected fov 0.8, got %f", cfg.Render.FOV)
	}
	if cfg.Render.Workers != 4 || cfg.Render.BandHeight != 8 {
		t.Errorf("expected 4 workers and band height 8, got %d and %d", cfg.Render.Workers, cfg.Render.BandHeight)
	}
	if cfg.Scene.Source != "scenes/three_spheres.yaml" || cfg.Scene.Horizon != 5000 {
		t.Errorf("unexpected scene config %+v", cfg.Scene)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "render.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}

	format, err := cfg.OutputFormat()
	if err != nil || format != imageio.FormatPNG {
		t.Errorf("expected png from extension, got %q (%v)", format, err)
	}
}

func TestLoadFromFilePartialKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "raycaster.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Render.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Render.Width)
	}
	if cfg.Render.Height != 750 {
		t.Errorf("expected default height 750, got %d", cfg.Render.Height)
	}
	if cfg.Output.Path != "./picture.ppm" {
		t.Errorf("expected default output path, got %s", cfg.Output.Path)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := map[string]string{
		"bad syntax":  "render:\n  width: not a number\n  invalid syntax here\n",
		"unknown key": "render:\n  widht: 100\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("expected empty file to be accepted, got %v", err)
	}
	if cfg.Render.Width != 1050 {
		t.Errorf("expected defaults to survive, got width %d", cfg.Render.Width)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/raycaster.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		errText string
	}{
		{"zero width", func(c *Config) { c.Render.Width = 0 }, "resolution"},
		{"negative height", func(c *Config) { c.Render.Height = -1 }, "resolution"},
		{"zero fov", func(c *Config) { c.Render.FOV = 0 }, "fov"},
		{"fov of pi", func(c *Config) { c.Render.FOV = math.Pi }, "fov"},
		{"NaN fov", func(c *Config) { c.Render.FOV = math.NaN() }, "fov"},
		{"negative workers", func(c *Config) { c.Render.Workers = -2 }, "workers"},
		{"negative band height", func(c *Config) { c.Render.BandHeight = -1 }, "band_height"},
		{"empty output", func(c *Config) { c.Output.Path = "" }, "path"},
		{"bad format", func(c *Config) { c.Output.Format = "jpeg" }, "unsupported image format"},
		{"empty scene", func(c *Config) { c.Scene.Source = "" }, "source"},
		{"negative horizon", func(c *Config) { c.Scene.Horizon = -1 }, "horizon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("expected error containing %q, got %v", tt.errText, err)
			}
		})
	}
}

func TestRendererConfig(t *testing.T) {
	cfg := Default()
	cfg.Render.Width = 64
	cfg.Render.Height = 48
	cfg.Render.FOV = 0.5
	cfg.Render.Workers = 3
	cfg.Render.BandHeight = 4

	rc := cfg.RendererConfig()
	if rc.Camera.Width != 64 || rc.Camera.Height != 48 || rc.Camera.FOV != 0.5 {
		t.Errorf("unexpected camera config %+v", rc.Camera)
	}
	if rc.Workers != 3 || rc.BandHeight != 4 {
		t.Errorf("unexpected worker settings %+v", rc)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir := ConfigDir()
	if dir == "" {
		t.Skip("no user config directory on this platform")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("render:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "scene and output flags",
			setup: func() {
				*flagScene = "single"
				*flagOut = "render.bmp"
				*flagFormat = "png"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Source != "single" {
					t.Errorf("expected scene 'single', got %s", cfg.Scene.Source)
				}
				if cfg.Output.Path != "render.bmp" || cfg.Output.Format != "png" {
					t.Errorf("unexpected output config %+v", cfg.Output)
				}
			},
			teardown: func() {
				*flagScene = ""
				*flagOut = ""
				*flagFormat = ""
			},
		},
		{
			name: "resolution and fov flags",
			setup: func() {
				*flagWidth = 2100
				*flagHeight = 1500
				*flagFOV = 0.75
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.Width != 2100 || cfg.Render.Height != 1500 {
					t.Errorf("expected 2100x1500, got %dx%d", cfg.Render.Width, cfg.Render.Height)
				}
				if cfg.Render.FOV != 0.75 {
					t.Errorf("expected fov 0.75, got %f", cfg.Render.FOV)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
				*flagFOV = 0
			},
		},
		{
			name:  "workers flag zero means all CPUs",
			setup: func() { *flagWorkers = 0 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.Workers != 0 {
					t.Errorf("expected workers 0, got %d", cfg.Render.Workers)
				}
			},
			teardown: func() { *flagWorkers = -1 },
		},
		{
			name:  "unset workers flag keeps config",
			setup: func() {},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.Workers != 1 {
					t.Errorf("expected workers 1, got %d", cfg.Render.Workers)
				}
			},
			teardown: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "raycaster.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  width: 1600\n  height: 900\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Render.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Render.Width)
	}
	if cfg.Render.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Render.Height)
	}
}

func TestLoadRejectsInvalidResult(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "raycaster.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  fov: 4\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected invalid fov to be rejected")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "raycaster.yaml")

	cfg := Default()
	cfg.Render.Width = 123
	cfg.Output.Format = "bmp"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Render.Width != 123 || loaded.Output.Format != "bmp" {
		t.Errorf("saved config did not survive reload: %+v", loaded)
	}
}
