package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/geometry"
	"github.com/df07/go-sphere-raycaster/pkg/lights"
	"github.com/df07/go-sphere-raycaster/pkg/material"
)

// sceneFile is the YAML layout of a scene description
type sceneFile struct {
	Background []float64               `yaml:"background"`
	Horizon    float64                 `yaml:"horizon"`
	Materials  map[string]materialEntry `yaml:"materials"`
	Spheres    []sphereEntry            `yaml:"spheres"`
	Lights     []lightEntry             `yaml:"lights"`
}

type materialEntry struct {
	DiffuseColor []float64 `yaml:"diffuse_color"`
}

type sphereEntry struct {
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Material string    `yaml:"material"`
}

type lightEntry struct {
	Position  []float64 `yaml:"position"`
	Intensity float64   `yaml:"intensity"`
}

// Resolve returns the built-in scene with the given name, or loads nameOrPath as a scene file
func Resolve(nameOrPath string) (*Scene, error) {
	if _, ok := builtinScenes[nameOrPath]; ok {
		return Builtin(nameOrPath)
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return nil, fmt.Errorf("scene %q is neither a built-in scene %v nor a readable file: %w", nameOrPath, BuiltinNames(), err)
	}
	return LoadScene(nameOrPath)
}

// LoadScene reads and validates a YAML scene file
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return s, nil
}

// ParseScene decodes a YAML scene description.
// Unknown keys are rejected so that typos do not silently drop objects.
func ParseScene(data []byte) (*Scene, error) {
	var f sceneFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	materials := make(map[string]material.Material, len(f.Materials))
	for name, entry := range f.Materials {
		color, err := toVec3(entry.DiffuseColor)
		if err != nil {
			return nil, fmt.Errorf("material %q diffuse_color: %w", name, err)
		}
		materials[name] = material.NewMaterial(color)
	}

	if _, i, found := lo.FindIndexOf(f.Spheres, func(s sphereEntry) bool { return len(s.Center) != 3 }); found {
		return nil, fmt.Errorf("sphere %d center: %w", i, errVectorLength)
	}
	if bad, i, found := lo.FindIndexOf(f.Spheres, func(s sphereEntry) bool {
		_, ok := materials[s.Material]
		return !ok
	}); found {
		known := lo.Keys(materials)
		sort.Strings(known)
		return nil, fmt.Errorf("sphere %d references unknown material %q (known: %v)", i, bad.Material, known)
	}
	if _, i, found := lo.FindIndexOf(f.Lights, func(l lightEntry) bool { return len(l.Position) != 3 }); found {
		return nil, fmt.Errorf("light %d position: %w", i, errVectorLength)
	}

	spheres := lo.Map(f.Spheres, func(s sphereEntry, _ int) geometry.Sphere {
		return geometry.NewSphere(mustVec3(s.Center), s.Radius, materials[s.Material])
	})
	lightList := lo.Map(f.Lights, func(l lightEntry, _ int) lights.PointLight {
		return lights.NewPointLight(mustVec3(l.Position), l.Intensity)
	})

	s := New(spheres, lightList)
	if f.Background != nil {
		bg, err := toVec3(f.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		s.Background = bg
	}
	if f.Horizon < 0 {
		return nil, fmt.Errorf("horizon must not be negative, got %v", f.Horizon)
	}
	if f.Horizon > 0 {
		s.Horizon = f.Horizon
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

var errVectorLength = errors.New("expected exactly 3 components")

func toVec3(v []float64) (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, fmt.Errorf("%w, got %d", errVectorLength, len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// mustVec3 converts a slice whose length was already checked
func mustVec3(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
