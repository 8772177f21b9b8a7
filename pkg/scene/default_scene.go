package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/geometry"
	"github.com/df07/go-sphere-raycaster/pkg/lights"
	"github.com/df07/go-sphere-raycaster/pkg/material"
)

var builtinScenes = map[string]func() *Scene{
	"default": NewDefaultScene,
	"single":  NewSingleSphereScene,
}

// NewDefaultScene creates the default scene: a pink and a blue sphere lit by one light
func NewDefaultScene() *Scene {
	pink := material.NewMaterial(core.NewVec3(1.00, 0.50, 0.75))
	blue := material.NewMaterial(core.NewVec3(0.20, 0.30, 0.70))

	spheres := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(5, 0, -50), 6, pink),
		geometry.NewSphere(core.NewVec3(-10, 5, -28), 5, blue),
	}
	lightList := []lights.PointLight{
		lights.NewPointLight(core.NewVec3(0, -20, 0), 2.0),
	}
	return New(spheres, lightList)
}

// NewSingleSphereScene creates the pink sphere of the default scene on its own
func NewSingleSphereScene() *Scene {
	pink := material.NewMaterial(core.NewVec3(1.00, 0.50, 0.75))
	return New(
		[]geometry.Sphere{geometry.NewSphere(core.NewVec3(5, 0, -50), 6, pink)},
		[]lights.PointLight{lights.NewPointLight(core.NewVec3(0, -20, 0), 2.0)},
	)
}

// Builtin returns a built-in scene by name
func Builtin(name string) (*Scene, error) {
	ctor, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in scene %q (available: %v)", name, BuiltinNames())
	}
	return ctor(), nil
}

// BuiltinNames lists the built-in scene names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
