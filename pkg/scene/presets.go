package scene

import (
	"errors"
	"fmt"

	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/geometry"
)

// ErrUnknownScene is returned when no built-in scene has the requested name
var ErrUnknownScene = errors.New("scene: unknown scene")

// Preset is a built-in scene together with the camera it was composed for
type Preset struct {
	Name        string
	Description string

	// shapes populates the scene; sampler drives any random placement
	shapes func(sampler core.Sampler) []geometry.Shape
	camera geometry.CameraConfig
}

var presets = []Preset{
	{
		Name:        "default",
		Description: "Ground sphere with diffuse, glass and metal spheres",
		shapes:      defaultShapes,
		camera:      defaultCamera,
	},
	{
		Name:        "random",
		Description: "Ground with a 22x22 grid of small random spheres and three large spheres",
		shapes:      randomShapes,
		camera:      defaultCamera,
	},
	{
		Name:        "showcase",
		Description: "Table-top arrangement with a hollow glass sphere",
		shapes:      showcaseShapes,
		camera:      showcaseCamera,
	},
}

// Presets returns every built-in scene in listing order
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a built-in scene by name
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// Camera returns the recommended camera with the given aspect ratio
func (p Preset) Camera(aspectRatio float64) geometry.CameraConfig {
	config := p.camera
	config.AspectRatio = aspectRatio
	return config
}

// Build populates and builds the scene. Placement randomness and BVH
// construction both draw from sampler, so a seeded sampler reproduces the scene.
func (p Preset) Build(sampler core.Sampler, opts ...Option) (*Scene, error) {
	if sampler == nil {
		sampler = core.NewSeededSampler(0)
	}
	b := NewBuilder(append([]Option{WithSampler(sampler)}, opts...)...)
	if err := b.Add(p.shapes(sampler)...); err != nil {
		return nil, err
	}
	return b.Build()
}
