package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/ebenpack/rtiaw/pkg/core"
)

func TestPresets_BuildAll(t *testing.T) {
	for _, preset := range Presets() {
		t.Run(preset.Name, func(t *testing.T) {
			s, err := preset.Build(core.NewSeededSampler(42))
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if s.Len() < 4 {
				t.Errorf("Expected at least 4 shapes, got %d", s.Len())
			}

			camera := preset.Camera(2.0)
			if camera.AspectRatio != 2.0 {
				t.Errorf("Expected aspect ratio override, got %f", camera.AspectRatio)
			}
			if camera.VFov <= 0 || camera.Up.Length() == 0 {
				t.Errorf("Invalid camera config %+v", camera)
			}

			// The camera looks at something in the scene
			direction := camera.LookAt.Subtract(camera.LookFrom)
			if _, ok := s.Hit(core.NewRay(camera.LookFrom, direction), 0.001, math.Inf(1)); !ok {
				t.Error("Expected the look-at ray to hit the scene")
			}
		})
	}
}

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"default", false},
		{"random", false},
		{"showcase", false},
		{"cornell", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := LookupPreset(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if preset.Name != tt.name {
				t.Errorf("Expected preset %q, got %q", tt.name, preset.Name)
			}
		})
	}
}

func TestRandomScene_DeterministicForSeed(t *testing.T) {
	preset, err := LookupPreset("random")
	if err != nil {
		t.Fatal(err)
	}

	a := randomShapes(core.NewSeededSampler(7))
	b := randomShapes(core.NewSeededSampler(7))
	if len(a) != len(b) {
		t.Fatalf("Expected equal shape counts, got %d and %d", len(a), len(b))
	}

	// Ground and three feature spheres plus at most 22x22 small spheres
	if len(a) < 4 || len(a) > 4+22*22 {
		t.Errorf("Unexpected shape count %d", len(a))
	}

	s, err := preset.Build(core.NewSeededSampler(7))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Len() != len(a) {
		t.Errorf("Expected %d shapes, got %d", len(a), s.Len())
	}
}
