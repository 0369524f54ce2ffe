package geometry

import (
	"math"
	"testing"

	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/material"
)

func TestSphere_HitAlongAxis(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"from +X", core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)},
		{"from -X", core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0)},
		{"from +Y", core.NewVec3(0, 2.5, 0), core.NewVec3(0, -1, 0)},
		{"from -Z", core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(core.NewRay(tt.origin, tt.direction), 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, got miss")
			}

			expectedT := tt.origin.Length() - sphere.Radius
			if math.Abs(hit.T-expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", expectedT, hit.T)
			}
			if !hit.FrontFace {
				t.Error("Expected front face hit from outside")
			}
			if hit.Normal.Dot(tt.direction) >= 0 {
				t.Errorf("Normal %v should oppose the ray direction %v", hit.Normal, tt.direction)
			}
		})
	}
}

func TestSphere_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"offset beyond radius", core.NewRay(core.NewVec3(1.5, 0, 5), core.NewVec3(0, 0, -1))},
		{"pointing away", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))},
		{"parallel tangent line outside", core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))},
		{"zero direction", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, isHit := sphere.Hit(tt.ray, 0.001, math.Inf(1)); isHit {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestSphere_FrontAndBackFace(t *testing.T) {
	lambertian := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, lambertian)

	// From the inside the far root is the only one in range
	hit, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0.001, 1000)
	if !isHit {
		t.Fatal("Expected hit from inside")
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside")
	}
	if hit.Normal != core.NewVec3(0, 0, -1) {
		t.Errorf("Expected flipped normal (0,0,-1), got %v", hit.Normal)
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got %f", hit.T)
	}
	if hit.Material != lambertian {
		t.Error("Expected hit record to carry the sphere's material")
	}
}

func TestSphere_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	// Near root at 4, far root at 6
	if hit, ok := sphere.Hit(ray, 4.5, 100); !ok || math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected far root when the near one is excluded, got %v %v", hit, ok)
	}
	if _, ok := sphere.Hit(ray, 0.001, 4.0); ok {
		t.Error("Expected a root equal to tMax to be rejected")
	}
	if _, ok := sphere.Hit(ray, 6.0, 100); ok {
		t.Error("Expected a root equal to tMin to be rejected")
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	tests := []struct {
		name   string
		sphere *Sphere
		min    core.Vec3
		max    core.Vec3
	}{
		{"unit at origin", NewSphere(core.NewVec3(0, 0, 0), 1, nil), core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1)},
		{"offset", NewSphere(core.NewVec3(1, 2, 3), 0.5, nil), core.NewVec3(0.5, 1.5, 2.5), core.NewVec3(1.5, 2.5, 3.5)},
		{"negative radius", NewSphere(core.NewVec3(0, 0, 0), -0.4, nil), core.NewVec3(-0.4, -0.4, -0.4), core.NewVec3(0.4, 0.4, 0.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := tt.sphere.BoundingBox()
			if !ok {
				t.Fatal("Sphere should always be bounded")
			}
			if box.Min != tt.min || box.Max != tt.max {
				t.Errorf("Expected [%v, %v], got [%v, %v]", tt.min, tt.max, box.Min, box.Max)
			}
		})
	}
}
