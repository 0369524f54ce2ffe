package integrator

import (
	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/material"
)

// Scene is the intersection query light transport needs. Any shape,
// BVH or *scene.Scene satisfies it.
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the light arriving along ray using at most maxBounces scatter events
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler, maxBounces int) core.Vec3
}
