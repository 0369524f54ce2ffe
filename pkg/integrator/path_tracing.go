package integrator

import (
	"math"

	"github.com/ebenpack/rtiaw/pkg/core"
)

// ShadowAcneEpsilon is the lower bound of every scene query. It keeps a
// scattered ray from re-hitting the surface it just left.
const ShadowAcneEpsilon = 0.001

// BackgroundConfig is the vertical sky gradient seen by rays that escape the scene
type BackgroundConfig struct {
	Bottom core.Vec3 // Color for straight-down rays
	Top    core.Vec3 // Color for straight-up rays
}

// DefaultBackground returns a white-to-sky-blue gradient
func DefaultBackground() BackgroundConfig {
	return BackgroundConfig{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// PathTracingIntegrator implements unidirectional path tracing with a
// running attenuation product instead of recursion
type PathTracingIntegrator struct {
	background BackgroundConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background BackgroundConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{background: background}
}

// RayColor computes the color for a single ray. Running out of bounces,
// absorption and degenerate rays all contribute black.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler, maxBounces int) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for bounces := maxBounces; bounces > 0; bounces-- {
		if ray.Direction.Equals(core.Vec3{}) {
			return core.Vec3{}
		}

		hit, isHit := scene.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.BackgroundColor(ray))
		}
		if hit.Material == nil {
			return core.Vec3{}
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{}
}

// BackgroundColor blends the gradient by the ray's vertical direction
func (pt *PathTracingIntegrator) BackgroundColor(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return pt.background.Bottom.Multiply(1.0 - t).Add(pt.background.Top.Multiply(t))
}
