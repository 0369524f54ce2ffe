package scene

import (
	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/geometry"
	"github.com/ebenpack/rtiaw/pkg/material"
)

const (
	gridExtent       = 11
	smallRadius      = 0.2
	diffuseChance    = 0.8
	metalChance      = 0.95
	clearingDistance = 0.9
)

// randomShapes scatters small spheres over a grid around the three large
// spheres of the default scene, keeping a clearing next to the metal one.
func randomShapes(sampler core.Sampler) []geometry.Shape {
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	}

	clearing := core.NewVec3(4, smallRadius, 0)
	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			chooseMat := sampler.Get1D()
			offset := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*offset.X, smallRadius, float64(b)+0.9*offset.Y)

			if center.Subtract(clearing).Length() <= clearingDistance {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < diffuseChance:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				mat = material.NewLambertian(albedo)
			case chooseMat < metalChance:
				albedo := randomColor(sampler, 0.5, 1)
				fuzz := core.SampleRange(sampler, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}
			shapes = append(shapes, geometry.NewSphere(center, smallRadius, mat))
		}
	}

	return append(shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
}

func randomColor(sampler core.Sampler, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		core.SampleRange(sampler, lo, hi),
		core.SampleRange(sampler, lo, hi),
		core.SampleRange(sampler, lo, hi),
	)
}
