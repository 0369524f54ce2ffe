package scene

import (
	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/geometry"
	"github.com/ebenpack/rtiaw/pkg/material"
)

var showcaseCamera = geometry.CameraConfig{
	LookFrom:    core.NewVec3(-2, 2, 1),
	LookAt:      core.NewVec3(0, 0, -1),
	Up:          core.NewVec3(0, 1, 0),
	VFov:        20,
	AspectRatio: 16.0 / 9.0,
}

// showcaseShapes places three spheres on a large ground sphere. The left
// sphere is hollow glass: a negative-radius sphere inside it flips the normals.
func showcaseShapes(core.Sampler) []geometry.Shape {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	return []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	}
}
