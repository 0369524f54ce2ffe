package scene

import (
	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/geometry"
	"github.com/ebenpack/rtiaw/pkg/material"
)

var defaultCamera = geometry.CameraConfig{
	LookFrom:      core.NewVec3(13, 2, 3),
	LookAt:        core.NewVec3(0, 0, 0),
	Up:            core.NewVec3(0, 1, 0),
	VFov:          20,
	AspectRatio:   3.0 / 2.0,
	Aperture:      0.1,
	FocusDistance: 10,
}

// defaultShapes is a large ground sphere and three unit spheres, one per material
func defaultShapes(core.Sampler) []geometry.Shape {
	return []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	}
}
