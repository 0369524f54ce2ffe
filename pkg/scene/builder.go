package scene

import (
	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/geometry"
	"github.com/ebenpack/rtiaw/pkg/material"
)

// Builder collects shapes in order and produces a Scene exactly once
type Builder struct {
	shapes []geometry.Shape
	opts   []Option
	sealed bool
}

// NewBuilder creates a builder; the options are passed through to NewScene
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

// AddSphere adds a sphere with the given material
func (b *Builder) AddSphere(center core.Vec3, radius float64, mat material.Material) error {
	return b.Add(geometry.NewSphere(center, radius, mat))
}

// Add appends shapes to the scene
func (b *Builder) Add(shapes ...geometry.Shape) error {
	if b.sealed {
		return ErrSceneSealed
	}
	b.shapes = append(b.shapes, shapes...)
	return nil
}

// Len returns the number of shapes added so far
func (b *Builder) Len() int {
	return len(b.shapes)
}

// Build constructs the scene. The builder refuses further use afterwards,
// including a second Build.
func (b *Builder) Build() (*Scene, error) {
	if b.sealed {
		return nil, ErrSceneSealed
	}
	b.sealed = true

	s, err := NewScene(b.shapes, b.opts...)
	b.shapes = nil
	return s, err
}
