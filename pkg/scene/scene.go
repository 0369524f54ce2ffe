package scene

import (
	"errors"
	"fmt"

	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/geometry"
	"github.com/ebenpack/rtiaw/pkg/material"
)

var (
	// ErrEmptyScene is returned when a scene is built without any shapes
	ErrEmptyScene = errors.New("scene: no shapes")
	// ErrSceneSealed is returned when shapes are added to a builder after Build
	ErrSceneSealed = errors.New("scene: builder already built")
)

// Scene is a read-only collection of shapes behind a single intersection query.
// It is safe for concurrent use once constructed.
type Scene struct {
	root     geometry.Shape
	count    int
	bvhStats *geometry.BVHStats
}

type options struct {
	useBVH  bool
	sampler core.Sampler
	logger  core.Logger
}

// Option configures scene construction
type Option func(*options)

// WithoutBVH makes the scene test every shape linearly instead of building a BVH
func WithoutBVH() Option {
	return func(o *options) { o.useBVH = false }
}

// WithSampler sets the randomness used to pick BVH split axes
func WithSampler(sampler core.Sampler) Option {
	return func(o *options) { o.sampler = sampler }
}

// WithSeed is shorthand for WithSampler(core.NewSeededSampler(seed))
func WithSeed(seed int64) Option {
	return WithSampler(core.NewSeededSampler(seed))
}

// WithLogger sets the logger used to report acceleration structure details
func WithLogger(logger core.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// NewScene builds a scene over the given shapes. The slice is copied before
// the BVH reorders it, so the caller's order is left untouched.
func NewScene(shapes []geometry.Shape, opts ...Option) (*Scene, error) {
	o := options{useBVH: true, logger: core.NopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampler == nil {
		o.sampler = core.NewSeededSampler(0)
	}

	if len(shapes) == 0 {
		return nil, ErrEmptyScene
	}

	owned := make([]geometry.Shape, len(shapes))
	copy(owned, shapes)

	if !o.useBVH {
		o.logger.Debugf("Using linear scan over %d shapes", len(owned))
		return &Scene{root: geometry.NewShapeList(owned...), count: len(owned)}, nil
	}

	bvh, err := geometry.NewBVH(owned, o.sampler)
	if err != nil {
		return nil, fmt.Errorf("scene: building BVH: %w", err)
	}

	stats := bvh.Stats()
	o.logger.Debugf("Built BVH over %d shapes: %d nodes, %d leaves, depth %d",
		len(owned), stats.Nodes, stats.Leaves, stats.MaxDepth)

	return &Scene{root: bvh, count: len(owned), bvhStats: &stats}, nil
}

// Hit returns the closest intersection in (tMin, tMax)
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.root.Hit(ray, tMin, tMax)
}

// BoundingBox returns the bounds of every shape in the scene
func (s *Scene) BoundingBox() (core.AABB, bool) {
	return s.root.BoundingBox()
}

// Len returns the number of shapes in the scene
func (s *Scene) Len() int {
	return s.count
}

// BVHStats returns the hierarchy statistics, or false for a linear scene
func (s *Scene) BVHStats() (geometry.BVHStats, bool) {
	if s.bvhStats == nil {
		return geometry.BVHStats{}, false
	}
	return *s.bvhStats, true
}
