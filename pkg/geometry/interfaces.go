package geometry

import (
	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the closest intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns the shape's bounds; false means the shape is unbounded
	BoundingBox() (core.AABB, bool)
}
