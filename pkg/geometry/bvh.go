package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ebenpack/rtiaw/pkg/core"
	"github.com/ebenpack/rtiaw/pkg/material"
)

var (
	// ErrEmptyBVH is returned when a BVH is built over no shapes
	ErrEmptyBVH = errors.New("bvh: no shapes to build from")
	// ErrNoBoundingBox is returned when a shape reports that it is unbounded
	ErrNoBoundingBox = errors.New("bvh: shape has no bounding box")
	// ErrInvalidBoundingBox is returned when a shape's bounds are inverted or NaN
	ErrInvalidBoundingBox = errors.New("bvh: shape has an invalid bounding box")
)

// BVHNode is a node of a binary Bounding Volume Hierarchy.
// Children are either shapes or other nodes; a single-shape span stores the
// same shape as both children.
type BVHNode struct {
	Left  Shape
	Right Shape
	Box   core.AABB
}

// NewBVH builds a BVH over the given shapes. The slice is reordered in place,
// so callers that need the original order should pass a copy.
// The split axis for every node is drawn uniformly from the sampler.
func NewBVH(shapes []Shape, sampler core.Sampler) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	for i, shape := range shapes {
		box, ok := shape.BoundingBox()
		if !ok {
			return nil, fmt.Errorf("%w: shape %d (%T)", ErrNoBoundingBox, i, shape)
		}
		if !box.IsValid() {
			return nil, fmt.Errorf("%w: shape %d (%T) %v", ErrInvalidBoundingBox, i, shape, box)
		}
	}

	return buildBVH(shapes, sampler)
}

// buildBVH recursively partitions shapes along a random axis
func buildBVH(shapes []Shape, sampler core.Sampler) (*BVHNode, error) {
	axis := core.SampleAxis(sampler)
	node := &BVHNode{}

	switch len(shapes) {
	case 1:
		node.Left, node.Right = shapes[0], shapes[0]
	case 2:
		if boxMin(shapes[0], axis) < boxMin(shapes[1], axis) {
			node.Left, node.Right = shapes[0], shapes[1]
		} else {
			node.Left, node.Right = shapes[1], shapes[0]
		}
	default:
		sortShapesByAxis(shapes, axis)

		mid := len(shapes) / 2
		left, err := buildBVH(shapes[:mid], sampler)
		if err != nil {
			return nil, err
		}
		right, err := buildBVH(shapes[mid:], sampler)
		if err != nil {
			return nil, err
		}
		node.Left, node.Right = left, right
	}

	leftBox, okLeft := node.Left.BoundingBox()
	rightBox, okRight := node.Right.BoundingBox()
	if !okLeft || !okRight {
		return nil, ErrNoBoundingBox
	}
	node.Box = leftBox.Union(rightBox)

	return node, nil
}

// sortShapesByAxis sorts shapes by their bounding box minimum along the specified axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		return boxMin(shapes[i], axis) < boxMin(shapes[j], axis)
	})
}

func boxMin(shape Shape, axis int) float64 {
	box, _ := shape.BoundingBox()
	return box.Min.Axis(axis)
}

// Hit returns the closest hit in this subtree. The right child is queried
// with tMax tightened to the left hit, so it can only report a closer hit.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the precomputed bounds of both children
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.Box, true
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	Nodes    int // Interior nodes
	Leaves   int // Child slots holding a shape rather than a node
	MaxDepth int // Depth of the deepest node, root is 1
}

// Stats walks the tree and collects structural statistics
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	for _, child := range []Shape{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
