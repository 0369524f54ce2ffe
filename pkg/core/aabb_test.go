package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAABB_HitAxisAlignedRays(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	inf := math.Inf(1)

	tests := []struct {
		name   string
		ray    Ray
		tMin   float64
		tMax   float64
		expect bool
	}{
		{"+X through center", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), 0, inf, true},
		{"-X through center", NewRay(NewVec3(5, 0, 0), NewVec3(-1, 0, 0)), 0, inf, true},
		{"+Y through center", NewRay(NewVec3(0, -5, 0), NewVec3(0, 1, 0)), 0, inf, true},
		{"-Y through center", NewRay(NewVec3(0, 5, 0), NewVec3(0, -1, 0)), 0, inf, true},
		{"+Z through center", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0, inf, true},
		{"-Z through center", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), 0, inf, true},
		{"interval ends before entry", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), 0, 3.9, false},
		{"interval starts after exit", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), 6.1, inf, false},
		{"interval inside slab", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), 4.5, 5.0, true},
		{"scaled direction", NewRay(NewVec3(-5, 0, 0), NewVec3(2, 0, 0)), 0, 2.1, true},
		{"pointing away", NewRay(NewVec3(-5, 0, 0), NewVec3(-1, 0, 0)), 0, inf, false},
		{"parallel outside slab", NewRay(NewVec3(-5, 2, 0), NewVec3(1, 0, 0)), 0, inf, false},
		{"origin inside box", NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1)), 0, inf, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.tMin, tt.tMax); got != tt.expect {
				t.Errorf("Expected hit=%v, got %v", tt.expect, got)
			}
		})
	}
}

func TestAABB_HitSlabBoundaries(t *testing.T) {
	// Entry at t=4 and exit at t=6 along every axis
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	for axis := 0; axis < 3; axis++ {
		var origin, direction Vec3
		switch axis {
		case 0:
			origin, direction = NewVec3(-5, 0, 0), NewVec3(1, 0, 0)
		case 1:
			origin, direction = NewVec3(0, -5, 0), NewVec3(0, 1, 0)
		case 2:
			origin, direction = NewVec3(0, 0, -5), NewVec3(0, 0, 1)
		}
		ray := NewRay(origin, direction)

		if box.Hit(ray, 0, 4-1e-9) {
			t.Errorf("axis %d: expected miss before entry boundary", axis)
		}
		if !box.Hit(ray, 0, 4+1e-9) {
			t.Errorf("axis %d: expected hit just past entry boundary", axis)
		}
		if box.Hit(ray, 6+1e-9, 100) {
			t.Errorf("axis %d: expected miss after exit boundary", axis)
		}
		if !box.Hit(ray, 6-1e-9, 100) {
			t.Errorf("axis %d: expected hit just before exit boundary", axis)
		}
	}
}

func TestAABB_HitDegenerateDirection(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	// Origin on the y=1 plane with zero y direction yields 0*Inf = NaN
	grazing := NewRay(NewVec3(-5, 1, 0), NewVec3(1, 0, 0))
	if box.Hit(grazing, 0, math.Inf(1)) {
		t.Error("Expected NaN slab to be treated as a miss")
	}

	// Zero direction entirely
	zero := NewRay(NewVec3(0.5, 0.5, 0.5), NewVec3(0, 0, 0))
	if box.Hit(zero, 0, math.Inf(1)) {
		t.Error("Expected zero-direction ray to miss")
	}

	// Negative zero must behave like a parallel ray
	negZero := NewRay(NewVec3(-5, 0.5, 0.5), NewVec3(1, math.Copysign(0, -1), 0))
	if !box.Hit(negZero, 0, math.Inf(1)) {
		t.Error("Expected parallel ray with -0 component inside the slab to hit")
	}
}

func TestAABB_UnionContainsBoth(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randomBox := func() AABB {
		a := NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		b := NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		return NewAABBFromPoints(a, b)
	}
	pointIn := func(box AABB) Vec3 {
		size := box.Max.Subtract(box.Min)
		return NewVec3(
			box.Min.X+random.Float64()*size.X,
			box.Min.Y+random.Float64()*size.Y,
			box.Min.Z+random.Float64()*size.Z,
		)
	}

	for i := 0; i < 200; i++ {
		a, b := randomBox(), randomBox()
		union := a.Union(b)

		if !union.IsValid() {
			t.Fatalf("Union produced an invalid box: %v", union)
		}
		for _, corner := range []Vec3{a.Min, a.Max, b.Min, b.Max} {
			if !boxContains(union, corner) {
				t.Fatalf("Union %v does not contain corner %v", union, corner)
			}
		}
		for j := 0; j < 10; j++ {
			if p := pointIn(a); !boxContains(union, p) {
				t.Fatalf("Union %v does not contain point %v of a", union, p)
			}
			if p := pointIn(b); !boxContains(union, p) {
				t.Fatalf("Union %v does not contain point %v of b", union, p)
			}
		}

		// Tightest: every face of the union touches a face of a or b
		for axis := 0; axis < 3; axis++ {
			if union.Min.Axis(axis) != math.Min(a.Min.Axis(axis), b.Min.Axis(axis)) {
				t.Fatalf("Union min on axis %d is not tight", axis)
			}
			if union.Max.Axis(axis) != math.Max(a.Max.Axis(axis), b.Max.Axis(axis)) {
				t.Fatalf("Union max on axis %d is not tight", axis)
			}
		}
	}
}

func boxContains(box AABB, p Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if p.Axis(axis) < box.Min.Axis(axis) || p.Axis(axis) > box.Max.Axis(axis) {
			return false
		}
	}
	return true
}

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-1, 2, 0), NewVec3(0, 0, 5))
	if box.Min != NewVec3(-1, -2, 0) || box.Max != NewVec3(1, 2, 5) {
		t.Errorf("Expected [(-1,-2,0), (1,2,5)], got %v", box)
	}
	if !box.IsValid() {
		t.Error("Expected a valid box")
	}

	if empty := NewAABBFromPoints(); empty != (AABB{}) {
		t.Errorf("Expected zero box for no points, got %v", empty)
	}

	nan := NewAABB(NewVec3(math.NaN(), 0, 0), NewVec3(1, 1, 1))
	if nan.IsValid() {
		t.Error("Expected a NaN corner to make the box invalid")
	}
}
