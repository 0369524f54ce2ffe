package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleOnUnitSphere_UnitLength(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		v := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
	}
}

func TestSamplePointInUnitSphere_Inside(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1+1e-12 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
	}

	// Extreme samples must stay finite
	for _, s := range []Vec3{{0, 0, 0}, {1, 1, 1}, {0.999999, 0, 1}} {
		if p := SamplePointInUnitSphere(s); p.HasNaN() {
			t.Errorf("Sample %v produced NaN", s)
		}
	}
}

func TestSamplePointInUnitDisk_Inside(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.X*p.X+p.Y*p.Y > 1+1e-12 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}
	if p := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); !p.Equals(Vec3{}) {
		t.Errorf("Expected disk center for (0.5, 0.5), got %v", p)
	}
}

func TestSampleAxis_Range(t *testing.T) {
	sampler := NewSeededSampler(3)
	seen := [3]int{}
	for i := 0; i < 3000; i++ {
		axis := SampleAxis(sampler)
		if axis < 0 || axis > 2 {
			t.Fatalf("Axis out of range: %d", axis)
		}
		seen[axis]++
	}
	for axis, count := range seen {
		if count < 800 {
			t.Errorf("Axis %d chosen only %d times out of 3000", axis, count)
		}
	}
}

func TestNewSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestRandomSampler_Reseed(t *testing.T) {
	sampler := NewSeededSampler(1)
	first := sampler.Get3D()
	sampler.Get2D()

	sampler.Reseed(1)
	if again := sampler.Get3D(); again != first {
		t.Errorf("Expected reseeding to restart the sequence, got %v then %v", first, again)
	}
}
