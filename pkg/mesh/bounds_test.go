package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewBounds_Sentinel(t *testing.T) {
	b := NewBounds()

	if b.Valid() {
		t.Error("fresh bounds should not be valid")
	}
}

func TestBounds_Extend(t *testing.T) {
	b := NewBounds()

	b.Extend(mgl32.Vec3{1, 2, 3})
	if !b.Valid() {
		t.Fatal("bounds should be valid after one insertion")
	}
	if b.Min != b.Max {
		t.Errorf("single-point bounds should have min == max, got %v / %v", b.Min, b.Max)
	}

	b.Extend(mgl32.Vec3{-1, 5, 0})
	if b.Min != (mgl32.Vec3{-1, 2, 0}) {
		t.Errorf("unexpected min: %v", b.Min)
	}
	if b.Max != (mgl32.Vec3{1, 5, 3}) {
		t.Errorf("unexpected max: %v", b.Max)
	}
}

func TestBounds_Monotonicity(t *testing.T) {
	points := []mgl32.Vec3{
		{0, 0, 0},
		{3, -2, 1},
		{-1, 4, -5},
		{2, 2, 2},
		{0.5, 0.5, 0.5},
	}

	b := NewBounds()
	prev := b
	for i, p := range points {
		b.Extend(p)
		if i > 0 {
			for c := 0; c < 3; c++ {
				if b.Min[c] > prev.Min[c] {
					t.Errorf("after point %d: min[%d] grew from %f to %f", i, c, prev.Min[c], b.Min[c])
				}
				if b.Max[c] < prev.Max[c] {
					t.Errorf("after point %d: max[%d] shrank from %f to %f", i, c, prev.Max[c], b.Max[c])
				}
			}
		}
		prev = b
	}
}

func TestBounds_CenterSize(t *testing.T) {
	b := NewBounds()
	b.Extend(mgl32.Vec3{-1, 0, -2})
	b.Extend(mgl32.Vec3{3, 4, 6})

	if b.Center() != (mgl32.Vec3{1, 2, 2}) {
		t.Errorf("unexpected center: %v", b.Center())
	}
	if b.Size() != (mgl32.Vec3{4, 4, 8}) {
		t.Errorf("unexpected size: %v", b.Size())
	}
}

func TestBounds_String(t *testing.T) {
	b := NewBounds()
	if b.String() != "bounds(empty)" {
		t.Errorf("empty bounds string: %q", b.String())
	}

	b.Extend(mgl32.Vec3{0, 0, 0})
	if b.String() == "bounds(empty)" {
		t.Error("tightened bounds should not print as empty")
	}
}
