package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAddBoundsPlane(t *testing.T) {
	b := NewBounds()
	b.Extend(mgl32.Vec3{-2, 0, -3})
	b.Extend(mgl32.Vec3{4, 7, 5})

	sm := NewSubMesh("floor")
	AddBoundsPlane(sm, b, 0)

	if sm.VertexCount() != 4 {
		t.Fatalf("expected 4 vertices, got %d", sm.VertexCount())
	}
	if sm.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", sm.TriangleCount())
	}

	// The quad spans the source box's X/Z extent at the given height; the
	// source box's own Y range is ignored.
	if sm.Bounds.Min != (mgl32.Vec3{-2, 0, -3}) {
		t.Errorf("unexpected quad min: %v", sm.Bounds.Min)
	}
	if sm.Bounds.Max != (mgl32.Vec3{4, 0, 5}) {
		t.Errorf("unexpected quad max: %v", sm.Bounds.Max)
	}
}

func TestAddBoundsPlane_YLevel(t *testing.T) {
	b := NewBounds()
	b.Extend(mgl32.Vec3{0, 0, 0})
	b.Extend(mgl32.Vec3{1, 3, 1})

	sm := NewSubMesh("ceiling")
	AddBoundsPlane(sm, b, 3)

	for i, v := range sm.Vertices {
		if v.Y() != 3 {
			t.Errorf("vertex %d: Y = %f, expected 3", i, v.Y())
		}
	}
}

func TestAddBoundsPlane_AppendsAfterExisting(t *testing.T) {
	b := NewBounds()
	b.Extend(mgl32.Vec3{0, 0, 0})
	b.Extend(mgl32.Vec3{1, 1, 1})

	sm := NewSubMesh("mixed")
	AddBox(sm, mgl32.Vec3{0, 0, 0}, 1)
	AddBoundsPlane(sm, b, 0)

	// Plane indices are offset past the box's 8 vertices.
	planeIndices := sm.Indices[BoxIndexCount:]
	for _, idx := range planeIndices {
		if idx < 8 || idx >= 12 {
			t.Errorf("plane index %d escapes its vertex range [8,12)", idx)
		}
	}
}
