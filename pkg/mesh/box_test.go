package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAddBox_Counts(t *testing.T) {
	sm := NewSubMesh("test")

	positions := []mgl32.Vec3{
		{0, 0, 0},
		{5, 0, -3},
		{-100, 0, 42},
	}
	for i, origin := range positions {
		AddBox(sm, origin, 1)

		if sm.VertexCount() != (i+1)*BoxVertexCount {
			t.Errorf("after box %d: expected %d vertices, got %d", i, (i+1)*BoxVertexCount, sm.VertexCount())
		}
		if len(sm.Indices) != (i+1)*BoxIndexCount {
			t.Errorf("after box %d: expected %d indices, got %d", i, (i+1)*BoxIndexCount, len(sm.Indices))
		}
	}
}

func TestAddBox_IndicesOffsetAndClosed(t *testing.T) {
	sm := NewSubMesh("test")
	AddBox(sm, mgl32.Vec3{0, 0, 0}, 1)
	AddBox(sm, mgl32.Vec3{2, 0, 0}, 1)

	// Second box's indices reference only its own 8 vertices.
	second := sm.Indices[BoxIndexCount:]
	referenced := make(map[uint32]bool)
	for _, idx := range second {
		if idx < 8 || idx >= 16 {
			t.Fatalf("second box index %d escapes its vertex range [8,16)", idx)
		}
		referenced[idx] = true
	}

	// Every corner is used, so the box is closed.
	if len(referenced) != 8 {
		t.Errorf("expected all 8 corners referenced, got %d", len(referenced))
	}
}

// Every triangle's right-hand-rule normal must point away from the box
// center, so the box is a consistently oriented closed surface and no face
// vanishes under backface culling.
func TestAddBox_OutwardWinding(t *testing.T) {
	sm := NewSubMesh("test")
	origin := mgl32.Vec3{3, 0, -1}
	AddBox(sm, origin, 2)

	// Boxes span Y in [0, scale], so the center sits at origin + scale/2 up.
	center := origin.Add(mgl32.Vec3{0, 1, 0})
	for i := 0; i+2 < len(sm.Indices); i += 3 {
		a := sm.Vertices[sm.Indices[i]]
		b := sm.Vertices[sm.Indices[i+1]]
		c := sm.Vertices[sm.Indices[i+2]]

		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		if normal.Dot(centroid.Sub(center)) <= 0 {
			t.Errorf("triangle %d (%d,%d,%d) wound inward",
				i/3, sm.Indices[i], sm.Indices[i+1], sm.Indices[i+2])
		}
	}
}

func TestAddBox_Extents(t *testing.T) {
	sm := NewSubMesh("test")
	AddBox(sm, mgl32.Vec3{4, 0, -2}, 2)

	// X/Z centered on the origin argument, Y spanning [0, scale].
	want := Bounds{
		Min: mgl32.Vec3{3, 0, -3},
		Max: mgl32.Vec3{5, 2, -1},
	}
	if sm.Bounds.Min != want.Min || sm.Bounds.Max != want.Max {
		t.Errorf("bounds = %v, expected %v", sm.Bounds, want)
	}
}

func TestBoxOrigin_Centering(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		w, h  int
		scale float32
		wantX float32
		wantZ float32
	}{
		{"center of odd grid", 2, 1, 5, 3, 1, 0, 0},
		{"center of even grid", 2, 2, 4, 4, 1, 0, 0},
		{"origin tile", 0, 0, 4, 4, 1, -2, -2},
		{"scaled", 3, 0, 4, 2, 2.5, 2.5, -2.5},
	}

	for _, tc := range tests {
		got := BoxOrigin(tc.x, tc.y, tc.w, tc.h, tc.scale)
		if got.X() != tc.wantX || got.Z() != tc.wantZ {
			t.Errorf("%s: BoxOrigin = (%f, %f), expected (%f, %f)",
				tc.name, got.X(), got.Z(), tc.wantX, tc.wantZ)
		}
		if got.Y() != 0 {
			t.Errorf("%s: Y should stay 0, got %f", tc.name, got.Y())
		}
	}
}

// The tile at (w/2, h/2) must land with its X/Z center exactly at the world
// origin, with truncating integer division.
func TestBoxOrigin_CenterTileAtWorldOrigin(t *testing.T) {
	for _, dims := range [][2]int{{5, 3}, {4, 4}, {7, 9}, {1, 1}} {
		w, h := dims[0], dims[1]
		got := BoxOrigin(w/2, h/2, w, h, 3)
		if got.X() != 0 || got.Z() != 0 {
			t.Errorf("%dx%d grid: center tile at (%f, %f), expected (0, 0)", w, h, got.X(), got.Z())
		}
	}
}
