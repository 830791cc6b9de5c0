package mesh

import "github.com/go-gl/mathgl/mgl32"

// Unit cube corners, X/Z centered on the origin, Y spanning [0, 1].
// Corners 0-3 are the bottom face, 4-7 the top, both wound counter-
// clockwise looking down the -Y axis.
var boxCorners = [8]mgl32.Vec3{
	{-0.5, 0, -0.5},
	{0.5, 0, -0.5},
	{0.5, 0, 0.5},
	{-0.5, 0, 0.5},
	{-0.5, 1, -0.5},
	{0.5, 1, -0.5},
	{0.5, 1, 0.5},
	{-0.5, 1, 0.5},
}

// Fixed cube index pattern: 12 triangles over 6 faces, counter-clockwise
// winding viewed from outside.
var boxIndices = [36]uint32{
	0, 1, 2, 0, 2, 3, // bottom (-Y)
	4, 6, 5, 4, 7, 6, // top (+Y)
	3, 2, 6, 3, 6, 7, // front (+Z)
	1, 0, 4, 1, 4, 5, // back (-Z)
	2, 1, 5, 2, 5, 6, // right (+X)
	0, 3, 7, 0, 7, 4, // left (-X)
}

// BoxVertexCount and BoxIndexCount are the per-box buffer growth of AddBox.
const (
	BoxVertexCount = 8
	BoxIndexCount  = 36
)

// AddBox appends one closed axis-aligned box to sm: the unit cube scaled by
// scale and translated by origin. Every vertex tightens the sub-mesh bounds
// before it is appended; indices are the fixed cube pattern offset by the
// sub-mesh's vertex count at call time, so each box is a fresh, non-shared
// instance. Duplicate vertices at shared edges between adjacent boxes are
// expected and are only removed by a later optimizer pass.
func AddBox(sm *SubMesh, origin mgl32.Vec3, scale float32) {
	base := uint32(len(sm.Vertices))

	for _, c := range boxCorners {
		sm.AddVertex(c.Mul(scale).Add(origin))
	}
	for _, i := range boxIndices {
		sm.Indices = append(sm.Indices, base+i)
	}
}

// BoxOrigin returns the world-space placement of tile (x, y) in a grid of
// the given dimensions: the grid is centered on the world origin along X/Z
// and Y is left at the fixed vertical band [0, scale]. The w/2 and h/2
// divisions truncate, so for any grid the tile at (w/2, h/2) lands with its
// X/Z center exactly at (0, 0).
func BoxOrigin(x, y, w, h int, scale float32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(x-w/2) * scale,
		0,
		float32(y-h/2) * scale,
	}
}
