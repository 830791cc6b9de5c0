package mesh

import "github.com/go-gl/mathgl/mgl32"

// AddBoundsPlane appends one horizontal quad (4 vertices, 2 triangles) to
// sm at height y, spanning the X/Z extent of b. The Y components of b are
// ignored so callers can place floor and ceiling planes from the same box.
//
// Precondition: b must have been tightened by at least one vertex
// (b.Valid()). A sentinel bounds produces a geometrically meaningless quad;
// the scene builder checks this before calling.
func AddBoundsPlane(sm *SubMesh, b Bounds, y float32) {
	base := uint32(len(sm.Vertices))

	sm.AddVertex(mgl32.Vec3{b.Min.X(), y, b.Min.Z()})
	sm.AddVertex(mgl32.Vec3{b.Max.X(), y, b.Min.Z()})
	sm.AddVertex(mgl32.Vec3{b.Max.X(), y, b.Max.Z()})
	sm.AddVertex(mgl32.Vec3{b.Min.X(), y, b.Max.Z()})

	sm.Indices = append(sm.Indices,
		base, base+2, base+1,
		base, base+3, base+2,
	)
}
