// Package mesh synthesizes and serializes axis-aligned box geometry.
//
// Geometry is grouped into named sub-meshes, each owning its own vertex and
// index buffers plus a bounding box. Indices are local to their sub-mesh;
// the OBJ writer applies a running global offset when it merges blocks into
// one file.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// SubMesh is an independently optimized and serialized group of geometry.
type SubMesh struct {
	Name     string
	Vertices []mgl32.Vec3
	Indices  []uint32
	Bounds   Bounds
}

// NewSubMesh returns an empty named sub-mesh with sentinel bounds.
func NewSubMesh(name string) *SubMesh {
	return &SubMesh{
		Name:   name,
		Bounds: NewBounds(),
	}
}

// AddVertex tightens the bounds with v, then appends it.
func (sm *SubMesh) AddVertex(v mgl32.Vec3) {
	sm.Bounds.Extend(v)
	sm.Vertices = append(sm.Vertices, v)
}

// VertexCount returns the number of vertices.
func (sm *SubMesh) VertexCount() int {
	return len(sm.Vertices)
}

// TriangleCount returns the number of triangles (index count / 3).
func (sm *SubMesh) TriangleCount() int {
	return len(sm.Indices) / 3
}

// Empty reports whether the sub-mesh holds no geometry.
func (sm *SubMesh) Empty() bool {
	return len(sm.Vertices) == 0
}
