// Package meshopt deduplicates sub-mesh vertex buffers and compacts their
// index buffers.
//
// The three remap operations mirror the usual mesh-optimizer pipeline:
// build a remap table from the duplicated buffers, rewrite the indices
// through it, then compact the vertex buffer. Triangle connectivity and
// count are never changed; only vertex identity and count can shrink.
package meshopt

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/mazemesh/pkg/mesh"
)

// GenerateVertexRemap builds a remap table mapping each original vertex
// slot to a canonical slot, and returns the number of distinct canonical
// vertices. Two vertices are duplicates only when their positions compare
// bit-exact; canonical slots are assigned in first-seen order over the
// vertex buffer, so the result is deterministic for identical input.
//
// indices is accepted for parity with the usual remap signature and is
// ignored: every vertex slot is treated as live and keeps a table entry,
// referenced or not.
func GenerateVertexRemap(indices []uint32, vertices []mgl32.Vec3) (remap []uint32, uniqueCount int) {
	remap = make([]uint32, len(vertices))
	canonical := make(map[mgl32.Vec3]uint32, len(vertices))

	next := uint32(0)
	for i, v := range vertices {
		slot, ok := canonical[v]
		if !ok {
			slot = next
			canonical[v] = slot
			next++
		}
		remap[i] = slot
	}

	return remap, int(next)
}

// RemapIndexBuffer rewrites every index through the remap table. The
// returned buffer has the same length as the input.
func RemapIndexBuffer(indices, remap []uint32) []uint32 {
	out := make([]uint32, len(indices))
	for i, idx := range indices {
		out[i] = remap[idx]
	}
	return out
}

// RemapVertexBuffer compacts the vertex buffer down to uniqueCount entries,
// one per canonical slot, preserving the first-seen position for each.
func RemapVertexBuffer(vertices []mgl32.Vec3, remap []uint32, uniqueCount int) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, uniqueCount)
	seen := make([]bool, uniqueCount)
	for i, v := range vertices {
		slot := remap[i]
		if !seen[slot] {
			out[slot] = v
			seen[slot] = true
		}
	}
	return out
}

// OptimizeSubMesh runs the full remap pipeline on one sub-mesh in place.
// Sub-meshes are always optimized independently; buffers are never shared
// or remapped across sub-mesh boundaries. Returns the number of vertices
// removed.
func OptimizeSubMesh(sm *mesh.SubMesh) int {
	if sm.Empty() {
		return 0
	}

	remap, uniqueCount := GenerateVertexRemap(sm.Indices, sm.Vertices)
	removed := len(sm.Vertices) - uniqueCount
	if removed == 0 {
		return 0
	}

	sm.Indices = RemapIndexBuffer(sm.Indices, remap)
	sm.Vertices = RemapVertexBuffer(sm.Vertices, remap, uniqueCount)
	return removed
}
