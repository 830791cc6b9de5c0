// Package scene assembles maze geometry into a fixed set of sub-meshes.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/mazemesh/internal/logger"
	"github.com/Faultbox/mazemesh/pkg/maze"
	"github.com/Faultbox/mazemesh/pkg/mesh"
	"github.com/Faultbox/mazemesh/pkg/meshopt"
)

// Options controls geometry synthesis.
type Options struct {
	// Scale is the world-space edge length of one tile.
	Scale float32
	// Optimize runs the vertex remap pass on every sub-mesh after synthesis.
	Optimize bool
	// EmitFloor adds a floor quad spanning the maze bounds at its min Y.
	EmitFloor bool
	// EmitCeiling adds a ceiling quad spanning the maze bounds at its max Y.
	EmitCeiling bool
	// ZeroUnknownTiles overwrites unrecognized tile bytes with 0 in the
	// grid, after the geometry decision for that tile.
	ZeroUnknownTiles bool
}

// Scene owns the tile grid and the fixed set of sub-meshes.
type Scene struct {
	Maze *maze.Maze

	Walls   *mesh.SubMesh // "maze" sub-mesh: '*' tiles
	Houses  *mesh.SubMesh // building marker tiles
	Floor   *mesh.SubMesh
	Ceiling *mesh.SubMesh
}

// SubMeshes returns the sub-meshes in their fixed emission order.
func (s *Scene) SubMeshes() []*mesh.SubMesh {
	return []*mesh.SubMesh{s.Walls, s.Houses, s.Floor, s.Ceiling}
}

// Build scans the grid in row-major order and synthesizes box geometry per
// tile: walls go into the "maze" sub-mesh, building markers into "houses".
// Floor and ceiling planes are derived from the maze sub-mesh's final
// bounding box, the assumed room envelope, not from the houses box.
func Build(m *maze.Maze, opts Options) *Scene {
	s := &Scene{
		Maze:    m,
		Walls:   mesh.NewSubMesh("maze"),
		Houses:  mesh.NewSubMesh("houses"),
		Floor:   mesh.NewSubMesh("floor"),
		Ceiling: mesh.NewSubMesh("ceiling"),
	}

	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			b := m.At(x, y)
			switch maze.Classify(b) {
			case maze.TileWall:
				mesh.AddBox(s.Walls, mesh.BoxOrigin(x, y, m.W, m.H, opts.Scale), opts.Scale)
			case maze.TileBuilding:
				mesh.AddBox(s.Houses, mesh.BoxOrigin(x, y, m.W, m.H, opts.Scale), opts.Scale)
			case maze.TileEmpty:
				// no geometry
			case maze.TileUnknown:
				if opts.ZeroUnknownTiles {
					m.Set(x, y, 0)
				}
			}
		}
	}

	if opts.EmitFloor || opts.EmitCeiling {
		if s.Walls.Bounds.Valid() {
			if opts.EmitFloor {
				mesh.AddBoundsPlane(s.Floor, s.Walls.Bounds, s.Walls.Bounds.Min.Y())
			}
			if opts.EmitCeiling {
				mesh.AddBoundsPlane(s.Ceiling, s.Walls.Bounds, s.Walls.Bounds.Max.Y())
			}
		} else {
			logger.Warn("no maze walls, skipping floor/ceiling planes")
		}
	}

	if opts.Optimize {
		for _, sm := range s.SubMeshes() {
			before := sm.VertexCount()
			removed := meshopt.OptimizeSubMesh(sm)
			if removed > 0 {
				logger.Debug("optimized sub-mesh",
					zap.String("name", sm.Name),
					zap.Int("vertices_before", before),
					zap.Int("vertices_after", sm.VertexCount()),
				)
			}
		}
	}

	return s
}
