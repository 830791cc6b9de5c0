package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteOBJ writes the sub-meshes to w as a Wavefront-style text mesh: one
// named object block per non-empty sub-mesh, in the given order. Vertices
// are written with 6 decimal digits; faces use 1-based indices offset by
// the running global vertex count of previously written blocks. An empty
// sub-mesh is skipped entirely and contributes nothing to the offset.
func WriteOBJ(w io.Writer, subs []*SubMesh) error {
	bw := bufio.NewWriter(w)

	offset := uint32(0)
	for _, sm := range subs {
		if sm.Empty() {
			continue
		}

		fmt.Fprintf(bw, "o %s\n", sm.Name)
		for _, v := range sm.Vertices {
			fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X(), v.Y(), v.Z())
		}
		fmt.Fprintf(bw, "s off\n")
		for i := 0; i+2 < len(sm.Indices); i += 3 {
			fmt.Fprintf(bw, "f %d %d %d\n",
				offset+sm.Indices[i]+1,
				offset+sm.Indices[i+1]+1,
				offset+sm.Indices[i+2]+1)
		}

		offset += uint32(len(sm.Vertices))
	}

	return bw.Flush()
}

// WriteOBJFile writes the sub-meshes to a file on disk.
func WriteOBJFile(path string, subs []*SubMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating mesh %s: %w", path, err)
	}

	if err := WriteOBJ(f, subs); err != nil {
		f.Close()
		return fmt.Errorf("writing mesh %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("writing mesh %s: %w", path, err)
	}
	return nil
}
