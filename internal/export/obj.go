// Package export writes generated meshes in interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"

	"geosphere/internal/geodesic"
)

// WriteOBJ writes the mesh as Wavefront OBJ text. Vertex ids map to
// 1-based OBJ indices in order, preserving the mesh's id assignment.
func WriteOBJ(w io.Writer, m *geodesic.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# geodesic sphere: radius=%g frequency=%d vertices=%d faces=%d\n",
		m.Radius, m.Frequency, len(m.Vertices), len(m.Faces))
	fmt.Fprintln(bw, "o geosphere")

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.9g %.9g %.9g\n", v[0], v[1], v[2])
	}
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write obj: %w", err)
	}
	return nil
}
