package geodesic

import (
	"fmt"
	"math"

	"geosphere/internal/mathutil"
)

// Face is a triangle given as three vertex ids, wound counter-clockwise
// when seen from outside the sphere.
type Face [3]int

// Mesh is a watertight triangle mesh: a dense vertex buffer plus faces
// indexing into it. Vertex ids are zero-based and assigned in
// first-encountered order, so two generation runs with the same inputs
// produce identical meshes.
type Mesh struct {
	Vertices []mathutil.Vec3
	Faces    []Face

	// Generation parameters, zero when the mesh was loaded from a file
	// rather than generated.
	Radius    float64
	Frequency int
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// EdgeCount returns the number of undirected edges.
func (m *Mesh) EdgeCount() int {
	edges := make(map[[2]int]struct{}, len(m.Faces)*3/2)
	for _, f := range m.Faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			edges[[2]int{a, b}] = struct{}{}
		}
	}
	return len(edges)
}

// FaceNormal returns the unit normal of face i (right-hand rule over the
// winding order, so it points outward for generated spheres).
func (m *Mesh) FaceNormal(i int) mathutil.Vec3 {
	f := m.Faces[i]
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// SurfaceArea returns the summed area of all faces.
func (m *Mesh) SurfaceArea() float64 {
	var area float64
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		area += 0.5 * b.Sub(a).Cross(c.Sub(a)).Len()
	}
	return area
}

// Validate re-checks the structural invariants of the mesh: every face
// references three distinct, in-range vertex ids; no two vertices
// coincide within the merge tolerance; and, when Radius is set, every
// vertex lies on the sphere. Returns nil for a well-formed mesh.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, id := range f {
			if id < 0 || id >= len(m.Vertices) {
				return fmt.Errorf("geodesic: face %d references vertex %d of %d: %w", i, id, len(m.Vertices), ErrInvariant)
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return fmt.Errorf("geodesic: face %d is degenerate (%d,%d,%d): %w", i, f[0], f[1], f[2], ErrInvariant)
		}
	}

	// Duplicate detection reuses the grid the deduplicator merges on, at
	// unit-sphere scale.
	scale := 1.0
	if m.Radius > 0 {
		scale = 1.0 / m.Radius
	}
	seen := make(map[gridKey]int, len(m.Vertices))
	for i, v := range m.Vertices {
		k := quantize(v.Scale(scale))
		if j, dup := seen[k]; dup {
			return fmt.Errorf("geodesic: vertices %d and %d coincide within tolerance: %w", j, i, ErrInvariant)
		}
		seen[k] = i
	}

	if m.Radius > 0 {
		for i, v := range m.Vertices {
			if math.Abs(v.Len()-m.Radius) > 1e-9*m.Radius {
				return fmt.Errorf("geodesic: vertex %d at distance %g, want %g: %w", i, v.Len(), m.Radius, ErrInvariant)
			}
		}
	}
	return nil
}
