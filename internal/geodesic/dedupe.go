package geodesic

import (
	"fmt"
	"math"

	"geosphere/internal/mathutil"
)

// mergeTolerance is the quantization step for vertex merging, in
// unit-sphere units. Lattice points are never closer than roughly
// 1/frequency apart, while coincident points from adjacent faces agree
// to within float64 roundoff (~1e-16), so anything between those two
// scales works; 1e-6 keeps merging correct up to frequencies in the
// hundreds of thousands.
const mergeTolerance = 1e-6

// gridKey is a spatial bucket: coordinates rounded to the merge
// tolerance. Integer components sidestep the ±0 and NaN pitfalls of
// float map keys.
type gridKey [3]int64

func quantize(p mathutil.Vec3) gridKey {
	return gridKey{
		int64(math.Round(p[0] / mergeTolerance)),
		int64(math.Round(p[1] / mergeTolerance)),
		int64(math.Round(p[2] / mergeTolerance)),
	}
}

// mergePatches folds per-face lattices into one vertex buffer,
// assigning dense ids in first-encountered order (patches in base-face
// order, points in lattice order) and remapping faces to global ids.
// A face collapsing to fewer than three distinct ids means the lattice
// construction itself is broken and is reported as ErrInvariant.
func mergePatches(patches []facePatch) (*Mesh, error) {
	index := make(map[gridKey]int)
	var verts []mathutil.Vec3
	var faces []Face

	for pi := range patches {
		p := &patches[pi]
		remap := make([]int, len(p.points))
		for li, pt := range p.points {
			k := quantize(pt)
			id, ok := index[k]
			if !ok {
				id = len(verts)
				index[k] = id
				verts = append(verts, pt)
			}
			remap[li] = id
		}
		for _, f := range p.faces {
			g := Face{remap[f[0]], remap[f[1]], remap[f[2]]}
			if g[0] == g[1] || g[1] == g[2] || g[0] == g[2] {
				return nil, fmt.Errorf("geodesic: patch %d produced degenerate face (%d,%d,%d): %w", pi, g[0], g[1], g[2], ErrInvariant)
			}
			faces = append(faces, g)
		}
	}

	return &Mesh{Vertices: verts, Faces: faces}, nil
}
