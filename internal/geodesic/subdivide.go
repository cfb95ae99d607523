package geodesic

import "geosphere/internal/mathutil"

// facePatch is the barycentric subdivision of one base face: a local
// lattice of (n+1)(n+2)/2 points and n² triangles indexing into it.
// Patches from adjacent base faces overlap along shared edges; the
// deduplicator merges them into the global vertex buffer.
type facePatch struct {
	points []mathutil.Vec3
	faces  []Face
}

// subdivideFace builds the frequency-n lattice over triangle (a, b, c).
// Lattice point (i, j) is the barycentric combination
//
//	P(i,j) = a·((n−i−j)/n) + b·(i/n) + c·(j/n),  i+j ≤ n.
//
// The weighted-sum form is symmetric in the corners, so a point on a
// shared edge comes out bit-identical no matter which of the two
// adjacent faces computed it (float addition of two terms commutes).
// Sub-triangle winding follows the parent's (a, b, c) order.
func subdivideFace(a, b, c mathutil.Vec3, n int) facePatch {
	points := make([]mathutil.Vec3, 0, (n+1)*(n+2)/2)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n-i; j++ {
			wa := float64(n-i-j) / float64(n)
			wb := float64(i) / float64(n)
			wc := float64(j) / float64(n)
			points = append(points, a.Scale(wa).Add(b.Scale(wb)).Add(c.Scale(wc)))
		}
	}

	// Index of lattice point (i, j): rows of decreasing length n+1, n, ...
	idx := func(i, j int) int {
		return i*(n+1) - i*(i-1)/2 + j
	}

	faces := make([]Face, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i; j++ {
			// Upward triangle of cell (i, j).
			faces = append(faces, Face{idx(i, j), idx(i+1, j), idx(i, j+1)})
			// Downward triangle, absent on the c-side edge of the row.
			if j < n-i-1 {
				faces = append(faces, Face{idx(i+1, j), idx(i+1, j+1), idx(i, j+1)})
			}
		}
	}

	return facePatch{points: points, faces: faces}
}
