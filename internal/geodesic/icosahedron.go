package geodesic

import (
	"math"

	"geosphere/internal/mathutil"
)

// Icosahedron returns the 12 vertices and 20 faces of a regular
// icosahedron inscribed in the unit sphere, centered at the origin.
// Vertices are the cyclic permutations of (±1, ±φ, 0) normalized to
// unit length; faces wind counter-clockwise seen from outside.
func Icosahedron() ([]mathutil.Vec3, []Face) {
	phi := (1 + math.Sqrt(5)) / 2

	raw := []mathutil.Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	verts := make([]mathutil.Vec3, len(raw))
	for i, v := range raw {
		verts[i] = v.Normalize()
	}

	faces := []Face{
		// 5 faces around vertex 0
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		// 5 adjacent faces
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		// 5 faces around vertex 3
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		// 5 adjacent faces
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	return verts, faces
}
