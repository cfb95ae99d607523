package geodesic

import "geosphere/internal/mathutil"

// projectToRadius rescales every vertex to lie exactly at radius from
// the origin, preserving direction and order. Inputs are non-zero by
// construction (the icosahedron lattice never touches the origin).
func projectToRadius(verts []mathutil.Vec3, radius float64) []mathutil.Vec3 {
	out := make([]mathutil.Vec3, len(verts))
	for i, v := range verts {
		out[i] = v.Scale(radius / v.Len())
	}
	return out
}
