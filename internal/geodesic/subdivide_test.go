package geodesic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"geosphere/internal/mathutil"
)

var triA = mathutil.Vec3{0, 0, 1}
var triB = mathutil.Vec3{1, 0, 0}
var triC = mathutil.Vec3{0, 1, 0}

func TestSubdivideFaceCounts(t *testing.T) {
	for n := 1; n <= 6; n++ {
		p := subdivideFace(triA, triB, triC, n)
		require.Len(t, p.points, (n+1)*(n+2)/2, "n=%d", n)
		require.Len(t, p.faces, n*n, "n=%d", n)
	}
}

func TestSubdivideFaceFrequencyOne(t *testing.T) {
	p := subdivideFace(triA, triB, triC, 1)
	require.Len(t, p.faces, 1)
	f := p.faces[0]
	require.Equal(t, triA, p.points[f[0]])
	require.Equal(t, triB, p.points[f[1]])
	require.Equal(t, triC, p.points[f[2]])
}

func TestSubdivideFaceWindingMatchesParent(t *testing.T) {
	parentNormal := triB.Sub(triA).Cross(triC.Sub(triA))
	for n := 1; n <= 5; n++ {
		p := subdivideFace(triA, triB, triC, n)
		for i, f := range p.faces {
			a, b, c := p.points[f[0]], p.points[f[1]], p.points[f[2]]
			normal := b.Sub(a).Cross(c.Sub(a))
			require.Greater(t, normal.Dot(parentNormal), 0.0, "n=%d face %d flipped", n, i)
		}
	}
}

func TestSubdivideFaceIndicesInRange(t *testing.T) {
	p := subdivideFace(triA, triB, triC, 4)
	for i, f := range p.faces {
		for _, id := range f {
			require.GreaterOrEqual(t, id, 0, "face %d", i)
			require.Less(t, id, len(p.points), "face %d", i)
		}
	}
}

// Adjacent base faces compute their shared edge through different
// corner orders; the lattice must still produce bit-identical points
// there, or deduplication would depend on rounding luck.
func TestSubdivideFaceSharedEdgeBitIdentical(t *testing.T) {
	d := mathutil.Vec3{-0.3, -0.4, 0.87}.Normalize()
	const n = 7

	left := subdivideFace(triA, triB, triC, n)
	right := subdivideFace(triB, triA, d, n) // same a–b edge, reversed

	idx := func(i, j int) int { return i*(n+1) - i*(i-1)/2 + j }
	for i := 0; i <= n; i++ {
		p := left.points[idx(i, 0)]
		q := right.points[idx(n-i, 0)]
		require.Equal(t, p, q, "edge point %d differs between adjacent faces", i)
	}
}
