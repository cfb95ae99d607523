// Package geodesic generates triangulated geodesic sphere meshes by
// subdividing an icosahedron and projecting the result onto a sphere.
package geodesic

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
)

var (
	// ErrInvalidParameter reports a rejected radius or frequency.
	ErrInvalidParameter = errors.New("geodesic: invalid parameter")

	// ErrInvariant reports a malformed mesh produced by a logic defect.
	// It is never expected in correct operation and is not retryable.
	ErrInvariant = errors.New("geodesic: internal invariant violation")
)

// Generate builds a geodesic sphere of the given radius at the given
// subdivision frequency. The result has exactly 20·n² faces and
// 10·n²+2 vertices, every vertex at distance radius from the origin,
// and all faces wound outward. Output is deterministic: identical
// inputs yield bit-identical meshes.
func Generate(radius float64, frequency int) (*Mesh, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("geodesic: radius must be a positive finite number, got %v: %w", radius, ErrInvalidParameter)
	}
	if frequency < 1 {
		return nil, fmt.Errorf("geodesic: frequency must be at least 1, got %d: %w", frequency, ErrInvalidParameter)
	}

	baseVerts, baseFaces := Icosahedron()

	// Subdivide the 20 base faces on a small worker pool. Each worker
	// writes only its own slot, so patch order (and therefore vertex id
	// assignment) is independent of scheduling.
	patches := make([]facePatch, len(baseFaces))
	workers := runtime.NumCPU()
	if workers > len(baseFaces) {
		workers = len(baseFaces)
	}
	faceChan := make(chan int, len(baseFaces))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for fi := range faceChan {
				f := baseFaces[fi]
				patches[fi] = subdivideFace(baseVerts[f[0]], baseVerts[f[1]], baseVerts[f[2]], frequency)
			}
		}()
	}
	for fi := range baseFaces {
		faceChan <- fi
	}
	close(faceChan)
	wg.Wait()

	mesh, err := mergePatches(patches)
	if err != nil {
		return nil, err
	}

	wantVerts := 10*frequency*frequency + 2
	wantFaces := 20 * frequency * frequency
	if len(mesh.Vertices) != wantVerts || len(mesh.Faces) != wantFaces {
		return nil, fmt.Errorf("geodesic: merged %d vertices / %d faces, want %d / %d: %w",
			len(mesh.Vertices), len(mesh.Faces), wantVerts, wantFaces, ErrInvariant)
	}

	mesh.Vertices = projectToRadius(mesh.Vertices, radius)
	mesh.Radius = radius
	mesh.Frequency = frequency
	return mesh, nil
}
