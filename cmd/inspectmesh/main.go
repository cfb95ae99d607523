package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"geosphere/internal/export"
	"geosphere/internal/geodesic"
)

func main() {
	radius := flag.Float64("radius", 1, "Sphere radius (when generating)")
	frequency := flag.Int("frequency", 3, "Subdivision frequency (when generating)")

	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		// Inspect STL files given on the command line.
		exitCode := 0
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Open error %s: %v\n", path, err)
				exitCode = 1
				continue
			}
			mesh, err := export.ReadSTL(f)
			f.Close()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", path, err)
				exitCode = 1
				continue
			}
			fmt.Printf("\n=== %s ===\n", path)
			printStats(mesh)
		}
		os.Exit(exitCode)
	}

	mesh, err := geodesic.Generate(*radius, *frequency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("=== generated sphere r=%g f=%d ===\n", *radius, *frequency)
	printStats(mesh)
}

func printStats(m *geodesic.Mesh) {
	v, f, e := m.VertexCount(), m.FaceCount(), m.EdgeCount()
	fmt.Printf("Vertices: %d, Faces: %d, Edges: %d (Euler χ=%d)\n", v, f, e, v-e+f)

	minR, maxR := math.Inf(1), math.Inf(-1)
	for _, vert := range m.Vertices {
		l := vert.Len()
		if l < minR {
			minR = l
		}
		if l > maxR {
			maxR = l
		}
	}
	fmt.Printf("Vertex distance from origin: min=%.9g max=%.9g\n", minR, maxR)

	minE, maxE := math.Inf(1), math.Inf(-1)
	for _, face := range m.Faces {
		for k := 0; k < 3; k++ {
			d := m.Vertices[face[k]].Distance(m.Vertices[face[(k+1)%3]])
			if d < minE {
				minE = d
			}
			if d > maxE {
				maxE = d
			}
		}
	}
	fmt.Printf("Edge length: min=%.6g max=%.6g\n", minE, maxE)

	area := m.SurfaceArea()
	ideal := 4 * math.Pi * maxR * maxR
	fmt.Printf("Surface area: %.6g (%.2f%% of sphere)\n", area, 100*area/ideal)

	if err := m.Validate(); err != nil {
		fmt.Printf("Validation: FAILED: %v\n", err)
	} else {
		fmt.Println("Validation: OK")
	}
}
