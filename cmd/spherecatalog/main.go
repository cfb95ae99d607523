package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"geosphere/internal/batch"
	"geosphere/internal/camera"
	"geosphere/internal/config"
	"geosphere/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	radius := flag.Float64("radius", 0, "Sphere radius (default: 1)")
	minFreq := flag.Int("minfreq", 1, "Lowest subdivision frequency")
	maxFreq := flag.Int("maxfreq", 8, "Highest subdivision frequency")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	texPath := flag.String("texture", "", "Equirectangular texture (TGA/PNG/JPEG)")
	writeOBJ := flag.Bool("obj", false, "Also write an OBJ file per sphere")
	writeSTL := flag.Bool("stl", false, "Also write a binary STL file per sphere")
	writeGLTF := flag.Bool("gltf", false, "Also write a glTF file per sphere")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Radius:    *radius,
		OutputDir: *outputDir,
		Texture:   *texPath,
		Workers:   *workers,
	})

	if *minFreq < 1 || *maxFreq < *minFreq {
		fmt.Fprintln(os.Stderr, "Error: need 1 <= minfreq <= maxfreq")
		os.Exit(1)
	}

	var tex *image.NRGBA
	if cfg.TexturePath != "" {
		var err error
		tex, err = texture.Load(cfg.TexturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: texture load: %v\n", err)
		}
	}

	var jobs []batch.Job
	for f := *minFreq; f <= *maxFreq; f++ {
		jobs = append(jobs, batch.Job{Radius: cfg.Radius, Frequency: f})
	}

	cam := camera.Orbit{Yaw: cfg.CameraYaw, Pitch: cfg.CameraPitch}

	fmt.Printf("Geodesic sphere catalog: frequencies %d..%d, radius %g\n", *minFreq, *maxFreq, cfg.Radius)
	fmt.Printf("Jobs: %d, Workers: %d\n", len(jobs), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Texture:     tex,
		View:        cam.ViewMatrix(),
		WriteOBJ:    *writeOBJ,
		WriteSTL:    *writeSTL,
		WriteGLTF:   *writeGLTF,
	}, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var failures []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			failures = append(failures, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, r := range failures {
			fmt.Printf("  f=%d r=%g: %s\n", r.Frequency, r.Radius, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
