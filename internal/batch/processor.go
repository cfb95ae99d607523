// Package batch renders a catalog of geodesic spheres on a worker pool.
package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"geosphere/internal/export"
	"geosphere/internal/geodesic"
	"geosphere/internal/mathutil"
	"geosphere/internal/postprocess"
	"geosphere/internal/raster"
)

// Job is one sphere to generate and render.
type Job struct {
	Radius    float64
	Frequency int
}

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	RenderSize  int
	Supersample int
	Workers     int
	Texture     *image.NRGBA
	View        mathutil.Mat3
	WriteOBJ    bool
	WriteSTL    bool
	WriteGLTF   bool
}

// Result holds the outcome of processing one job.
type Result struct {
	Radius    float64
	Frequency int
	Vertices  int
	Faces     int
	Image     string
	Success   bool
	Error     string
}

// Run processes all jobs using a worker pool. Results come back in job
// order regardless of completion order.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f spheres/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Radius: job.Radius, Frequency: job.Frequency}

	mesh, err := geodesic.Generate(job.Radius, job.Frequency)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Vertices = mesh.VertexCount()
	res.Faces = mesh.FaceCount()

	stem := fmt.Sprintf("f%02d_r%g", job.Frequency, job.Radius)

	img := raster.RenderMesh(mesh, raster.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		View:        cfg.View,
		Texture:     cfg.Texture,
		BaseColor:   [3]uint8{200, 205, 215},
	})
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Image = stem + ".webp"
	f, err := os.Create(filepath.Join(cfg.OutputDir, res.Image))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	if err := writeMeshFiles(cfg, mesh, stem); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

func writeMeshFiles(cfg Config, mesh *geodesic.Mesh, stem string) error {
	if cfg.WriteOBJ {
		if err := writeFile(filepath.Join(cfg.OutputDir, stem+".obj"), mesh, export.WriteOBJ); err != nil {
			return err
		}
	}
	if cfg.WriteSTL {
		if err := writeFile(filepath.Join(cfg.OutputDir, stem+".stl"), mesh, export.WriteSTL); err != nil {
			return err
		}
	}
	if cfg.WriteGLTF {
		if err := export.SaveGLTF(filepath.Join(cfg.OutputDir, stem+".gltf"), mesh); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, mesh *geodesic.Mesh, write func(w io.Writer, m *geodesic.Mesh) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f, mesh)
}
