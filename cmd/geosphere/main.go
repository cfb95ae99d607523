package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"geosphere/internal/camera"
	"geosphere/internal/config"
	"geosphere/internal/export"
	"geosphere/internal/geodesic"
	"geosphere/internal/postprocess"
	"geosphere/internal/raster"
	"geosphere/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	radius := flag.Float64("radius", 0, "Sphere radius (default: 1)")
	frequency := flag.Int("frequency", 0, "Subdivision frequency (default: 3)")
	out := flag.String("out", "", "Mesh output file; format chosen by extension (.obj, .stl, .gltf)")
	preview := flag.String("preview", "", "Optional WebP preview output file")
	texPath := flag.String("texture", "", "Equirectangular texture for the preview (TGA/PNG/JPEG)")

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
		Frequency: *frequency,
		Texture:   *texPath,
	})

	mesh, err := geodesic.Generate(cfg.Radius, cfg.Frequency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Geodesic sphere: radius=%g frequency=%d\n", cfg.Radius, cfg.Frequency)
	fmt.Printf("Vertices: %d, Faces: %d, Edges: %d\n",
		mesh.VertexCount(), mesh.FaceCount(), mesh.EdgeCount())

	if *out != "" {
		if err := writeMesh(*out, mesh); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Mesh: %s\n", *out)
	}

	if *preview != "" {
		if err := writePreview(*preview, mesh, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview: %s\n", *preview)
	}
}

func writeMesh(path string, mesh *geodesic.Mesh) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf":
		return export.SaveGLTF(path, mesh)
	case ".obj", ".stl":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if ext == ".obj" {
			return export.WriteOBJ(f, mesh)
		}
		return export.WriteSTL(f, mesh)
	default:
		return fmt.Errorf("unknown mesh format %q (want .obj, .stl, or .gltf)", ext)
	}
}

func writePreview(path string, mesh *geodesic.Mesh, cfg config.Config) error {
	var tex *image.NRGBA
	if cfg.TexturePath != "" {
		var err error
		tex, err = texture.Load(cfg.TexturePath)
		if err != nil {
			return err
		}
	}

	cam := camera.Orbit{Yaw: cfg.CameraYaw, Pitch: cfg.CameraPitch}
	img := raster.RenderMesh(mesh, raster.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		View:        cam.ViewMatrix(),
		Texture:     tex,
		BaseColor:   [3]uint8{200, 205, 215},
	})
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return nativewebp.Encode(f, img, nil)
}
