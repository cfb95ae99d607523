package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"geosphere/internal/geodesic"
	"geosphere/internal/mathutil"
)

func TestRenderMeshCoversDisc(t *testing.T) {
	mesh, err := geodesic.Generate(1, 2)
	require.NoError(t, err)

	const size = 64
	img := RenderMesh(mesh, Options{
		Size:      size,
		View:      mathutil.Mat3Identity(),
		BaseColor: [3]uint8{200, 205, 215},
	})

	require.Equal(t, image.Rect(0, 0, size, size), img.Bounds())

	// Center lands inside the sphere silhouette, corners outside.
	center := img.NRGBAAt(size/2, size/2)
	require.EqualValues(t, 255, center.A)
	require.EqualValues(t, 0, img.NRGBAAt(0, 0).A)
	require.EqualValues(t, 0, img.NRGBAAt(size-1, size-1).A)

	var opaque int
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if img.NRGBAAt(x, y).A == 255 {
				opaque++
			}
		}
	}
	// Silhouette is roughly a disc of radius size/2 - margin.
	require.Greater(t, opaque, size*size/4)
	require.Less(t, opaque, size*size)
}

func TestRenderMeshSupersample(t *testing.T) {
	mesh, err := geodesic.Generate(1, 1)
	require.NoError(t, err)

	img := RenderMesh(mesh, Options{
		Size:        32,
		Supersample: 2,
		View:        mathutil.Mat3Identity(),
		BaseColor:   [3]uint8{255, 255, 255},
	})
	require.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
}

func TestRenderMeshTextured(t *testing.T) {
	mesh, err := geodesic.Generate(1, 2)
	require.NoError(t, err)

	// Solid green texture; lit pixels must carry green only.
	tex := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := 0; i < len(tex.Pix); i += 4 {
		tex.Pix[i+1] = 255
		tex.Pix[i+3] = 255
	}

	const size = 64
	img := RenderMesh(mesh, Options{
		Size:    size,
		View:    mathutil.Mat3Identity(),
		Texture: tex,
	})

	c := img.NRGBAAt(size/2, size/2)
	require.EqualValues(t, 255, c.A)
	require.EqualValues(t, 0, c.R)
	require.Greater(t, c.G, uint8(0))
	require.EqualValues(t, 0, c.B)
}

func TestUnwrapSeam(t *testing.T) {
	uv := [3][2]float64{{0.95, 0.5}, {0.05, 0.5}, {0.98, 0.6}}
	unwrapSeam(&uv)
	require.InDelta(t, 1.05, uv[1][0], 1e-12)
	require.Equal(t, 0.95, uv[0][0])

	// Faces away from the seam stay untouched.
	uv = [3][2]float64{{0.4, 0.5}, {0.45, 0.5}, {0.5, 0.6}}
	unwrapSeam(&uv)
	require.Equal(t, 0.45, uv[1][0])
}
