package raster

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRasterizeTriangleFills(t *testing.T) {
	fb := NewFrameBuffer(32, 32)
	px := []float64{4, 28, 16}
	py := []float64{4, 4, 28}
	pz := []float64{0, 0, 0}

	RasterizeTriangle(fb, px, py, pz, [3]int{0, 1, 2}, [3][2]float64{}, nil, 100, 150, 200, 1.0)

	// Near-centroid pixel is inside, top corner row outside.
	i := (12*fb.Width + 16) * 4
	require.EqualValues(t, 100, fb.Color[i])
	require.EqualValues(t, 150, fb.Color[i+1])
	require.EqualValues(t, 200, fb.Color[i+2])
	require.EqualValues(t, 255, fb.Color[i+3])

	require.EqualValues(t, 0, fb.Color[(0*fb.Width+0)*4+3])
}

func TestRasterizeTriangleDepthTest(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	px := []float64{0, 16, 8, 0, 16, 8}
	py := []float64{0, 0, 16, 0, 0, 16}
	pz := []float64{5, 5, 5, 1, 1, 1}

	// Near triangle first; the farther one must not overwrite it.
	RasterizeTriangle(fb, px, py, pz, [3]int{0, 1, 2}, [3][2]float64{}, nil, 255, 0, 0, 1.0)
	RasterizeTriangle(fb, px, py, pz, [3]int{3, 4, 5}, [3][2]float64{}, nil, 0, 255, 0, 1.0)

	i := (8*fb.Width + 8) * 4
	require.EqualValues(t, 255, fb.Color[i])
	require.EqualValues(t, 0, fb.Color[i+1])
}

func TestRasterizeTriangleRejectsBadIndex(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	px := []float64{0, 8, 4}
	RasterizeTriangle(fb, px, px, px, [3]int{0, 1, 5}, [3][2]float64{}, nil, 255, 255, 255, 1.0)
	for i := 3; i < len(fb.Color); i += 4 {
		require.EqualValues(t, 0, fb.Color[i])
	}
}

func TestShadeClamps(t *testing.T) {
	require.EqualValues(t, 255, shade8(200, 2.0))
	require.EqualValues(t, 100, shade8(200, 0.5))
}

func TestSampleTextureBilinear(t *testing.T) {
	// 2×1 texture: black then white.
	tex := newTestTexture(2, 1, [][4]uint8{{0, 0, 0, 255}, {255, 255, 255, 255}})

	r, _, _ := SampleTexture(tex, 0, 0)
	require.EqualValues(t, 0, r)
	r, _, _ = SampleTexture(tex, 1, 0)
	// u=1 wraps back to texel 0
	require.EqualValues(t, 0, r)
	r, g, b := SampleTexture(tex, 0.5, 0)
	require.InDelta(t, 128, float64(r), 1.0)
	require.InDelta(t, 128, float64(g), 1.0)
	require.InDelta(t, 128, float64(b), 1.0)
}

func newTestTexture(w, h int, texels [][4]uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, tx := range texels {
		copy(img.Pix[i*4:], tx[:])
	}
	return img
}

func TestFrameBufferInit(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	require.Len(t, fb.Color, 4*3*4)
	require.Len(t, fb.ZBuf, 12)
	for _, z := range fb.ZBuf {
		require.True(t, math.IsInf(z, -1))
	}
	img := fb.ToNRGBA()
	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 3, img.Bounds().Dy())
}
