package postprocess

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDownsampleShrinks(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 200
		src.Pix[i+3] = 255
	}

	dst := Downsample(src, 32)
	require.Equal(t, image.Rect(0, 0, 32, 32), dst.Bounds())

	// Uniform opaque input survives the premultiply round trip.
	c := dst.NRGBAAt(16, 16)
	require.InDelta(t, 200, float64(c.R), 2)
	require.EqualValues(t, 255, c.A)
}

func TestDownsampleNoopWhenSmall(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	require.Same(t, src, Downsample(src, 32))
}

func TestDownsampleTransparentStaysTransparent(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	dst := Downsample(src, 16)
	for i := 3; i < len(dst.Pix); i += 4 {
		require.EqualValues(t, 0, dst.Pix[i])
	}
}
