package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})
	src.Set(3, 1, color.RGBA{0, 0, 255, 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	require.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(0, 0))
	require.Equal(t, color.NRGBA{0, 0, 255, 255}, img.NRGBAAt(3, 1))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.tga"))
	require.Error(t, err)
}

func TestLoadGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestToNRGBAGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 2))
	g.Pix[0] = 77
	img := toNRGBA(g)
	c := img.NRGBAAt(0, 0)
	require.EqualValues(t, 77, c.R)
	require.EqualValues(t, 255, c.A)
}
