package raster

import (
	"image"
	"math"

	"geosphere/internal/geodesic"
	"geosphere/internal/mathutil"
)

// Options controls a single mesh render.
type Options struct {
	Size        int             // output edge length in pixels
	Supersample int             // internal oversampling factor, ≥1
	View        mathutil.Mat3   // world-to-view rotation
	Texture     *image.NRGBA    // optional equirectangular surface texture
	BaseColor   [3]uint8        // fill color when Texture is nil
	Lights      *LightConfig    // nil selects DefaultLightConfig
}

// RenderMesh renders the mesh with flat shading and orthographic
// projection into a square NRGBA image of Size×Supersample pixels per
// side. Background pixels stay fully transparent.
func RenderMesh(m *geodesic.Mesh, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	renderSize := opts.Size * ss

	lc := opts.Lights
	if lc == nil {
		def := DefaultLightConfig()
		lc = &def
	}

	radius := m.Radius
	if radius <= 0 {
		for _, v := range m.Vertices {
			if l := v.Len(); l > radius {
				radius = l
			}
		}
	}
	if radius <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	margin := 8 * ss
	scale := float64(renderSize-2*margin) / (2 * radius)
	half := float64(renderSize) / 2

	// Project all vertices: X right, Y up (flipped into image rows),
	// Z toward the viewer as depth.
	n := len(m.Vertices)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)
	us := make([]float64, n)
	vs := make([]float64, n)
	for i, v := range m.Vertices {
		t := opts.View.MulVec3(v)
		px[i] = t[0]*scale + half
		py[i] = half - t[1]*scale
		pz[i] = t[2] * scale

		// Equirectangular UV from the untransformed direction.
		d := v.Scale(1 / radius)
		us[i] = 0.5 + math.Atan2(d[2], d[0])/(2*math.Pi)
		y := d[1]
		if y > 1 {
			y = 1
		} else if y < -1 {
			y = -1
		}
		vs[i] = math.Acos(y) / math.Pi
	}

	fb := NewFrameBuffer(renderSize, renderSize)

	for fi := range m.Faces {
		f := m.Faces[fi]

		// Backface cull in view space; winding is consistently outward,
		// so this also halves the rasterization work.
		normal := opts.View.MulVec3(m.FaceNormal(fi))
		if normal[2] <= 0 {
			continue
		}
		shade := lc.ComputeShade(normal)

		var uv [3][2]float64
		for k, id := range f {
			uv[k] = [2]float64{us[id], vs[id]}
		}
		unwrapSeam(&uv)

		RasterizeTriangle(fb, px, py, pz, [3]int{f[0], f[1], f[2]}, uv,
			opts.Texture, opts.BaseColor[0], opts.BaseColor[1], opts.BaseColor[2], shade)
	}

	return fb.ToNRGBA()
}

// unwrapSeam shifts u coordinates of faces straddling the ±180°
// longitude seam so they interpolate over the short arc.
func unwrapSeam(uv *[3][2]float64) {
	minU, maxU := uv[0][0], uv[0][0]
	for k := 1; k < 3; k++ {
		if uv[k][0] < minU {
			minU = uv[k][0]
		}
		if uv[k][0] > maxU {
			maxU = uv[k][0]
		}
	}
	if maxU-minU > 0.5 {
		for k := 0; k < 3; k++ {
			if uv[k][0] < 0.5 {
				uv[k][0] += 1
			}
		}
	}
}
