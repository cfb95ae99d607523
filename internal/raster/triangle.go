package raster

import "image"

// RasterizeTriangle fills a single screen-space triangle with z-buffer
// testing, flat shading, and optional texture mapping.
//
// This is the HOT PATH — no allocation in the inner loop. Vertices are
// given as parallel coordinate slices indexed by vi; uv holds the
// already-unwrapped texture coordinates of the three corners in vi
// order. shade is the precomputed flat-shading scalar for the face.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	vi [3]int,
	uv [3][2]float64,
	tex *image.NRGBA,
	baseR, baseG, baseB uint8,
	shade float64,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	// Signed doubled area; sign depends on screen-space orientation.
	area := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	if area > -1e-12 && area < 1e-12 {
		return
	}
	invArea := 1.0 / area

	// Clamped integer bounding box
	minX, maxX := int(min3(x0, x1, x2)), int(max3(x0, x1, x2))+1
	minY, maxY := int(min3(y0, y1, y2)), int(max3(y0, y1, y2))+1
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}

	for y := minY; y <= maxY; y++ {
		cy := float64(y) + 0.5
		rowOff := y * fb.Width
		for x := minX; x <= maxX; x++ {
			cx := float64(x) + 0.5

			// Barycentric weights, normalized by the signed area so the
			// inside test works for either winding.
			w0 := ((x1-cx)*(y2-cy) - (x2-cx)*(y1-cy)) * invArea
			w1 := ((x2-cx)*(y0-cy) - (x0-cx)*(y2-cy)) * invArea
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			pi := rowOff + x
			if z <= fb.ZBuf[pi] {
				continue
			}
			fb.ZBuf[pi] = z

			r, g, b := baseR, baseG, baseB
			if tex != nil {
				u := w0*uv[0][0] + w1*uv[1][0] + w2*uv[2][0]
				v := w0*uv[0][1] + w1*uv[1][1] + w2*uv[2][1]
				r, g, b = SampleTexture(tex, u, v)
			}

			ci := pi * 4
			fb.Color[ci] = shade8(r, shade)
			fb.Color[ci+1] = shade8(g, shade)
			fb.Color[ci+2] = shade8(b, shade)
			fb.Color[ci+3] = 255
		}
	}
}

func shade8(c uint8, shade float64) uint8 {
	v := float64(c) * shade
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
