package raster

import (
	"math"

	"geosphere/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters. Directions are in
// view space (X right, Y up, Z toward the viewer).
type LightConfig struct {
	LightDir mathutil.Vec3
	RimDir   mathutil.Vec3
	HalfMain mathutil.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
}

// DefaultLightConfig returns a key light above and to the left of the
// viewer with a faint rim from the opposite side.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{-0.4, 0.6, 0.7}.Normalize()
	rimDir := mathutil.Vec3{0.6, -0.2, -0.77}.Normalize()
	viewDir := mathutil.Vec3{0, 0, 1}

	halfMain := lightDir.Add(viewDir).Normalize()

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		HalfMain: halfMain,
		Ambient:  0.30,
		Direct:   0.85,
		Rim:      0.15,
		SpecInt:  0.25,
		SpecPow:  16.0,
	}
}

// ComputeShade returns the combined lighting scalar for a face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	ndl := normal.Dot(lc.LightDir)
	if ndl < 0 {
		ndl = 0
	}
	ndr := normal.Dot(lc.RimDir)
	if ndr < 0 {
		ndr = 0
	}

	// Blinn-Phong specular
	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + ndl*lc.Direct + ndr*lc.Rim + spec
}
