package raster

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// LightConfig holds precomputed lighting parameters. Directions are in
// screen space (Z toward the viewer).
type LightConfig struct {
	LightDir r3.Vec
	HalfVec  r3.Vec // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Diffuse  float64
	SpecInt  float64
	SpecPow  float64
}

// DefaultLightConfig returns a headlight slightly above and left of the camera.
func DefaultLightConfig() LightConfig {
	lightDir := r3.Unit(r3.Vec{X: -0.3, Y: 0.4, Z: 1})
	viewDir := r3.Vec{Z: 1}
	return LightConfig{
		LightDir: lightDir,
		HalfVec:  r3.Unit(r3.Add(lightDir, viewDir)),
		Ambient:  0.35,
		Diffuse:  0.65,
		SpecInt:  0.15,
		SpecPow:  24,
	}
}

// Shade returns the lighting factor for a unit normal. Surfaces are
// double-sided, so the normal's sign does not matter. A zero normal gets
// ambient plus full diffuse.
func (lc *LightConfig) Shade(n r3.Vec) float64 {
	if n == (r3.Vec{}) {
		return lc.Ambient + lc.Diffuse
	}
	ndl := math.Abs(r3.Dot(n, lc.LightDir))
	ndh := math.Abs(r3.Dot(n, lc.HalfVec))
	return lc.Ambient + lc.Diffuse*ndl + lc.SpecInt*math.Pow(ndh, lc.SpecPow)
}
