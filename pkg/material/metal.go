package material

import (
	"math/rand"

	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal colour
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering.
// A fuzz-perturbed reflection may end up below the tangent plane; such rays
// are deliberately not filtered, matching the behavior of the renderer this
// one reproduces.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal)
	reflected = reflected.Normalize().Add(core.RandomUnitVector(random).Multiply(m.Fuzz))

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}
