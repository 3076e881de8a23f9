package material

import (
	"math"
	"math/rand"

	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	// RefractionIndex is the refractive index in vacuum or air, or the ratio
	// of the material's refractive index over that of the enclosing medium
	RefractionIndex float64
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	// Clear glass absorbs nothing
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Entering the medium divides by the index, exiting multiplies
	ri := d.RefractionIndex
	if hit.FrontFace {
		ri = 1.0 / d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Total internal reflection: Snell's law has no solution
	cannotRefract := ri*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, ri) > random.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, ri)
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
