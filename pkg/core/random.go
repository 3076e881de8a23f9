package core

import "math/rand"

// Sampling helpers used by materials and the camera. Every function takes an
// explicit *rand.Rand so each rendering worker owns its own generator and a
// fixed seed reproduces a render exactly.

// RandomVec3 returns a vector with each component uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{random.Float64(), random.Float64(), random.Float64()}
}

// RandomVec3InRange returns a vector with each component uniform in [min, max)
func RandomVec3InRange(random *rand.Rand, min, max float64) Vec3 {
	return Vec3{
		X: min + (max-min)*random.Float64(),
		Y: min + (max-min)*random.Float64(),
		Z: min + (max-min)*random.Float64(),
	}
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere.
// Rejection samples the unit cube, discarding points outside the sphere and
// points so close to the origin that normalizing them would blow up.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3InRange(random, -1, 1)
		lensq := p.LengthSquared()
		if 1e-160 < lensq && lensq <= 1.0 {
			return p.Multiply(1.0 / p.Length())
		}
	}
}

// RandomOnHemisphere returns a uniform random direction in the hemisphere
// around the given normal
func RandomOnHemisphere(random *rand.Rand, normal Vec3) Vec3 {
	onUnitSphere := RandomUnitVector(random)
	if onUnitSphere.Dot(normal) > 0.0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// RandomInUnitDisk returns a random point inside the unit disk in the z=0
// plane, used for defocus-disk lens sampling
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
