package core

import "math/rand"

// Material is implemented by surfaces that can scatter incoming rays
type Material interface {
	// Scatter computes the outgoing ray and colour attenuation for a ray
	// striking the surface. A false result means the ray was absorbed.
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Colour attenuation applied along the path
}

// Hittable is implemented by anything a ray can intersect
type Hittable interface {
	// Hit tests the ray against the object within the given parameter
	// interval and returns the closest intersection, if any.
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	Material  Material // Material of the hit object
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the geometric front face
}

// SetFaceNormal orients the normal against the incoming ray and records
// which face was hit. outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
