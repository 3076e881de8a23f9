package scene

import (
	"math/rand"

	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
	"github.com/QU4SIMOTO/ray-tracing/pkg/geometry"
	"github.com/QU4SIMOTO/ray-tracing/pkg/material"
	"github.com/QU4SIMOTO/ray-tracing/pkg/renderer"
)

// NewCoverScene builds the randomized field of small spheres around three
// large feature spheres. The layout is drawn from the supplied generator, so
// a fixed seed reproduces the same scene.
func NewCoverScene(random *rand.Rand) *Scene {
	world := geometry.NewHittableList()

	groundMaterial := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the small spheres clear of the metal feature sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var sphereMaterial core.Material
			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomVec3InRange(random, 0.5, 1.0)
				fuzz := 0.5 * random.Float64()
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				// glass
				sphereMaterial = material.NewDielectric(1.5)
			}
			world.Add(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return &Scene{
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			Width:           1200,
			SamplesPerPixel: 500,
			MaxDepth:        50,
			VFov:            20,
			Center:          core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			Up:              core.NewVec3(0, 1, 0),
			DefocusAngle:    0.6,
			FocusDistance:   10,
		},
		World: world,
	}
}
