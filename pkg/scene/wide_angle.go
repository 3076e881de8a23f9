package scene

import (
	"math"

	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
	"github.com/QU4SIMOTO/ray-tracing/pkg/geometry"
	"github.com/QU4SIMOTO/ray-tracing/pkg/material"
	"github.com/QU4SIMOTO/ray-tracing/pkg/renderer"
)

// NewWideAngleScene builds two touching spheres of radius cos(π/4) centered
// at (∓r, 0, -1) with blue and red diffuse materials, a field-of-view test
// scene viewed through a narrow lens with defocus blur.
func NewWideAngleScene() *Scene {
	r := math.Cos(math.Pi / 4)

	materialLeft := material.NewLambertian(core.NewVec3(0, 0, 1))
	materialRight := material.NewLambertian(core.NewVec3(1, 0, 0))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(-r, 0, -1), r, materialLeft),
		geometry.NewSphere(core.NewVec3(r, 0, -1), r, materialRight),
	)

	return &Scene{
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			Width:           400,
			SamplesPerPixel: 10,
			MaxDepth:        50,
			VFov:            20,
			Center:          core.NewVec3(-2, 2, 1),
			LookAt:          core.NewVec3(0, 0, -1),
			Up:              core.NewVec3(0, 1, 0),
			DefocusAngle:    10,
			FocusDistance:   3.4,
		},
		World: world,
	}
}
