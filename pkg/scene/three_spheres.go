package scene

import (
	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
	"github.com/QU4SIMOTO/ray-tracing/pkg/geometry"
	"github.com/QU4SIMOTO/ray-tracing/pkg/material"
	"github.com/QU4SIMOTO/ray-tracing/pkg/renderer"
)

// NewThreeSpheresScene builds the classic three-sphere arrangement: a diffuse
// sphere flanked by a hollow glass sphere and a fuzzy metal sphere, resting
// on a large diffuse ground sphere.
func NewThreeSpheresScene() *Scene {
	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	// An air bubble inside the glass sphere makes it hollow
	materialBubble := material.NewDielectric(1.0 / 1.5)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, materialBubble),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight),
	)

	return &Scene{
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			Width:           400,
			SamplesPerPixel: 100,
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
