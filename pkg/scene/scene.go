// Package scene provides canned scene constructors consumed by the CLI.
// Each scene pairs a camera configuration with the world it was composed for.
package scene

import (
	"github.com/QU4SIMOTO/ray-tracing/pkg/geometry"
	"github.com/QU4SIMOTO/ray-tracing/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera renderer.CameraConfig
	World  *geometry.HittableList
}
