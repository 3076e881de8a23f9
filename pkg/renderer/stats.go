package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Pixels  int           // Total number of pixels rendered
	Samples int           // Total number of samples taken
	Elapsed time.Duration // Wall-clock render time
}
