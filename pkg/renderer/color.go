package renderer

import (
	"fmt"
	"io"
	"math"

	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
)

// intensity bounds a gamma-corrected channel before quantization. The 0.999
// ceiling keeps 256*x below 256 so truncation lands in [0, 255].
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma converts a linear colour component to gamma space using the
// gamma-2 approximation
func LinearToGamma(linearComponent float64) float64 {
	if linearComponent > 0 {
		return math.Sqrt(linearComponent)
	}
	return 0
}

// WriteColor gamma-corrects, quantizes, and writes one pixel as a line of
// three whitespace-separated decimal byte values
func WriteColor(w io.Writer, c core.Vec3) error {
	r := LinearToGamma(c.X)
	g := LinearToGamma(c.Y)
	b := LinearToGamma(c.Z)

	rbyte := int(256 * intensity.Clamp(r))
	gbyte := int(256 * intensity.Clamp(g))
	bbyte := int(256 * intensity.Clamp(b))

	_, err := fmt.Fprintf(w, "%d %d %d\n", rbyte, gbyte, bbyte)
	return err
}

// writePPMHeader writes the plain-text PPM preamble for a width x height image
func writePPMHeader(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", width, height)
	return err
}
