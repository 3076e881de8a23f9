package renderer

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
)

// CameraConfig holds camera and sampling configuration. Zero-valued fields
// are replaced with defaults by NewCamera, so callers only set what they need.
type CameraConfig struct {
	AspectRatio     float64   // Ratio of image width over height (default 1.0)
	Width           int       // Rendered image width in pixels (default 100)
	SamplesPerPixel int       // Count of random samples per pixel (default 10)
	MaxDepth        int       // Maximum number of ray bounces (default 10)
	VFov            float64   // Vertical field of view in degrees (default 90)
	Center          core.Vec3 // Point the camera is looking from (default origin)
	LookAt          core.Vec3 // Point the camera is looking at (default 0,0,-1)
	Up              core.Vec3 // Camera-relative up direction (default 0,1,0)
	DefocusAngle    float64   // Variation angle of rays through each pixel (default 0)
	FocusDistance   float64   // Distance to the plane of perfect focus (default 1)

	// Background gradient endpoints. Top is the colour straight up, Bottom
	// straight down. Defaults give the usual white-to-sky-blue gradient.
	BackgroundTop    core.Vec3
	BackgroundBottom core.Vec3
}

// applyDefaults fills zero-valued configuration fields with sensible defaults
func (config CameraConfig) applyDefaults() CameraConfig {
	if config.AspectRatio == 0 {
		config.AspectRatio = 1.0
	}
	if config.Width == 0 {
		config.Width = 100
	}
	if config.SamplesPerPixel == 0 {
		config.SamplesPerPixel = 10
	}
	if config.MaxDepth == 0 {
		config.MaxDepth = 10
	}
	if config.VFov == 0 {
		config.VFov = 90
	}
	if config.LookAt.Equals(config.Center) {
		config.LookAt = config.Center.Add(core.NewVec3(0, 0, -1))
	}
	if config.Up.Equals(core.NewVec3(0, 0, 0)) {
		config.Up = core.NewVec3(0, 1, 0)
	}
	if config.FocusDistance == 0 {
		config.FocusDistance = 1.0
	}
	if config.BackgroundTop.Equals(core.NewVec3(0, 0, 0)) {
		config.BackgroundTop = core.NewVec3(0.5, 0.7, 1.0)
	}
	if config.BackgroundBottom.Equals(core.NewVec3(0, 0, 0)) {
		config.BackgroundBottom = core.NewVec3(1.0, 1.0, 1.0)
	}
	return config
}

// Camera generates primary rays and drives the recursive shading loop.
// All derived state is computed once by NewCamera and never mutated.
type Camera struct {
	config           CameraConfig
	imageHeight      int       // Rendered image height
	pixelSampleScale float64   // Colour scale factor for a sum of pixel samples
	center           core.Vec3 // Camera center
	pixel00Loc       core.Vec3 // Location of pixel 0, 0
	pixelDeltaU      core.Vec3 // Offset to pixel to the right
	pixelDeltaV      core.Vec3 // Offset to pixel below
	u, v, w          core.Vec3 // Camera frame basis vectors
	defocusDiskU     core.Vec3 // Defocus disk horizontal radius
	defocusDiskV     core.Vec3 // Defocus disk vertical radius
}

// NewCamera derives the viewport geometry from the configuration
func NewCamera(config CameraConfig) *Camera {
	config = config.applyDefaults()

	c := &Camera{config: config}

	c.imageHeight = int(float64(config.Width) / config.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	c.pixelSampleScale = 1.0 / float64(config.SamplesPerPixel)

	c.center = config.Center

	// Viewport dimensions from the vertical field of view at the focus plane
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(c.imageHeight))

	// Orthonormal basis for the camera coordinate frame
	c.w = config.Center.Subtract(config.LookAt).Normalize()
	c.u = config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Multiply(1.0 / float64(config.Width))
	c.pixelDeltaV = viewportV.Multiply(1.0 / float64(c.imageHeight))

	// Location of the upper left pixel center
	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	// Defocus disk basis vectors
	defocusRadius := config.FocusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// Config returns the camera configuration with defaults applied
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ImageWidth returns the rendered image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.Width
}

// ImageHeight returns the derived image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// GetRay constructs a camera ray originating from the defocus disk and
// directed at a randomly sampled point around pixel (i, j)
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	// Jitter within the pixel's [-0.5,0.5]² footprint for box-filter antialiasing
	offsetX := random.Float64() - 0.5
	offsetY := random.Float64() - 0.5
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(random)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(random)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

// RayColor returns the colour carried by a ray traced through the world,
// recursing up to depth bounces
func (c *Camera) RayColor(r core.Ray, world core.Hittable, depth int, random *rand.Rand) core.Vec3 {
	// Bounce limit exhausted, no more light is gathered
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	// The 0.001 lower bound suppresses shadow acne from self-intersection
	// with the surface the ray just left
	if hit, isHit := world.Hit(r, core.NewInterval(0.001, math.Inf(1))); isHit {
		scatter, didScatter := hit.Material.Scatter(r, *hit, random)
		if !didScatter {
			return core.NewVec3(0, 0, 0)
		}
		return scatter.Attenuation.MultiplyVec(c.RayColor(scatter.Scattered, world, depth-1, random))
	}

	return c.backgroundGradient(r)
}

// backgroundGradient blends the background colours by the ray's vertical direction
func (c *Camera) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return c.config.BackgroundBottom.Multiply(1.0 - a).
		Add(c.config.BackgroundTop.Multiply(a))
}

// Render traces every pixel sequentially and streams the image to out as
// plain-text PPM. One "Scanlines remaining" line per row goes to progress,
// ending with "Done.". A write failure on out aborts the render.
func (c *Camera) Render(out, progress io.Writer, world core.Hittable, random *rand.Rand) (RenderStats, error) {
	if progress == nil {
		progress = io.Discard
	}
	start := time.Now()

	if err := writePPMHeader(out, c.config.Width, c.imageHeight); err != nil {
		return RenderStats{}, fmt.Errorf("writing image header: %w", err)
	}

	stats := RenderStats{}
	for j := 0; j < c.imageHeight; j++ {
		fmt.Fprintf(progress, "Scanlines remaining: %d\n", c.imageHeight-j)
		for i := 0; i < c.config.Width; i++ {
			pixelColor := core.NewVec3(0, 0, 0)
			for sample := 0; sample < c.config.SamplesPerPixel; sample++ {
				ray := c.GetRay(i, j, random)
				pixelColor = pixelColor.Add(c.RayColor(ray, world, c.config.MaxDepth, random))
			}
			stats.Pixels++
			stats.Samples += c.config.SamplesPerPixel

			if err := WriteColor(out, pixelColor.Multiply(c.pixelSampleScale)); err != nil {
				return stats, fmt.Errorf("writing pixel (%d,%d): %w", i, j, err)
			}
		}
	}
	fmt.Fprintln(progress, "Done.")

	stats.Elapsed = time.Since(start)
	return stats, nil
}
