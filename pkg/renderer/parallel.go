package renderer

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/QU4SIMOTO/ray-tracing/pkg/core"
)

// RenderParallel renders scanlines concurrently and then streams the image to
// out in row-major order. The scene graph is read-only during the render, so
// workers share it without locking; each scanline owns a disjoint slice of the
// framebuffer and its own random generator seeded from seed plus the row
// index, which makes renders reproducible regardless of scheduling.
//
// workers bounds the number of concurrent scanlines; values <= 0 use one
// worker per CPU. Output is identical in shape to Render: a PPM header, one
// pixel line per pixel, and a "Scanlines remaining" progress line per row.
func (c *Camera) RenderParallel(out, progress io.Writer, world core.Hittable, workers int, seed int64) (RenderStats, error) {
	if progress == nil {
		progress = io.Discard
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()

	width := c.config.Width
	height := c.imageHeight
	framebuffer := make([]core.Vec3, width*height)

	var remaining atomic.Int64
	remaining.Store(int64(height))
	var progressMu sync.Mutex

	var g errgroup.Group
	g.SetLimit(workers)
	for j := 0; j < height; j++ {
		j := j
		g.Go(func() error {
			random := rand.New(rand.NewSource(seed + int64(j)))
			row := framebuffer[j*width : (j+1)*width]
			for i := 0; i < width; i++ {
				pixelColor := core.NewVec3(0, 0, 0)
				for sample := 0; sample < c.config.SamplesPerPixel; sample++ {
					ray := c.GetRay(i, j, random)
					pixelColor = pixelColor.Add(c.RayColor(ray, world, c.config.MaxDepth, random))
				}
				row[i] = pixelColor.Multiply(c.pixelSampleScale)
			}

			n := remaining.Add(-1)
			progressMu.Lock()
			fmt.Fprintf(progress, "Scanlines remaining: %d\n", n)
			progressMu.Unlock()
			return nil
		})
	}
	// Workers only touch their own framebuffer slice and never fail;
	// the group is used for its concurrency limit and completion barrier.
	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}

	if err := writePPMHeader(out, width, height); err != nil {
		return RenderStats{}, fmt.Errorf("writing image header: %w", err)
	}
	for idx, pixel := range framebuffer {
		if err := WriteColor(out, pixel); err != nil {
			return RenderStats{}, fmt.Errorf("writing pixel (%d,%d): %w", idx%width, idx/width, err)
		}
	}
	fmt.Fprintln(progress, "Done.")

	return RenderStats{
		Pixels:  width * height,
		Samples: width * height * c.config.SamplesPerPixel,
		Elapsed: time.Since(start),
	}, nil
}
