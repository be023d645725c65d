package renderer

import (
	"context"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/df07/go-recursive-raytracer/pkg/ppm"
)

var logger = log.New("renderer")

// Render traces every pixel of world and blocks until the image is complete
func (c *Camera) Render(world geometry.Shape) (*ppm.Image, RenderStats) {
	img, stats, _ := c.RenderContext(context.Background(), world)
	return img, stats
}

// RenderContext is Render with cancellation. Once ctx is done no further rows
// are dispatched; rows already in flight finish and are kept, the rest of the
// image stays black and ctx.Err() is returned.
func (c *Camera) RenderContext(ctx context.Context, world geometry.Shape) (*ppm.Image, RenderStats, error) {
	start := time.Now()
	numWorkers := min(c.config.Workers, c.height)

	logger.Debugf("rendering %dx%d, %d spp, depth %d, %d workers",
		c.width, c.height, c.config.SamplesPerPixel, c.config.MaxDepth, numWorkers)

	pool := NewWorkerPool(c, world, numWorkers)
	pool.Start()

	var err error
	for y := 0; y < c.height; y++ {
		if err = pool.SubmitTaskContext(ctx, RowTask{Row: y, Seed: rowSeed(c.config.Seed, y)}); err != nil {
			break
		}
	}
	pool.Stop()

	img := ppm.NewImage(c.width, c.height)
	stats := RenderStats{Workers: pool.NumWorkers()}
	for result := range pool.Results() {
		offset := result.Row * c.width
		for x, radiance := range result.Radiance {
			img.Pixels[offset+x] = c.mapper.ToColor(radiance)
		}
		stats.Merge(result.Stats)
	}
	stats.Duration = time.Since(start)

	if err != nil {
		logger.Warningf("render cancelled after %d of %d rows: %v", stats.Rows, c.height, err)
		return img, stats, err
	}

	logger.Infof("rendered %d pixels (%d samples, %d scatter evaluations) in %v",
		stats.TotalPixels, stats.TotalSamples, stats.ScatterEvaluations, stats.Duration)
	return img, stats, nil
}
