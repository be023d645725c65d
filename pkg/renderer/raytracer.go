package renderer

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

var (
	white   = core.NewVec3(1, 1, 1)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// tracer evaluates the recursive radiance estimator for one render task.
// It owns its sampler and counters and is never shared between goroutines.
type tracer struct {
	world    geometry.Shape
	interval core.Interval
	sampler  core.Sampler
	stats    *RenderStats
}

func newTracer(world geometry.Shape, minHitDistance float32, sampler core.Sampler, stats *RenderStats) *tracer {
	return &tracer{
		world:    world,
		interval: core.NewInterval(minHitDistance, math32.Inf(1)),
		sampler:  sampler,
		stats:    stats,
	}
}

// backgroundGradient blends white into sky blue by the height of the ray direction
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	a := 0.5 * (unitDirection.Y() + 1.0)
	return white.Lerp(skyBlue, a)
}

// normalColor maps a unit normal from [-1, 1] to [0, 1]
func normalColor(normal core.Vec3) core.Vec3 {
	return normal.Add(white).Multiply(0.5)
}

// rayColor returns the radiance arriving along r with depth scatter evaluations left
func (t *tracer) rayColor(r core.Ray, depth int) core.Vec3 {
	if depth <= 0 {
		t.stats.DepthExhausted++
		return core.Vec3{}
	}

	hit, isHit := t.world.Hit(r, t.interval)
	if !isHit {
		t.stats.BackgroundHits++
		return backgroundGradient(r)
	}

	if hit.Material == nil {
		return normalColor(hit.Normal)
	}

	t.stats.ScatterEvaluations++
	scatter, didScatter := hit.Material.Scatter(r, *hit, t.sampler)
	if !didScatter {
		t.stats.AbsorbedPaths++
		return core.Vec3{}
	}

	incoming := t.rayColor(scatter.Scattered, depth-1)
	if !incoming.IsFinite() {
		t.stats.NonFiniteSamples++
		return core.Vec3{}
	}
	return scatter.Attenuation.MultiplyVec(incoming)
}

// samplePixel averages the samples of pixel (x, y)
func (t *tracer) samplePixel(camera *Camera, x, y int) core.Vec3 {
	samples := camera.config.SamplesPerPixel
	maxDepth := camera.config.MaxDepth

	if samples == 0 {
		t.stats.TotalSamples++
		return t.rayColor(camera.GetRay(x, y, t.sampler), maxDepth)
	}

	var sum core.Vec3
	for s := 0; s < samples; s++ {
		sum = sum.Add(t.rayColor(camera.GetRay(x, y, t.sampler), maxDepth))
	}
	t.stats.TotalSamples += samples
	return sum.Multiply(1.0 / float32(samples))
}

// renderRow writes every pixel of row y into buffer
func (t *tracer) renderRow(camera *Camera, y int, buffer []core.Vec3) {
	for x := 0; x < camera.width; x++ {
		buffer[x] = t.samplePixel(camera, x, y)
	}
	t.stats.Rows++
	t.stats.TotalPixels += camera.width
}

// RayColor evaluates the radiance estimator for a single ray against world,
// allowing at most depth scatter evaluations
func (c *Camera) RayColor(r core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	var stats RenderStats
	return newTracer(world, c.config.MinHitDistance, sampler, &stats).rayColor(r, depth)
}
