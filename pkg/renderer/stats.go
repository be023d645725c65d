package renderer

import (
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/ppm"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Rows               int           // Rows completed
	TotalPixels        int           // Pixels written
	TotalSamples       int           // Primary rays traced
	ScatterEvaluations int           // Material scatter calls across all bounces
	AbsorbedPaths      int           // Paths terminated by absorption
	BackgroundHits     int           // Rays that escaped to the background
	DepthExhausted     int           // Paths cut off by the depth limit
	NonFiniteSamples   int           // Bounces whose radiance was NaN or Inf and replaced by black
	Workers            int           // Goroutines used
	Duration           time.Duration // Wall time of the render
}

// Merge adds the counters of other into s. Workers and Duration are left untouched.
func (s *RenderStats) Merge(other RenderStats) {
	s.Rows += other.Rows
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.ScatterEvaluations += other.ScatterEvaluations
	s.AbsorbedPaths += other.AbsorbedPaths
	s.BackgroundHits += other.BackgroundHits
	s.DepthExhausted += other.DepthExhausted
	s.NonFiniteSamples += other.NonFiniteSamples
}

// AverageSamples returns primary rays per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// AverageBounces returns scatter evaluations per primary ray
func (s RenderStats) AverageBounces() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.ScatterEvaluations) / float64(s.TotalSamples)
}

// RaysPerSecond returns the primary ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// AverageLuminance returns the mean Rec. 709 luminance of img with channels scaled to [0, 1]
func AverageLuminance(img *ppm.Image) float64 {
	if len(img.Pixels) == 0 {
		return 0
	}
	var total float64
	for _, c := range img.Pixels {
		total += 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
	}
	return total / float64(len(img.Pixels))
}
