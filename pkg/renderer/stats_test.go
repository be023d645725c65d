package renderer

import (
	"math"
	"testing"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/ppm"
)

func TestAverageLuminance(t *testing.T) {
	// Red 0.2126, green 0.7152, blue 0.0722 and black average to 0.25
	img := ppm.NewImage(2, 2)
	_ = img.SetPixel(0, 0, ppm.Red)
	_ = img.SetPixel(1, 0, ppm.Green)
	_ = img.SetPixel(0, 1, ppm.Blue)
	_ = img.SetPixel(1, 1, ppm.Black)

	avgLum := AverageLuminance(img)
	if math.Abs(avgLum-0.25) > 1e-4 {
		t.Errorf("Expected average luminance 0.25, got %f", avgLum)
	}
}

func TestAverageLuminance_White(t *testing.T) {
	img := ppm.NewImage(1, 1)
	_ = img.SetPixel(0, 0, ppm.White)

	if avgLum := AverageLuminance(img); math.Abs(avgLum-1.0) > 1e-4 {
		t.Errorf("Expected average luminance 1.0, got %f", avgLum)
	}
	if avgLum := AverageLuminance(ppm.NewImage(0, 0)); avgLum != 0 {
		t.Errorf("Expected 0 for an empty image, got %f", avgLum)
	}
}

func TestRenderStats_Merge(t *testing.T) {
	total := RenderStats{Workers: 4, Duration: time.Second}
	total.Merge(RenderStats{Rows: 1, TotalPixels: 10, TotalSamples: 40, ScatterEvaluations: 70, BackgroundHits: 30, Workers: 9})
	total.Merge(RenderStats{Rows: 1, TotalPixels: 10, TotalSamples: 40, ScatterEvaluations: 10, AbsorbedPaths: 5, DepthExhausted: 2, NonFiniteSamples: 1})

	expected := RenderStats{
		Rows:               2,
		TotalPixels:        20,
		TotalSamples:       80,
		ScatterEvaluations: 80,
		AbsorbedPaths:      5,
		BackgroundHits:     30,
		DepthExhausted:     2,
		NonFiniteSamples:   1,
		Workers:            4,
		Duration:           time.Second,
	}
	if total != expected {
		t.Errorf("Expected %+v, got %+v", expected, total)
	}

	if total.AverageSamples() != 4 {
		t.Errorf("Expected 4 samples per pixel, got %f", total.AverageSamples())
	}
	if total.AverageBounces() != 1 {
		t.Errorf("Expected 1 bounce per sample, got %f", total.AverageBounces())
	}
	if total.RaysPerSecond() != 80 {
		t.Errorf("Expected 80 rays per second, got %f", total.RaysPerSecond())
	}
}

func TestRenderStats_ZeroValues(t *testing.T) {
	var stats RenderStats
	if stats.AverageSamples() != 0 || stats.AverageBounces() != 0 || stats.RaysPerSecond() != 0 {
		t.Error("Expected zero averages for empty stats")
	}
}
