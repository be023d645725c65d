package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/ppm"
)

// ErrInvalidCamera is returned for camera configurations that cannot produce an image
var ErrInvalidCamera = errors.New("invalid camera configuration")

// DefaultMinHitDistance keeps secondary rays from re-hitting the surface they leave
const DefaultMinHitDistance = 0.001

// CameraConfig describes the camera and the sampling parameters of a render
type CameraConfig struct {
	Center      core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // Up direction
	Width       int       // Image width in pixels
	Height      int       // Image height in pixels, derived from AspectRatio when 0
	AspectRatio float32   // Width / height, used when Height is 0
	FocalLength float32   // Distance from the camera to the viewport
	VFov        float32   // Vertical field of view in degrees, 0 for a fixed viewport height of 2

	SamplesPerPixel int     // Jittered samples per pixel, 0 for a single ray through the pixel center
	MaxDepth        int     // Maximum number of scatter evaluations per primary ray
	Seed            int64   // Base seed for per-row random streams
	Workers         int     // Number of render goroutines, 0 for runtime.NumCPU()
	MinHitDistance  float32 // Lower bound of the intersection interval
}

// DefaultCameraConfig returns a camera at the origin looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:          core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		FocalLength:     1.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		MinHitDistance:  DefaultMinHitDistance,
	}
}

// MergeCameraConfig returns defaults with every non-zero field of overrides applied.
// A zero vector or number in overrides leaves the default in place.
func MergeCameraConfig(defaults, overrides CameraConfig) CameraConfig {
	result := defaults

	if overrides.Center != (core.Vec3{}) {
		result.Center = overrides.Center
	}
	if overrides.LookAt != (core.Vec3{}) {
		result.LookAt = overrides.LookAt
	}
	if overrides.Up != (core.Vec3{}) {
		result.Up = overrides.Up
	}
	if overrides.Width != 0 {
		result.Width = overrides.Width
	}
	if overrides.Height != 0 {
		result.Height = overrides.Height
	}
	if overrides.AspectRatio != 0 {
		result.AspectRatio = overrides.AspectRatio
	}
	if overrides.FocalLength != 0 {
		result.FocalLength = overrides.FocalLength
	}
	if overrides.VFov != 0 {
		result.VFov = overrides.VFov
	}
	if overrides.SamplesPerPixel != 0 {
		result.SamplesPerPixel = overrides.SamplesPerPixel
	}
	if overrides.MaxDepth != 0 {
		result.MaxDepth = overrides.MaxDepth
	}
	if overrides.Seed != 0 {
		result.Seed = overrides.Seed
	}
	if overrides.Workers != 0 {
		result.Workers = overrides.Workers
	}
	if overrides.MinHitDistance != 0 {
		result.MinHitDistance = overrides.MinHitDistance
	}

	return result
}

// Validate reports configuration errors wrapped in ErrInvalidCamera
func (c CameraConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("width must be positive, got %d: %w", c.Width, ErrInvalidCamera)
	case c.Height < 0:
		return fmt.Errorf("height must not be negative, got %d: %w", c.Height, ErrInvalidCamera)
	case c.Height == 0 && !(c.AspectRatio > 0):
		return fmt.Errorf("aspect ratio must be positive when height is unset, got %g: %w", c.AspectRatio, ErrInvalidCamera)
	case c.FocalLength < 0 || math32.IsNaN(c.FocalLength):
		return fmt.Errorf("focal length must not be negative, got %g: %w", c.FocalLength, ErrInvalidCamera)
	case c.VFov < 0 || c.VFov >= 180 || math32.IsNaN(c.VFov):
		return fmt.Errorf("field of view must be in [0, 180), got %g: %w", c.VFov, ErrInvalidCamera)
	case c.SamplesPerPixel < 0:
		return fmt.Errorf("samples per pixel must not be negative, got %d: %w", c.SamplesPerPixel, ErrInvalidCamera)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d: %w", c.MaxDepth, ErrInvalidCamera)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d: %w", c.Workers, ErrInvalidCamera)
	case c.MinHitDistance < 0 || math32.IsNaN(c.MinHitDistance):
		return fmt.Errorf("minimum hit distance must not be negative, got %g: %w", c.MinHitDistance, ErrInvalidCamera)
	}

	forward := c.LookAt.Subtract(c.Center)
	if c.LookAt != c.Center && !forward.IsFinite() {
		return fmt.Errorf("look direction is not finite: %w", ErrInvalidCamera)
	}
	if up := c.Up; up != (core.Vec3{}) && forward != (core.Vec3{}) && up.Cross(forward).NearZero() {
		return fmt.Errorf("up vector %v is parallel to the view direction: %w", c.Up, ErrInvalidCamera)
	}
	return nil
}

// Camera generates primary rays for every pixel of the image
type Camera struct {
	config CameraConfig

	width, height int
	center        core.Vec3
	pixel00       core.Vec3 // Center of the top-left pixel
	pixelDeltaU   core.Vec3 // Offset to the pixel on the right
	pixelDeltaV   core.Vec3 // Offset to the pixel below
	u, v, w       core.Vec3 // Camera basis, w points away from the view direction

	mapper ppm.ColorMapper
}

// NewCamera validates config and derives the viewport. Zero Up and a LookAt
// equal to Center select the default orientation (looking down -z, y up).
// A zero FocalLength selects 1.
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.Up == (core.Vec3{}) {
		config.Up = core.NewVec3(0, 1, 0)
	}
	if config.LookAt == config.Center {
		config.LookAt = config.Center.Add(core.NewVec3(0, 0, -1))
	}
	if config.FocalLength == 0 {
		config.FocalLength = 1.0
	}
	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
	}

	height := config.Height
	if height == 0 {
		height = max(1, int(float32(config.Width)/config.AspectRatio))
		config.Height = height
	}

	viewportHeight := float32(2.0)
	if config.VFov > 0 {
		theta := core.DegreesToRadians(config.VFov)
		viewportHeight = 2 * math32.Tan(theta/2) * config.FocalLength
	}
	viewportWidth := viewportHeight * float32(config.Width) / float32(height)

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Row 0 is the top of the image, so the vertical edge points down
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	pixelDeltaU := viewportU.Divide(float32(config.Width))
	pixelDeltaV := viewportV.Divide(float32(height))

	upperLeft := config.Center.
		Subtract(w.Multiply(config.FocalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:      config,
		width:       config.Width,
		height:      height,
		center:      config.Center,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		u:           u,
		v:           v,
		w:           w,
		mapper:      ppm.DefaultColorMapper(),
	}, nil
}

// Config returns the configuration with every derived field filled in
func (c *Camera) Config() CameraConfig {
	return c.config
}

// SetColorMapper replaces the mapping from radiance to 8-bit pixels used by Render
func (c *Camera) SetColorMapper(mapper ppm.ColorMapper) {
	c.mapper = mapper
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}

// GetRay returns a primary ray for pixel (x, y). Without antialiasing the ray
// passes through the pixel center; otherwise it is jittered uniformly within
// [-0.5, 0.5) of a pixel in both directions using sampler. A nil sampler
// always yields the pixel center.
func (c *Camera) GetRay(x, y int, sampler core.Sampler) core.Ray {
	px, py := float32(x), float32(y)
	if c.config.SamplesPerPixel > 0 && sampler != nil {
		jx, jy := sampler.Get2D()
		px += jx - 0.5
		py += jy - 0.5
	}

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(px)).
		Add(c.pixelDeltaV.Multiply(py))

	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}
