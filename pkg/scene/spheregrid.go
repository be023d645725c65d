package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0, 1]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) core.Vec3 {
	hRad := core.DegreesToRadians(h)

	// OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	red := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	green := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	unit := core.NewInterval(0, 1)
	return core.NewVec3(unit.Clamp(red), unit.Clamp(green), unit.Clamp(blue))
}

// NewSphereGridScene creates a scene with a grid of spheres whose hue varies
// along x and whose metal to diffuse mix varies along z
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(4.5, 6, 18),    // Position camera farther back and slightly lower
		LookAt:          core.NewVec3(4.5, 0.8, 4.5), // Look at center of grid, slightly lower
		Up:              core.NewVec3(0, 1, 0),
		Width:           800,
		AspectRatio:     16.0 / 9.0,
		FocalLength:     1.0,
		VFov:            40.0,
		SamplesPerPixel: 100,
		MaxDepth:        40,
		Seed:            42,
		MinHitDistance:  renderer.DefaultMinHitDistance,
	}

	s := &Scene{
		Name:        "spheregrid",
		Description: "Grid of rainbow spheres blending metal and diffuse materials",
		World:       geometry.NewScene(),
		Camera:      cameraConfig(defaultCameraConfig, cameraOverrides),
	}

	s.World.Add(geometry.NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	))

	gridSize := 10
	targetArea := float32(9.0)
	spacing := targetArea / float32(gridSize-1)
	sphereRadius := core.NewInterval(0.02, 0.35).Clamp(spacing * 0.35)

	baseLightness := float32(0.65)
	minChroma := float32(0.05)
	maxChroma := float32(0.25)

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			// Centered around x=4.5, z=4.5 and resting on the ground
			x := float32(i)*spacing - targetArea/2.0 + 4.5
			z := float32(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			u := float32(i) / float32(gridSize-1)
			v := float32(j) / float32(gridSize-1)

			hue := u * 360.0
			chroma := minChroma + v*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			roughness := 0.05 + 0.1*float32((i+j)%3)/2.0
			sphereMaterial := material.NewMix(
				material.NewMetal(color, roughness),
				material.NewLambertian(color),
				v,
			)

			s.World.Add(geometry.NewSphere(position, sphereRadius, sphereMaterial))
		}
	}

	return s
}
