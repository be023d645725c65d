package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewDefaultScene creates a scene with a ground plane and spheres of every material
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:          core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		FocalLength:     1.0,
		VFov:            40.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		MinHitDistance:  renderer.DefaultMinHitDistance,
	}

	s := &Scene{
		Name:        "default",
		Description: "Ground plane with lambertian, metal, glass and coated spheres",
		World:       geometry.NewScene(),
		Camera:      cameraConfig(defaultCameraConfig, cameraOverrides),
	}

	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)

	// Glass coat threaded over a red diffuse base
	coatedRed := material.NewCombine(materialGlass, lambertianRed)

	ground := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), lambertianGreen)

	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, coatedRed)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	solidGlassSphere := geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, materialGlass)

	// Hollow glass: a negative radius flips the inner surface normal
	hollowGlassOuter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, materialGlass)
	hollowGlassInner := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, materialGlass)
	hollowGlassCenter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	s.World.AddAll(ground, sphereCenter, sphereLeft, sphereRight,
		solidGlassSphere, hollowGlassOuter, hollowGlassInner, hollowGlassCenter)

	return s
}

// NewNormalsScene creates a single unshaded sphere in front of the camera.
// Without a material the renderer colors each hit by its surface normal.
func NewNormalsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.SamplesPerPixel = 0
	defaultCameraConfig.MaxDepth = 1

	return &Scene{
		Name:        "normals",
		Description: "Sphere colored by its surface normals",
		World: geometry.NewScene(
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, nil),
		),
		Camera: cameraConfig(defaultCameraConfig, cameraOverrides),
	}
}

// NewEmptyScene creates a scene with nothing but the sky gradient
func NewEmptyScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.SamplesPerPixel = 0
	defaultCameraConfig.MaxDepth = 1

	return &Scene{
		Name:        "empty",
		Description: "Background gradient only",
		World:       geometry.NewScene(),
		Camera:      cameraConfig(defaultCameraConfig, cameraOverrides),
	}
}
