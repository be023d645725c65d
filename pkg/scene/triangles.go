package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewTrianglesScene creates a scene of pyramids built from individual triangles
func NewTrianglesScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:          core.NewVec3(0, 2, 6), // Position camera to see the pyramids
		LookAt:          core.NewVec3(0, 1, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           600,
		AspectRatio:     16.0 / 9.0,
		FocalLength:     1.0,
		VFov:            45.0,
		SamplesPerPixel: 100,
		MaxDepth:        40,
		Seed:            42,
		MinHitDistance:  renderer.DefaultMinHitDistance,
	}

	s := &Scene{
		Name:        "triangles",
		Description: "Triangle pyramids, translated and rotated, on a ground plane",
		World:       geometry.NewScene(),
		Camera:      cameraConfig(defaultCameraConfig, cameraOverrides),
	}

	groundMaterial := material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))
	s.World.Add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), groundMaterial))

	redMetal := material.NewMetal(core.NewVec3(0.8, 0.2, 0.2), 0.1)
	blueLambertian := material.NewLambertian(core.NewVec3(0.2, 0.3, 0.8))
	glass := material.NewDielectric(1.5)

	// Pyramids are built around the origin, rotated, then moved into place
	s.World.Add(createPyramid(core.NewVec3(-2, 0.75, 0), 1.5, 1.5, 30, redMetal))
	s.World.Add(createPyramid(core.NewVec3(0, 1, 0), 1.5, 2.0, 45, blueLambertian))
	s.World.Add(createPyramid(core.NewVec3(2, 0.6, 0.5), 1.2, 1.2, 0, glass))

	return s
}

// createPyramid returns a closed square pyramid centered at center and rotated
// by yawDegrees around the vertical axis. Faces wind counter-clockwise seen from outside.
func createPyramid(center core.Vec3, baseSize, height, yawDegrees float32, mat material.Material) *geometry.Scene {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Vec3{
		core.NewVec3(-halfBase, -halfHeight, -halfBase), // 0: left-back
		core.NewVec3(+halfBase, -halfHeight, -halfBase), // 1: right-back
		core.NewVec3(+halfBase, -halfHeight, +halfBase), // 2: right-front
		core.NewVec3(-halfBase, -halfHeight, +halfBase), // 3: left-front
		core.NewVec3(0, +halfHeight, 0),                 // 4: apex
	}

	faces := [][3]int{
		{0, 1, 2}, {0, 2, 3}, // base
		{1, 0, 4}, // back
		{2, 1, 4}, // right
		{3, 2, 4}, // front
		{0, 3, 4}, // left
	}

	pyramid := geometry.NewScene()
	for _, f := range faces {
		triangle := geometry.NewTriangle(vertices[f[0]], vertices[f[1]], vertices[f[2]], mat)
		if yawDegrees != 0 {
			triangle.Rotate(core.NewVec3(0, 1, 0), yawDegrees)
		}
		triangle.Translate(center)
		pyramid.Add(triangle)
	}
	return pyramid
}
