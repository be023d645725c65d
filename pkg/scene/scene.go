package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Description string
	World       *geometry.Scene       // Objects in the scene
	Camera      renderer.CameraConfig // Camera and sampling configuration
}

// NewCamera builds the scene's camera
func (s *Scene) NewCamera() (*renderer.Camera, error) {
	return renderer.NewCamera(s.Camera)
}

// GetPrimitiveCount returns the number of primitives in the scene, counting
// shapes inside nested scenes individually
func (s *Scene) GetPrimitiveCount() int {
	return countPrimitives(s.World)
}

func countPrimitives(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.Scene:
		count := 0
		for _, child := range obj.Shapes() {
			count += countPrimitives(child)
		}
		return count
	default:
		return 1
	}
}

// cameraConfig merges the first override, if any, into defaults
func cameraConfig(defaults renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(overrides) > 0 {
		return renderer.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}
