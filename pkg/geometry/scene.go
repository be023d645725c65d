package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Scene is an ordered collection of shapes that is itself a Shape. Shapes are
// appended while the scene is built; during rendering it is shared read-only
// between all workers.
type Scene struct {
	shapes []Shape
}

// NewScene creates a scene holding the given shapes
func NewScene(shapes ...Shape) *Scene {
	s := &Scene{}
	s.AddAll(shapes...)
	return s
}

// Add appends a shape
func (s *Scene) Add(shape Shape) {
	s.shapes = append(s.shapes, shape)
}

// AddAll appends several shapes in order
func (s *Scene) AddAll(shapes ...Shape) {
	s.shapes = append(s.shapes, shapes...)
}

// Len returns the number of shapes in the scene
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes returns the shapes in insertion order. The slice must not be modified.
func (s *Scene) Shapes() []Shape {
	return s.shapes
}

// Hit returns the closest intersection across all shapes. Each shape is
// queried with the upper bound narrowed to the nearest hit found so far.
func (s *Scene) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := interval.Max

	for _, shape := range s.shapes {
		if hit, isHit := shape.Hit(ray, interval.WithMax(closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
