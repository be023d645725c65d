package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays. Hit reports the
// nearest intersection whose parameter lies in the interval and never
// mutates the shape.
type Shape interface {
	Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool)
}

// Transformable is implemented by primitives that can be moved while a scene
// is being built. Shapes must not be transformed once rendering has started.
type Transformable interface {
	Translate(offset core.Vec3)
	Rotate(axis core.Vec3, degrees float32)
}
