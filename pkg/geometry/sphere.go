package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Quadratic a·t² - 2h·t + c = 0 with h = d·(C-O)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	// A zero-length direction has no parametrization and a zero radius has no normal
	if a == 0 || s.Radius == 0 {
		return nil, false
	}

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math32.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !interval.Contains(root) {
		root = (h + sqrtD) / a
		if !interval.Contains(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal from center to hit point, unit length by construction
	outwardNormal := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	if !outwardNormal.IsFinite() {
		return nil, false
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// Translate moves the sphere by offset
func (s *Sphere) Translate(offset core.Vec3) {
	s.Center = s.Center.Add(offset)
}

// Rotate rotates the sphere center around an axis through the world origin
func (s *Sphere) Rotate(axis core.Vec3, degrees float32) {
	s.Center = core.RotateAroundAxis(s.Center, axis, degrees)
}
