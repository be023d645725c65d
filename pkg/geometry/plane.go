package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal vector
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math32.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator

	// Intersections behind the ray origin are never valid
	if t < 0 || math32.IsInf(t, 0) || !interval.Contains(t) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// Translate moves the plane by offset
func (p *Plane) Translate(offset core.Vec3) {
	p.Point = p.Point.Add(offset)
}

// Rotate rotates the plane around an axis through the world origin
func (p *Plane) Rotate(axis core.Vec3, degrees float32) {
	p.Point = core.RotateAroundAxis(p.Point, axis, degrees)
	p.Normal = core.RotateAroundAxis(p.Normal, axis, degrees).Normalize()
}
