package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// triangleEpsilon bounds the determinant, the barycentric tolerance at the
// edges, and the minimum hit distance
const triangleEpsilon = 1e-6

// Triangle represents a single flat-shaded triangle defined by three vertices.
// Vertices change only through Translate and Rotate so the cached normal stays valid.
type Triangle struct {
	v0, v1, v2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	t := &Triangle{
		v0:       v0,
		v1:       v1,
		v2:       v2,
		Material: material,
	}
	t.computeNormal()
	return t
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.v1.Subtract(t.v0)
	edge2 := t.v2.Subtract(t.v0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	edge1 := t.v1.Subtract(t.v0)
	edge2 := t.v2.Subtract(t.v0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in, or is parallel to, the plane of the triangle
	if math32.Abs(det) < triangleEpsilon {
		return nil, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.v0)
	u := f * s.Dot(h)
	if u < -triangleEpsilon || u > 1.0+triangleEpsilon {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < -triangleEpsilon || u+v > 1.0+triangleEpsilon {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam <= triangleEpsilon || !interval.Contains(tParam) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// Normal returns the triangle's unit normal, e1×e2 normalized
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Vertices returns the three vertices in winding order
func (t *Triangle) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	return t.v0, t.v1, t.v2
}

// Translate moves all three vertices by offset
func (t *Triangle) Translate(offset core.Vec3) {
	t.v0 = t.v0.Add(offset)
	t.v1 = t.v1.Add(offset)
	t.v2 = t.v2.Add(offset)
}

// Rotate rotates the vertices around an axis through the world origin
func (t *Triangle) Rotate(axis core.Vec3, degrees float32) {
	t.v0 = core.RotateAroundAxis(t.v0, axis, degrees)
	t.v1 = core.RotateAroundAxis(t.v1, axis, degrees)
	t.v2 = core.RotateAroundAxis(t.v2, axis, degrees)
	t.computeNormal()
}
