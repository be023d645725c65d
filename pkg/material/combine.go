package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Combine layers several materials on one surface. Each material scatters
// the ray produced by the previous one against the same hit, and the
// attenuations are averaged over all layers. The result depends on the order
// of Materials.
type Combine struct {
	Materials []Material
}

// NewCombine creates a combined material from the given layers, applied in order
func NewCombine(materials ...Material) *Combine {
	return &Combine{Materials: materials}
}

// Add appends a layer and returns the receiver for chaining
func (c *Combine) Add(m Material) *Combine {
	c.Materials = append(c.Materials, m)
	return c
}

// Scatter implements the Material interface. A layer that absorbs adds no
// attenuation and passes the ray through unchanged; a Combine with no layers
// absorbs.
func (c *Combine) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	if len(c.Materials) == 0 {
		return ScatterResult{}, false
	}

	ray := rayIn
	var attenuation core.Vec3
	for _, m := range c.Materials {
		if result, ok := m.Scatter(ray, hit, sampler); ok {
			attenuation = attenuation.Add(result.Attenuation)
			ray = result.Scattered
		}
	}

	return ScatterResult{
		Scattered:   ray,
		Attenuation: attenuation.Divide(float32(len(c.Materials))),
	}, true
}
