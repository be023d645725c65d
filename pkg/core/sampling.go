package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
	Get2D() (float32, float32)
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator. It is not safe for
// concurrent use; every render task owns its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() (float32, float32) {
	return r.random.Float32(), r.random.Float32()
}

// Get3D returns three random float32 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float32(), r.random.Float32(), r.random.Float32())
}

// RandomInRange returns a vector with each component uniform in [min, max)
func RandomInRange(sampler Sampler, min, max float32) Vec3 {
	u := sampler.Get3D()
	span := max - min
	return NewVec3(min+span*u[0], min+span*u[1], min+span*u[2])
}

// RandomUnitVector returns a uniformly distributed direction on the unit
// sphere using rejection sampling inside the [-1,1]³ cube
func RandomUnitVector(sampler Sampler) Vec3 {
	const epsilon = 1e-30
	for {
		p := RandomInRange(sampler, -1, 1)
		lensq := p.LengthSquared()
		if epsilon < lensq && lensq <= 1 {
			return p.Normalize()
		}
	}
}

// RandomOnHemisphere returns a unit direction in the hemisphere around normal
func RandomOnHemisphere(sampler Sampler, normal Vec3) Vec3 {
	unit := RandomUnitVector(sampler)
	if unit.Dot(normal) > 0 {
		return unit
	}
	return unit.Negate()
}
