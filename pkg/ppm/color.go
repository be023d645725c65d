package ppm

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Color is an 8-bit per channel RGB triple
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
	Green = Color{0, 255, 0}
	Blue  = Color{0, 0, 255}
)

// NewColor creates a color from its channels
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorMapper converts linear radiance to display colors
type ColorMapper struct {
	Exposure float32 // Multiplier applied before gamma
	Gamma    bool    // Apply gamma 2 (square root) encoding
}

// DefaultColorMapper returns the mapper used for final output: unit exposure with gamma on
func DefaultColorMapper() ColorMapper {
	return ColorMapper{Exposure: 1.0, Gamma: true}
}

// ToColor maps a linear RGB vector to an 8-bit color. Non-finite channels map to 0.
func (m ColorMapper) ToColor(v core.Vec3) Color {
	return Color{
		R: m.channel(v.X()),
		G: m.channel(v.Y()),
		B: m.channel(v.Z()),
	}
}

func (m ColorMapper) channel(value float32) uint8 {
	value *= m.Exposure
	if math32.IsNaN(value) || math32.IsInf(value, 0) {
		value = 0
	}
	if m.Gamma && value > 0 {
		value = math32.Sqrt(value)
	}
	return uint8(core.NewInterval(0, 0.999).Clamp(value) * 256)
}

// ToVec3 maps an 8-bit color back to linear RGB; ToColor(ToVec3(c)) == c
// for every color when exposure is 1
func (m ColorMapper) ToVec3(c Color) core.Vec3 {
	v := core.NewVec3(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
	if m.Gamma {
		v = v.MultiplyVec(v)
	}
	return v
}

// ToColor maps linear radiance using the default mapper
func ToColor(v core.Vec3) Color {
	return DefaultColorMapper().ToColor(v)
}

// ToVec3 unmaps an 8-bit color using the default mapper
func ToVec3(c Color) core.Vec3 {
	return DefaultColorMapper().ToVec3(c)
}
